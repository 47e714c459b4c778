package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("row not found")
	ErrDuplicate     = errors.New("duplicate key")
	ErrReferenced    = errors.New("row is referenced by another row")
	ErrUnknownTable  = errors.New("unknown table")
	ErrUnknownColumn = errors.New("unknown column")
	ErrNoCreatedAt   = errors.New("table has no created_at column")
	ErrNoFields      = errors.New("no fields to update")
	ErrInvalidPage   = errors.New("page limit must be positive")
)

// translate maps driver and gorm failures onto the store sentinels while keeping
// the original error in the chain. Message sniffing covers drivers that do not
// implement gorm's error translator.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey),
		strings.Contains(msg, "duplicate"),
		strings.Contains(msg, "unique constraint"):
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated),
		strings.Contains(msg, "foreign key"):
		return fmt.Errorf("%w: %w", ErrReferenced, err)
	}
	return err
}

// IsDuplicate reports whether err comes from a unique constraint.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
