package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Row is implemented by every entity the facade can read or write.
type Row interface {
	TableName() string
}

// Facade is the single data-access entry point. All operations round-trip to
// the database; nothing is cached.
type Facade struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Facade {
	return &Facade{db: db}
}

// Transaction runs fn against a facade bound to one database transaction.
// Returning an error from fn rolls everything back.
func (f *Facade) Transaction(ctx context.Context, fn func(tx *Facade) error) error {
	return f.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Facade{db: tx})
	})
}

func (f *Facade) conn(ctx context.Context) *gorm.DB {
	return f.db.WithContext(ctx)
}

func tableOf[T Row]() Table {
	var zero T
	return Table(zero.TableName())
}

func orderBy(column Column, ascending bool) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: string(column)}, Desc: !ascending}
}

// List returns every row of T's table, newest first.
func List[T Row](ctx context.Context, f *Facade) ([]T, error) {
	table := tableOf[T]()
	if err := table.check(); err != nil {
		return nil, err
	}
	if !table.HasCreatedAt() {
		return nil, ErrNoCreatedAt
	}
	return ListOrdered[T](ctx, f, ColCreatedAt, false)
}

// ListPage returns one page of T's table, newest first, together with the
// total row count. page starts at 1.
func ListPage[T Row](ctx context.Context, f *Facade, page, limit int) ([]T, int64, error) {
	table := tableOf[T]()
	if err := table.check(); err != nil {
		return nil, 0, err
	}
	if !table.HasCreatedAt() {
		return nil, 0, ErrNoCreatedAt
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		return nil, 0, ErrInvalidPage
	}

	var total int64
	var zero T
	if err := f.conn(ctx).Model(&zero).Count(&total).Error; err != nil {
		err = translate(err)
		observe(table, "list_page", err)
		return nil, 0, err
	}

	var rows []T
	err := f.conn(ctx).
		Order(orderBy(ColCreatedAt, false)).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error
	err = translate(err)
	observe(table, "list_page", err)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ListOrdered returns every row of T's table ordered by column.
func ListOrdered[T Row](ctx context.Context, f *Facade, column Column, ascending bool) ([]T, error) {
	table := tableOf[T]()
	if err := table.check(column); err != nil {
		return nil, err
	}

	var rows []T
	err := f.conn(ctx).Order(orderBy(column, ascending)).Find(&rows).Error
	observe(table, "list", err)
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

// ListWhere returns the rows where column equals value, ordered by orderColumn.
func ListWhere[T Row](ctx context.Context, f *Facade, column Column, value any, orderColumn Column, ascending bool) ([]T, error) {
	table := tableOf[T]()
	if err := table.check(column, orderColumn); err != nil {
		return nil, err
	}

	var rows []T
	err := f.conn(ctx).
		Where(string(column)+" = ?", value).
		Order(orderBy(orderColumn, ascending)).
		Find(&rows).Error
	observe(table, "list", err)
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

// Get returns the first row where keyColumn equals value.
func Get[T Row](ctx context.Context, f *Facade, keyColumn Column, value any) (*T, error) {
	table := tableOf[T]()
	if err := table.check(keyColumn); err != nil {
		return nil, err
	}

	var row T
	err := f.conn(ctx).Where(string(keyColumn)+" = ?", value).First(&row).Error
	observe(table, "get", err)
	if err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

// Insert persists row and returns it with generated columns filled in.
func Insert[T Row](ctx context.Context, f *Facade, row *T) (*T, error) {
	table := tableOf[T]()
	if err := table.check(); err != nil {
		return nil, err
	}

	err := f.conn(ctx).Omit(clause.Associations).Create(row).Error
	observe(table, "insert", err)
	if err != nil {
		return nil, translate(err)
	}
	return row, nil
}

// Update sets fields on the rows where keyColumn equals value and returns the
// first updated row. Columns not present in fields are left untouched.
func Update[T Row](ctx context.Context, f *Facade, keyColumn Column, value any, fields map[Column]any) (*T, error) {
	table := tableOf[T]()
	if err := table.check(keyColumn); err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	updates := make(map[string]any, len(fields))
	for col, v := range fields {
		if err := table.check(col); err != nil {
			return nil, err
		}
		updates[string(col)] = v
	}

	var rows []T
	res := f.conn(ctx).
		Model(&rows).
		Clauses(clause.Returning{}).
		Where(string(keyColumn)+" = ?", value).
		Updates(updates)
	observe(table, "update", res.Error)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 || len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// Delete removes the rows where keyColumn equals value and returns them.
func Delete[T Row](ctx context.Context, f *Facade, keyColumn Column, value any) ([]T, error) {
	return DeleteMatch[T](ctx, f, map[Column]any{keyColumn: value})
}

// DeleteMatch removes the rows matching every column/value pair, which is how
// composite-key rows (favorites, plan recipes) are addressed.
func DeleteMatch[T Row](ctx context.Context, f *Facade, match map[Column]any) ([]T, error) {
	table := tableOf[T]()
	if len(match) == 0 {
		return nil, ErrNoFields
	}

	conds := make(map[string]any, len(match))
	for col, v := range match {
		if err := table.check(col); err != nil {
			return nil, err
		}
		conds[string(col)] = v
	}

	var rows []T
	err := f.conn(ctx).Clauses(clause.Returning{}).Where(conds).Delete(&rows).Error
	observe(table, "delete", err)
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}
