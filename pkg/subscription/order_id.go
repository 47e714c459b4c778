package subscription

import (
	"MealGo-Backend/domain"
	"crypto/rand"
	"encoding/base64"

	"github.com/google/uuid"
)

const orderNonceSize = 4

// EncodeOrderID packs the user id, the plan id and a random nonce into a
// midtrans order id. The result is 48 characters, under midtrans' 50 limit,
// so the webhook can recover both ids without a pending-order table.
func EncodeOrderID(userID, planID uuid.UUID) (string, error) {
	buf := make([]byte, 0, 32+orderNonceSize)
	buf = append(buf, userID[:]...)
	buf = append(buf, planID[:]...)

	nonce := make([]byte, orderNonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	buf = append(buf, nonce...)
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func DecodeOrderID(orderID string) (uuid.UUID, uuid.UUID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(orderID)
	if err != nil || len(raw) != 32+orderNonceSize {
		return uuid.Nil, uuid.Nil, domain.ErrInvalidOrderID
	}
	userID, err := uuid.FromBytes(raw[:16])
	if err != nil {
		return uuid.Nil, uuid.Nil, domain.ErrInvalidOrderID
	}
	planID, err := uuid.FromBytes(raw[16:32])
	if err != nil {
		return uuid.Nil, uuid.Nil, domain.ErrInvalidOrderID
	}
	return userID, planID, nil
}
