package midtrans

import (
	"MealGo-Backend/domain"
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type (
	CheckoutRequest struct {
		OrderID       string
		Amount        int64
		ItemID        string
		ItemName      string
		CustomerName  string
		CustomerEmail string
	}

	MidtransService interface {
		CreateTransaction(ctx context.Context, req CheckoutRequest) (*domain.CheckoutResponse, error)
		VerifySignature(n domain.MidtransNotification) bool
	}

	snapCreator interface {
		CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error)
	}

	midtransService struct {
		client    snapCreator
		serverKey string
	}
)

func NewMidtransService(serverKey string, production bool) (MidtransService, error) {
	if serverKey == "" {
		return nil, domain.ErrMissingServerKey
	}

	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}

	client := &snap.Client{}
	client.New(serverKey, env)
	return &midtransService{
		client:    client,
		serverKey: serverKey,
	}, nil
}

func (s *midtransService) CreateTransaction(ctx context.Context, req CheckoutRequest) (*domain.CheckoutResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: req.Amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.CustomerName,
			Email: req.CustomerEmail,
		},
		Items: &[]midtrans.ItemDetails{{
			ID:    req.ItemID,
			Name:  req.ItemName,
			Price: req.Amount,
			Qty:   1,
		}},
	}

	resp, merr := s.client.CreateTransaction(snapReq)
	if merr != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPaymentFailed, merr.Message)
	}

	return &domain.CheckoutResponse{
		OrderID:     req.OrderID,
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

// Signature computes the notification signature midtrans sends:
// sha512(order_id + status_code + gross_amount + server_key), hex encoded.
func Signature(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

func (s *midtransService) VerifySignature(n domain.MidtransNotification) bool {
	if s.serverKey == "" || n.SignatureKey == "" {
		return false
	}
	want := Signature(n.OrderID, n.StatusCode, n.GrossAmount, s.serverKey)
	return subtle.ConstantTimeCompare([]byte(want), []byte(n.SignatureKey)) == 1
}
