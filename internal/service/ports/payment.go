package ports

import (
	"context"

	"github.com/samikhan1239/StayFinder/internal/domain"
)

type PaymentGateway interface {
	CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.PaymentOrder, error)
	VerifySignature(orderRef, paymentRef, signature string) bool
}
