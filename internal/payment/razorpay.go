package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/samikhan1239/StayFinder/internal/domain"
)

// MaxReceiptLen is the gateway limit on the receipt field.
const MaxReceiptLen = 40

var errNotConfigured = errors.New("payment gateway not configured")

type orderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type Gateway struct {
	orders orderCreator
	keyID  string
	secret []byte
}

// NewRazorpay builds the gateway. With empty credentials the gateway still
// verifies nothing and fails every order, so a misconfigured deployment
// surfaces as a gateway error per request instead of a crash at start.
func NewRazorpay(keyID, keySecret string) *Gateway {
	g := &Gateway{keyID: keyID, secret: []byte(keySecret)}
	if keyID != "" && keySecret != "" {
		g.orders = razorpay.NewClient(keyID, keySecret).Order
	}
	return g
}

func (g *Gateway) Configured() bool {
	return g.orders != nil
}

type orderResult struct {
	body map[string]interface{}
	err  error
}

// CreateOrder issues an order and waits for it no longer than ctx allows.
// The SDK call itself is not cancellable; a late response is discarded.
func (g *Gateway) CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.PaymentOrder, error) {
	if g.orders == nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPaymentGateway, errNotConfigured)
	}
	if len(req.Receipt) > MaxReceiptLen {
		return nil, fmt.Errorf("%w: receipt %q exceeds %d chars", domain.ErrPaymentGateway, req.Receipt, MaxReceiptLen)
	}

	notes := make(map[string]interface{}, len(req.Notes))
	for k, v := range req.Notes {
		notes[k] = v
	}
	data := map[string]interface{}{
		"amount":          req.Amount,
		"currency":        req.Currency,
		"receipt":         req.Receipt,
		"payment_capture": 1,
		"notes":           notes,
	}

	done := make(chan orderResult, 1)
	go func() {
		body, err := g.orders.Create(data, nil)
		done <- orderResult{body: body, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: create order: %w", domain.ErrPaymentGateway, ctx.Err())
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("%w: create order: %w", domain.ErrPaymentGateway, res.err)
		}
		order, err := parseOrder(res.body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrPaymentGateway, err)
		}
		order.KeyID = g.keyID
		return order, nil
	}
}

func parseOrder(body map[string]interface{}) (*domain.PaymentOrder, error) {
	id, _ := body["id"].(string)
	if id == "" {
		return nil, errors.New("order response without id")
	}

	var amount int64
	switch v := body["amount"].(type) {
	case float64:
		amount = int64(v)
	case int64:
		amount = v
	case int:
		amount = int64(v)
	}

	currency, _ := body["currency"].(string)
	receipt, _ := body["receipt"].(string)

	return &domain.PaymentOrder{
		ID:       id,
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	}, nil
}

// Sign returns hex(HMAC-SHA256(secret, orderRef + "|" + paymentRef)), the
// signature the gateway attaches to a successful checkout.
func (g *Gateway) Sign(orderRef, paymentRef string) string {
	mac := hmac.New(sha256.New, g.secret)
	mac.Write([]byte(orderRef + "|" + paymentRef))
	return hex.EncodeToString(mac.Sum(nil))
}

func (g *Gateway) VerifySignature(orderRef, paymentRef, signature string) bool {
	if len(g.secret) == 0 || orderRef == "" || paymentRef == "" || signature == "" {
		return false
	}
	expected := g.Sign(orderRef, paymentRef)
	return hmac.Equal([]byte(expected), []byte(signature))
}
