package payment

import (
	"context"
	"errors"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

var ErrDisabled = errors.New("payment gateway is not configured")

// Gateway creates payment orders. The returned map is the gateway's order
// object, passed back to clients unchanged.
type Gateway interface {
	CreateOrder(ctx context.Context, amount int, currency string) (map[string]any, error)
}

type orderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type Razorpay struct {
	orders orderCreator
}

func NewRazorpay(keyID, keySecret string) *Razorpay {
	client := razorpay.NewClient(keyID, keySecret)
	return &Razorpay{orders: client.Order}
}

// CreateOrder asks Razorpay for an auto-captured order. amount is in the
// currency's smallest unit.
func (r *Razorpay) CreateOrder(ctx context.Context, amount int, currency string) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	order, err := r.orders.Create(map[string]interface{}{
		"amount":          amount,
		"currency":        currency,
		"payment_capture": 1,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay: create order: %w", err)
	}
	return order, nil
}

// Disabled is used when no Razorpay credentials are configured.
type Disabled struct{}

func (Disabled) CreateOrder(context.Context, int, string) (map[string]any, error) {
	return nil, ErrDisabled
}
