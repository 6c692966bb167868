package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jaiswalarts/artshop/internal/config"
	"github.com/jaiswalarts/artshop/internal/payment"
	"github.com/jaiswalarts/artshop/internal/transport"
	"github.com/jaiswalarts/artshop/pkg/logging"
)

type PaymentService struct {
	Gateway payment.Gateway
}

// CreateOrder rejects non-positive amounts without contacting the gateway.
func (s *PaymentService) CreateOrder(ctx context.Context, req transport.OrderRequest) (map[string]any, error) {
	l := logging.FromContext(ctx).With("svc", "payment.create_order")

	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	currency := strings.TrimSpace(req.Currency)
	if currency == "" {
		currency = config.DefaultCurrency
	}

	order, err := s.Gateway.CreateOrder(ctx, req.Amount, currency)
	if err != nil {
		l.Error("create_order_error", "status", 500, "amount", req.Amount, "currency", currency, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	l.Info("create_order_success", "amount", req.Amount, "currency", currency)
	return order, nil
}
