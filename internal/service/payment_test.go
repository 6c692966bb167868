package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaiswalarts/artshop/internal/transport"
)

func TestPaymentService_CreateOrder(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{resp: map[string]any{"id": "order_1", "amount": 50000}}
	svc := &PaymentService{Gateway: gw}

	order, err := svc.CreateOrder(context.Background(), transport.OrderRequest{Amount: 50000})
	require.NoError(t, err)
	assert.Equal(t, "order_1", order["id"])
	assert.Equal(t, 50000, gw.amount)
	assert.Equal(t, "INR", gw.currency)
}

func TestPaymentService_CreateOrder_KeepsCurrency(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{resp: map[string]any{}}
	svc := &PaymentService{Gateway: gw}

	_, err := svc.CreateOrder(context.Background(), transport.OrderRequest{Amount: 100, Currency: "USD"})
	require.NoError(t, err)
	assert.Equal(t, "USD", gw.currency)
}

func TestPaymentService_CreateOrder_RejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()

	for _, amount := range []int{0, -1, -50000} {
		gw := &fakeGateway{}
		svc := &PaymentService{Gateway: gw}

		_, err := svc.CreateOrder(context.Background(), transport.OrderRequest{Amount: amount})
		assert.ErrorIs(t, err, ErrValidation, "amount %d", amount)
		assert.Zero(t, gw.calls, "gateway must not be called for amount %d", amount)
	}
}

func TestPaymentService_CreateOrder_GatewayError(t *testing.T) {
	t.Parallel()

	boom := errors.New("authentication failed")
	svc := &PaymentService{Gateway: &fakeGateway{err: boom}}

	_, err := svc.CreateOrder(context.Background(), transport.OrderRequest{Amount: 100})
	assert.ErrorIs(t, err, ErrUpstream)
	assert.ErrorIs(t, err, boom)
}
