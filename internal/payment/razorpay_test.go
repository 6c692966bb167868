package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrders struct {
	got  map[string]interface{}
	resp map[string]interface{}
	err  error
}

func (f *fakeOrders) Create(data map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	f.got = data
	return f.resp, f.err
}

func TestRazorpay_CreateOrder_SendsAutoCapture(t *testing.T) {
	t.Parallel()

	orders := &fakeOrders{resp: map[string]interface{}{"id": "order_123", "status": "created"}}
	gw := &Razorpay{orders: orders}

	order, err := gw.CreateOrder(context.Background(), 50000, "INR")
	require.NoError(t, err)
	assert.Equal(t, "order_123", order["id"])

	assert.Equal(t, 50000, orders.got["amount"])
	assert.Equal(t, "INR", orders.got["currency"])
	assert.Equal(t, 1, orders.got["payment_capture"])
}

func TestRazorpay_CreateOrder_WrapsGatewayError(t *testing.T) {
	t.Parallel()

	boom := errors.New("BAD_REQUEST_ERROR")
	gw := &Razorpay{orders: &fakeOrders{err: boom}}

	_, err := gw.CreateOrder(context.Background(), 100, "INR")
	assert.ErrorIs(t, err, boom)
}

func TestRazorpay_CreateOrder_CanceledContext(t *testing.T) {
	t.Parallel()

	orders := &fakeOrders{}
	gw := &Razorpay{orders: orders}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := gw.CreateOrder(ctx, 100, "INR")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, orders.got)
}

func TestDisabled(t *testing.T) {
	t.Parallel()

	_, err := Disabled{}.CreateOrder(context.Background(), 100, "INR")
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestNewRazorpay(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, NewRazorpay("rzp_test_key", "secret").orders)
}
