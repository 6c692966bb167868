package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jaiswalarts/artshop/internal/service"
	"github.com/jaiswalarts/artshop/internal/transport"
	"github.com/jaiswalarts/artshop/pkg/logging"
)

type PaymentHTTP struct {
	Svc *service.PaymentService
}

func (h *PaymentHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.create_order")

	var req transport.OrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.CreateOrder(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_order_error", "status", 400, "reason", "invalid amount", "amount", req.Amount)
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid amount")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create payment order")
	}

	return c.JSON(http.StatusOK, order)
}
