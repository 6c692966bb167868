package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jaiswalarts/artshop/internal/service"
	"github.com/jaiswalarts/artshop/internal/transport"
	pkghash "github.com/jaiswalarts/artshop/pkg/hash"
)

type loginFunc func(ctx context.Context, in transport.Login) (*service.LoginResult, error)

// bindAndValidate returns 400 for an unreadable body and 422 when a field
// fails validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body").SetInternal(err)
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, validationMessage(err)).SetInternal(err)
	}
	return nil
}

func statusOf(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}

func registerError(l *slog.Logger, err error, conflictMsg string) error {
	switch {
	case errors.Is(err, service.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, conflictMsg)
	case errors.Is(err, pkghash.ErrPasswordTooLong):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "password must be at most 72 bytes")
	case errors.Is(err, service.ErrValidation):
		l.Warn("register_error", "status", 422, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "email and password are required")
	default:
		l.Error("register_error", "status", 500, "reason", "cannot create account", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create account")
	}
}
