package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jaiswalarts/artshop/internal/service"
	"github.com/jaiswalarts/artshop/internal/transport"
	"github.com/jaiswalarts/artshop/pkg/logging"
	middleware "github.com/jaiswalarts/artshop/pkg/middleware/auth"
	"github.com/jaiswalarts/artshop/pkg/tokens"
)

const tokenTypeBearer = "Bearer"

type AccountsHTTP struct {
	Svc *service.AccountService
}

func (h *AccountsHTTP) RegisterUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users.register")

	var req transport.UserCreate
	if err := bindAndValidate(c, &req); err != nil {
		l.Warn("register_error", "status", statusOf(err), "reason", "invalid body", "error", err)
		return err
	}

	user, err := h.Svc.RegisterUser(ctx, req)
	if err != nil {
		return registerError(l, err, "Email already registered")
	}

	return c.JSON(http.StatusOK, transport.NewUserResponse(user))
}

func (h *AccountsHTTP) RegisterAdmin(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.register")

	var req transport.AdminCreate
	if err := bindAndValidate(c, &req); err != nil {
		l.Warn("register_error", "status", statusOf(err), "reason", "invalid body", "error", err)
		return err
	}

	admin, err := h.Svc.RegisterAdmin(ctx, req)
	if err != nil {
		return registerError(l, err, "Admin email already registered")
	}

	return c.JSON(http.StatusOK, transport.NewAdminResponse(admin))
}

func (h *AccountsHTTP) LoginUser(c echo.Context) error {
	return h.login(c, "users.login", h.Svc.LoginUser)
}

func (h *AccountsHTTP) LoginAdmin(c echo.Context) error {
	return h.login(c, "admin.login", h.Svc.LoginAdmin)
}

func (h *AccountsHTTP) login(c echo.Context, name string, fn loginFunc) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", name)

	var req transport.Login
	if err := bindAndValidate(c, &req); err != nil {
		l.Warn("login_error", "status", statusOf(err), "reason", "invalid body", "error", err)
		return err
	}

	res, err := fn(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
		}
		l.Error("login_error", "status", 500, "reason", "cannot issue token", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot log in")
	}

	l.Info("login_successful")
	return c.JSON(http.StatusOK, transport.TokenResponse{AccessToken: res.AccessToken, TokenType: tokenTypeBearer})
}

func (h *AccountsHTTP) CurrentUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users.me")

	id, err := accountID(c, tokens.RoleUser)
	if err != nil {
		return err
	}
	user, err := h.Svc.User(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		l.Error("me_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot load user")
	}
	return c.JSON(http.StatusOK, transport.NewUserResponse(user))
}

func (h *AccountsHTTP) CurrentAdmin(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.me")

	id, err := accountID(c, tokens.RoleAdmin)
	if err != nil {
		return err
	}
	admin, err := h.Svc.Admin(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Admin not found")
		}
		l.Error("me_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot load admin")
	}
	return c.JSON(http.StatusOK, transport.NewAdminResponse(admin))
}

// accountID reads the caller's id from verified claims of the given role.
func accountID(c echo.Context, role string) (uint, error) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}
	if claims.Role != role {
		return 0, echo.NewHTTPError(http.StatusForbidden, role+" access required")
	}
	id, err := claims.AccountID()
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
	}
	return id, nil
}
