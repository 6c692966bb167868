package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/jaiswalarts/artshop/internal/transport"
	"github.com/jaiswalarts/artshop/internal/uploads"
	middleware "github.com/jaiswalarts/artshop/pkg/middleware/auth"
	loggingmw "github.com/jaiswalarts/artshop/pkg/middleware/logging"
)

type Deps struct {
	Logger    *slog.Logger
	UploadDir string

	Accounts *AccountsHTTP
	Catalog  *CatalogHTTP
	Payments *PaymentHTTP
	Auth     *middleware.BearerAuth

	// Ready reports whether the database answers; nil means always ready.
	Ready func(ctx context.Context) error
}

// New builds the echo instance with the shared middleware chain and routes.
func New(d *Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = ErrorHandler

	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(
		echomw.RequestID(),
		loggingmw.RequestLogger(d.Logger),
		echomw.Recover(),
		echomw.CORS(),
	)

	Register(e, d)
	return e
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Welcome to JaiswalArts API"})
	})
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.Ready != nil {
			if err := d.Ready(c.Request().Context()); err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable").SetInternal(err)
			}
		}
		return c.NoContent(http.StatusOK)
	})

	if d.UploadDir != "" {
		e.Static(uploads.URLPrefix, d.UploadDir)
	}

	users := e.Group("/users")
	users.POST("/register", d.Accounts.RegisterUser)
	users.POST("/login", d.Accounts.LoginUser)
	users.GET("/me", d.Accounts.CurrentUser, d.Auth.RequireAuth)

	admin := e.Group("/admin")
	admin.POST("/register", d.Accounts.RegisterAdmin)
	admin.POST("/login", d.Accounts.LoginAdmin)
	admin.GET("/me", d.Accounts.CurrentAdmin, d.Auth.RequireAdmin)

	products := e.Group("/products")
	products.GET("", d.Catalog.GetProducts)
	products.GET("/search", d.Catalog.SearchProducts)
	products.GET("/fulltext", d.Catalog.FullTextSearch)
	products.GET("/slug/:slug", d.Catalog.GetProductBySlug)
	products.GET("/:id", d.Catalog.GetProduct)
	products.POST("/add-product", d.Catalog.AddProduct, d.Auth.RequireAdmin)
	products.DELETE("/:id", d.Catalog.DeleteProduct, d.Auth.RequireAdmin)

	e.POST("/payment/create-order", d.Payments.CreateOrder)
}
