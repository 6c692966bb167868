package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jaiswalarts/artshop/internal/service"
	"github.com/jaiswalarts/artshop/internal/transport"
	"github.com/jaiswalarts/artshop/internal/util"
	"github.com/jaiswalarts/artshop/pkg/logging"
)

const msgProductNotFound = "Product not found"

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	items, err := h.Svc.GetProducts(ctx)
	if err != nil {
		l.Error("get_products_error", "status", 500, "reason", "cannot list products", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list products")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := productID(c)
	if err != nil {
		l.Warn("get_product_failed", "status", 400, "reason", "id is not an integer", "error", err)
		return err
	}

	product, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_product_failed", "status", 404, "reason", "product with this id does not exist")
			return echo.NewHTTPError(http.StatusNotFound, msgProductNotFound)
		}
		l.Error("get_product_failed", "status", 500, "reason", "cannot get product", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get product")
	}

	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHTTP) GetProductBySlug(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_by_slug")

	product, err := h.Svc.GetProductBySlug(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, msgProductNotFound)
		}
		l.Error("get_product_failed", "status", 500, "reason", "cannot get product", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get product")
	}

	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	items, err := h.Svc.SearchProducts(ctx, c.QueryParam("query"), c.QueryParam("category"))
	if err != nil {
		l.Error("search_error", "status", 500, "reason", "cannot search products", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot search products")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CatalogHTTP) FullTextSearch(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.full_text")

	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q is required")
	}
	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)

	res, err := h.Svc.FullText(ctx, q, page, size)
	if err != nil {
		l.Error("search_error", "status", 500, "reason", "cannot search products", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot search products")
	}
	return c.JSON(http.StatusOK, res)
}

func (h *CatalogHTTP) AddProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.add_product")

	var form transport.ProductForm
	if err := bindAndValidate(c, &form); err != nil {
		l.Warn("add_product_error", "status", statusOf(err), "reason", "invalid form", "error", err)
		return err
	}

	fh, err := c.FormFile("image")
	if err != nil {
		l.Warn("add_product_error", "status", 422, "reason", "image missing", "error", err)
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "image is required")
	}
	src, err := fh.Open()
	if err != nil {
		l.Error("add_product_error", "status", 500, "reason", "cannot read upload", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read image")
	}
	defer src.Close()

	prod, err := h.Svc.AddProduct(ctx, form, fh.Filename, src)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrConflict):
			return echo.NewHTTPError(http.StatusConflict, "Product with this name already exists")
		case errors.Is(err, service.ErrValidation):
			l.Warn("add_product_error", "status", 422, "reason", "invalid form", "error", err)
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid product name or image filename")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot add product")
		}
	}

	return c.JSON(http.StatusOK, prod)
}

func (h *CatalogHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	id, err := productID(c)
	if err != nil {
		l.Warn("product_delete_error", "status", 400, "reason", "id is not an integer", "error", err)
		return err
	}

	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("product_delete_error", "status", 404, "reason", "product not found")
			return echo.NewHTTPError(http.StatusNotFound, msgProductNotFound)
		}
		l.Error("product_delete_error", "status", 500, "reason", "cannot delete product from db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete product")
	}

	l.Info("delete_product_success", "product_id", id)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Product deleted successfully"})
}

func productID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "product id must be an integer")
	}
	return uint(id), nil
}
