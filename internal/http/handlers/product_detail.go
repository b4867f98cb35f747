package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rv-bit/blog-app-6cs028/internal/http/middleware"
	"github.com/rv-bit/blog-app-6cs028/internal/http/render"
	"github.com/rv-bit/blog-app-6cs028/internal/modules/catalog"
	"github.com/rv-bit/blog-app-6cs028/internal/shared/apperr"
	"github.com/rv-bit/blog-app-6cs028/pkg/view"
)

// ProductDetailHandler serves the product page: local row joined with the
// live catalog price/product objects.
type ProductDetailHandler struct {
	svc *catalog.Service
}

func NewProductDetailHandler(svc *catalog.Service) *ProductDetailHandler {
	return &ProductDetailHandler{svc: svc}
}

type productShowPage struct {
	Product view.Product
	Slug    string
}

// Show handles GET /product/:product_slug?product_id=...
// The slug is routing/display only; the lookup key is product_id.
func (h *ProductDetailHandler) Show(c *gin.Context) {
	productSlug := c.Param("product_slug")
	productID := c.Query("product_id")

	// Missing inputs 404 before any lookup happens.
	if productSlug == "" || productID == "" {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}

	vm, err := h.svc.Detail(c.Request.Context(), productID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		case errors.Is(err, catalog.ErrCatalogUnavailable):
			middleware.Fail(c, apperr.UnavailableErr("The catalog is temporarily unavailable.", err))
		default:
			// Includes the category mapping fault: data integrity, not user error.
			middleware.Fail(c, apperr.Wrap(err))
		}
		return
	}

	render.HTML(c, http.StatusOK, "product_show", productShowPage{
		Product: vm,
		Slug:    productSlug,
	})
}
