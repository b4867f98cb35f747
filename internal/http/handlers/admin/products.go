package admin

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rv-bit/blog-app-6cs028/internal/billing"
	"github.com/rv-bit/blog-app-6cs028/internal/http/flash"
	"github.com/rv-bit/blog-app-6cs028/internal/http/middleware"
	"github.com/rv-bit/blog-app-6cs028/internal/http/render"
	"github.com/rv-bit/blog-app-6cs028/internal/http/validation"
	"github.com/rv-bit/blog-app-6cs028/internal/modules/catalog"
	"github.com/rv-bit/blog-app-6cs028/internal/modules/pricing"
	"github.com/rv-bit/blog-app-6cs028/internal/shared/apperr"
	"github.com/rv-bit/blog-app-6cs028/internal/shared/slug"
	"github.com/rv-bit/blog-app-6cs028/internal/storage"
	"github.com/rv-bit/blog-app-6cs028/pkg/view"
)

// ProductsHandler creates catalog products: the billing catalog owns the
// product and its default price, we keep the local row that makes the
// storefront URL resolve.
type ProductsHandler struct {
	provider billing.Provider
	repo     catalog.Repository
	store    storage.Storage
	codec    *flash.Codec
}

func NewProductsHandler(provider billing.Provider, repo catalog.Repository, store storage.Storage, codec *flash.Codec) *ProductsHandler {
	return &ProductsHandler{provider: provider, repo: repo, store: store, codec: codec}
}

func (h *ProductsHandler) New(c *gin.Context) {
	h.renderForm(c, http.StatusOK, view.AdminProductFormValues{
		CategoryID: int(catalog.CategoryPantry),
		Currency:   "GBP",
	}, nil)
}

type productCreateRequest struct {
	Name        string `form:"name" binding:"required,min=2,max=255"`
	Description string `form:"description"`
	CategoryID  int    `form:"category_id" binding:"required"`
	Nutrition   string `form:"nutrition"`
	Amount      string `form:"amount" binding:"required"`
	Currency    string `form:"currency" binding:"required,oneof=GBP USD EUR"`
}

func (h *ProductsHandler) Create(c *gin.Context) {
	var req productCreateRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderForm(c, http.StatusUnprocessableEntity, productFormValues(req), validation.FromBindError(err, &req))
		return
	}

	errs := map[string]string{}

	if _, err := catalog.Category(req.CategoryID).Slug(); err != nil {
		errs["category_id"] = "Select a category."
	}
	if req.Nutrition != "" && !json.Valid([]byte(req.Nutrition)) {
		errs["nutrition"] = "Must be valid JSON."
	}

	// Default price goes through the same form rules as the admin price form.
	f := pricing.NewForm(nil, nil, nil)
	f.SetAmount(req.Amount)
	f.SetCurrency(req.Currency)
	for k, v := range formFieldErrors(f.Errors()) {
		errs[k] = v
	}

	if len(errs) > 0 {
		h.renderForm(c, http.StatusUnprocessableEntity, productFormValues(req), errs)
		return
	}
	payload := f.Values()

	var images []string
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		src, err := fh.Open()
		if err != nil {
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
		defer src.Close()

		res, err := h.store.Put(c.Request.Context(), src, storage.PutInput{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
		})
		if err != nil {
			if err == storage.ErrUnsupportedType {
				errs["image"] = "Use a PNG, JPEG or WebP image."
				h.renderForm(c, http.StatusUnprocessableEntity, productFormValues(req), errs)
				return
			}
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
		images = append(images, res.URL)
	}

	created, err := h.provider.CreateProduct(c.Request.Context(), billing.CreateProductInput{
		Name:            req.Name,
		Description:     req.Description,
		Images:          images,
		PriceUnitAmount: payload.UnitAmountDecimal,
		PriceCurrency:   payload.Currency,
	})
	if err != nil {
		middleware.Fail(c, apperr.UnavailableErr("Could not create the product.", err))
		return
	}

	var nutrition []byte
	if req.Nutrition != "" {
		nutrition = []byte(req.Nutrition)
	}

	now := time.Now()
	row := catalog.Product{
		ID:              uuid.NewString(),
		StripeProductID: created.ID,
		StripePriceID:   created.DefaultPriceID,
		Slug:            slug.FromName(req.Name),
		CategoryID:      req.CategoryID,
		Nutrition:       nutrition,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := h.repo.Create(c.Request.Context(), row); err != nil {
		if catalog.IsDuplicateKey(err) {
			middleware.Fail(c, apperr.ConflictErr("This product already exists."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	middleware.SetFlashCookie(c, h.codec, view.Flash{Kind: view.FlashSuccess, Message: "Product created."})
	c.Redirect(http.StatusSeeOther, pricesPath)
}

func (h *ProductsHandler) renderForm(c *gin.Context, status int, values view.AdminProductFormValues, errs map[string]string) {
	opts := make([]view.AdminCategoryOption, 0, len(catalog.Categories()))
	for _, cat := range catalog.Categories() {
		s, err := cat.Slug()
		if err != nil {
			continue
		}
		opts = append(opts, view.AdminCategoryOption{ID: int(cat), Slug: s})
	}

	render.HTML(c, status, "admin_product_form", view.AdminProductFormPage{
		Values:     values,
		Errors:     errs,
		Categories: opts,
		Currencies: pricing.Currencies,
	})
}

func productFormValues(req productCreateRequest) view.AdminProductFormValues {
	return view.AdminProductFormValues{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Nutrition:   req.Nutrition,
		Amount:      req.Amount,
		Currency:    req.Currency,
	}
}
