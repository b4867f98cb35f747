package admin

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rv-bit/blog-app-6cs028/internal/billing"
	"github.com/rv-bit/blog-app-6cs028/internal/http/flash"
	"github.com/rv-bit/blog-app-6cs028/internal/http/middleware"
	"github.com/rv-bit/blog-app-6cs028/internal/http/render"
	"github.com/rv-bit/blog-app-6cs028/internal/http/validation"
	"github.com/rv-bit/blog-app-6cs028/internal/modules/pricing"
	"github.com/rv-bit/blog-app-6cs028/internal/shared/apperr"
	"github.com/rv-bit/blog-app-6cs028/pkg/view"
)

const pricesPath = "/profile/admin/prices"

type PricesHandler struct {
	svc   *pricing.Service
	codec *flash.Codec
}

func NewPricesHandler(svc *pricing.Service, codec *flash.Codec) *PricesHandler {
	return &PricesHandler{svc: svc, codec: codec}
}

// List renders the prices table. Sorting is driven by ?sort=status&dir=asc|desc;
// anything else leaves the catalog's order untouched.
func (h *PricesHandler) List(c *gin.Context) {
	prices, err := h.svc.List(c.Request.Context(), 100)
	if err != nil {
		middleware.Fail(c, apperr.UnavailableErr("Could not load prices.", err))
		return
	}

	tbl := pricing.NewTable(prices)

	sortKey := c.Query("sort")
	dir := c.Query("dir")
	if sortKey == "status" {
		tbl.SortByStatus(dir == "desc")
	}

	rows := make([]view.AdminPriceRow, 0, tbl.Len())
	for _, r := range tbl.Rows() {
		rows = append(rows, view.AdminPriceRow{
			ID:            r.ID,
			ProductID:     r.ProductID,
			Type:          r.Type,
			BillingScheme: r.BillingScheme,
			Status:        r.Status,
			Active:        r.Active,
		})
	}

	page := view.AdminPricesPage{
		Columns: pricing.Columns,
		Rows:    rows,
		Sort:    sortKey,
		Dir:     dir,
		Empty:   pricing.EmptyMessage,
	}
	// Header link cycles unsorted -> asc -> desc.
	switch {
	case sortKey == "status" && dir == "desc":
		page.NextDir, page.DirMark = "asc", "↓"
	case sortKey == "status":
		page.NextDir, page.DirMark = "desc", "↑"
	default:
		page.NextDir, page.DirMark = "asc", "↕"
	}

	render.HTML(c, http.StatusOK, "admin_prices", page)
}

func (h *PricesHandler) New(c *gin.Context) {
	h.renderNewForm(c, http.StatusOK, view.AdminPriceFormValues{
		Type:     pricing.TypeOneTime,
		Currency: "GBP",
		Amount:   "0.00",
	}, "", nil)
}

type priceCreateRequest struct {
	ProductID   string `form:"product_id" binding:"required"`
	Name        string `form:"name"`
	Type        string `form:"type" binding:"omitempty,oneof=recurring one_time"`
	Amount      string `form:"amount" binding:"required"`
	Currency    string `form:"currency" binding:"required,oneof=GBP USD EUR"`
	Default     bool   `form:"default"`
	Description string `form:"description"`
	LookupKey   string `form:"lookup_key"`
}

func (h *PricesHandler) Create(c *gin.Context) {
	var req priceCreateRequest
	if err := c.ShouldBind(&req); err != nil {
		errs := validation.FromBindError(err, &req)
		h.renderNewForm(c, http.StatusUnprocessableEntity, newFormValues(req), req.ProductID, errs)
		return
	}

	var svcErr error
	f := pricing.NewForm(nil, func(p pricing.Payload) {
		_, svcErr = h.svc.Create(c.Request.Context(), req.ProductID, p)
	}, nil)

	f.SetName(req.Name)
	if req.Type != "" {
		f.SetType(req.Type)
	}
	f.SetAmount(req.Amount)
	f.SetCurrency(req.Currency)
	f.SetDescription(req.Description)
	f.SetLookupKey(req.LookupKey)
	f.SetDefault(req.Default)

	if err := f.Submit(); err != nil {
		var ie *pricing.InvalidError
		if errors.As(err, &ie) {
			h.renderNewForm(c, http.StatusUnprocessableEntity, newFormValues(req), req.ProductID, formFieldErrors(ie.Fields))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if svcErr != nil {
		middleware.Fail(c, apperr.UnavailableErr("Could not save the price.", svcErr))
		return
	}

	middleware.SetFlashCookie(c, h.codec, view.Flash{Kind: view.FlashSuccess, Message: "Price created."})
	c.Redirect(http.StatusSeeOther, pricesPath)
}

// Edit renders the per-row edit form, pre-populated from the live price.
func (h *PricesHandler) Edit(c *gin.Context) {
	id := c.Param("id")

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, billing.ErrNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Price not found."))
			return
		}
		middleware.Fail(c, apperr.UnavailableErr("Could not load the price.", err))
		return
	}

	render.HTML(c, http.StatusOK, "admin_price_form", view.AdminPriceFormPage{
		Mode:       "edit",
		Action:     pricesPath + "/" + p.ID,
		PriceID:    p.ID,
		Values:     editFormValues(p),
		Currencies: pricing.Currencies,
	})
}

type priceUpdateRequest struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	LookupKey   string `form:"lookup_key"`
	Default     bool   `form:"default"`
	Active      bool   `form:"active"`
}

func (h *PricesHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req priceUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Form data is invalid.", validation.FromBindError(err, &req)))
		return
	}

	current, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, billing.ErrNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Price not found."))
			return
		}
		middleware.Fail(c, apperr.UnavailableErr("Could not load the price.", err))
		return
	}

	// Amount and currency are immutable upstream; the form is seeded with the
	// live values so only the editable fields move.
	seed := pricing.Payload{
		Name:              current.Nickname,
		Type:              current.Type,
		UnitAmountDecimal: current.UnitAmount,
		Currency:          upperCurrency(current.Currency),
		Options: pricing.Options{
			LookupKey: current.LookupKey,
		},
	}

	var svcErr error
	f := pricing.NewForm(&seed, func(p pricing.Payload) {
		_, svcErr = h.svc.Update(c.Request.Context(), id, p)
	}, nil)

	f.SetName(req.Name)
	f.SetDescription(req.Description)
	f.SetLookupKey(req.LookupKey)
	f.SetDefault(req.Default)
	// Checkbox semantics: absent means deactivate.
	f.SetActive(req.Active)

	if err := f.Submit(); err != nil {
		var ie *pricing.InvalidError
		if errors.As(err, &ie) {
			render.HTML(c, http.StatusUnprocessableEntity, "admin_price_form", view.AdminPriceFormPage{
				Mode:       "edit",
				Action:     pricesPath + "/" + id,
				PriceID:    id,
				Values:     editFormValues(current),
				Errors:     formFieldErrors(ie.Fields),
				Currencies: pricing.Currencies,
			})
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if svcErr != nil {
		middleware.Fail(c, apperr.UnavailableErr("Could not save the price.", svcErr))
		return
	}

	middleware.SetFlashCookie(c, h.codec, view.Flash{Kind: view.FlashSuccess, Message: "Price updated."})
	c.Redirect(http.StatusSeeOther, pricesPath)
}

func (h *PricesHandler) renderNewForm(c *gin.Context, status int, values view.AdminPriceFormValues, productID string, errs map[string]string) {
	render.HTML(c, status, "admin_price_form", view.AdminPriceFormPage{
		Mode:       "new",
		Action:     pricesPath,
		ProductID:  productID,
		Values:     values,
		Errors:     errs,
		Currencies: pricing.Currencies,
	})
}

func newFormValues(req priceCreateRequest) view.AdminPriceFormValues {
	return view.AdminPriceFormValues{
		Name:        req.Name,
		Type:        req.Type,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
		LookupKey:   req.LookupKey,
		Default:     req.Default,
	}
}

func editFormValues(p billing.Price) view.AdminPriceFormValues {
	return view.AdminPriceFormValues{
		Name:      p.Nickname,
		Type:      p.Type,
		Amount:    fmt.Sprintf("%.2f", float64(p.UnitAmount)/100),
		Currency:  upperCurrency(p.Currency),
		LookupKey: p.LookupKey,
		Active:    p.Active,
	}
}

// Form state keys -> input names, for inline display next to the right field.
func formFieldErrors(fields pricing.FieldErrors) map[string]string {
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		if k == "unit_amount_decimal" {
			k = "amount"
		}
		out[k] = v
	}
	return out
}
