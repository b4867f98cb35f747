package http

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rv-bit/blog-app-6cs028/internal/billing"
	"github.com/rv-bit/blog-app-6cs028/internal/http/flash"
	"github.com/rv-bit/blog-app-6cs028/internal/http/handlers"
	"github.com/rv-bit/blog-app-6cs028/internal/http/handlers/admin"
	"github.com/rv-bit/blog-app-6cs028/internal/http/middleware"
	"github.com/rv-bit/blog-app-6cs028/internal/modules/catalog"
	"github.com/rv-bit/blog-app-6cs028/internal/modules/pricing"
	"github.com/rv-bit/blog-app-6cs028/internal/storage"
)

type Deps struct {
	Logger   *slog.Logger
	DB       *gorm.DB
	Provider billing.Provider
	Storage  storage.Storage
}

func NewRouter(d Deps) *gin.Engine {
	codec := flash.NewCodec(
		[]byte(envOr("FLASH_SECRET", "dev-flash-secret")),
		"flash",
		os.Getenv("COOKIE_SECURE") == "true",
	)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.ErrorHandler(d.Logger),
		middleware.FlashMiddleware(codec),
	)

	repo := catalog.NewGormRepo(d.DB)
	catalogSvc := catalog.NewService(repo, d.Provider)
	pricingSvc := pricing.NewService(d.Provider)

	product := handlers.NewProductDetailHandler(catalogSvc)
	r.GET("/product/:product_slug", product.Show)

	prices := admin.NewPricesHandler(pricingSvc, codec)
	products := admin.NewProductsHandler(d.Provider, repo, d.Storage, codec)

	// Authn/authz for this group lives at the edge proxy; see DESIGN.md.
	g := r.Group("/profile/admin")
	{
		g.GET("/prices", prices.List)
		g.GET("/prices/new", prices.New)
		g.POST("/prices", prices.Create)
		g.GET("/prices/:id/edit", prices.Edit)
		g.POST("/prices/:id", prices.Update)

		g.GET("/products/new", products.New)
		g.POST("/products", products.Create)
	}

	return r
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
