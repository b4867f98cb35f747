package main

import (
	"context"
	"log"
	"os"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/rv-bit/blog-app-6cs028/internal/billing"
	"github.com/rv-bit/blog-app-6cs028/internal/modules/catalog"
	"github.com/rv-bit/blog-app-6cs028/internal/shared/slug"
)

// Pulls every price from the billing catalog and upserts the local product
// rows, so storefront URLs resolve after catalog edits made outside the admin.
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	bill, err := billing.FromEnv()
	if err != nil {
		log.Fatalf("billing: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	prices, err := bill.Provider.ListPrices(ctx, 0)
	if err != nil {
		log.Fatalf("list prices: %v", err)
	}

	repo := catalog.NewGormRepo(db)
	synced := 0

	for _, p := range prices {
		if !p.Active || p.ProductID == "" {
			continue
		}

		product, err := bill.Provider.RetrieveProduct(ctx, p.ProductID)
		if err != nil {
			logger.Warn("skip price, product lookup failed", "price", p.ID, "product", p.ProductID, "err", err)
			continue
		}

		now := time.Now()
		row := catalog.Product{
			ID:              uuid.NewString(),
			StripeProductID: product.ID,
			StripePriceID:   p.ID,
			Slug:            slug.FromName(product.Name),
			// Unknown products land in pantry until an admin recategorises them.
			CategoryID: int(catalog.CategoryPantry),
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := repo.UpsertByStripeProductID(ctx, row); err != nil {
			logger.Error("upsert failed", "product", product.ID, "err", err)
			continue
		}
		synced++
	}

	logger.Info("catalog sync done", "prices", len(prices), "synced", synced)
}
