package catalog

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type Repository interface {
	GetByStripeProductID(ctx context.Context, stripeProductID string) (Product, error)
	Create(ctx context.Context, p Product) error
	UpsertByStripeProductID(ctx context.Context, p Product) error
}

type GormRepo struct {
	db *gorm.DB
}

func NewGormRepo(db *gorm.DB) *GormRepo {
	return &GormRepo{db: db}
}

func (r *GormRepo) GetByStripeProductID(ctx context.Context, stripeProductID string) (Product, error) {
	var p Product
	err := r.db.WithContext(ctx).
		Where("stripe_product_id = ?", stripeProductID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Product{}, ErrNotFound
	}
	return p, err
}

func (r *GormRepo) Create(ctx context.Context, p Product) error {
	return r.db.WithContext(ctx).Create(&p).Error
}

func (r *GormRepo) UpsertByStripeProductID(ctx context.Context, p Product) error {
	var existing Product
	err := r.db.WithContext(ctx).
		Where("stripe_product_id = ?", p.StripeProductID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(&p).Error
	}
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", existing.ID).
		Updates(map[string]any{
			"stripe_price_id": p.StripePriceID,
			"slug":            p.Slug,
			"updated_at":      p.UpdatedAt,
		}).Error
}

func IsDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return false
}
