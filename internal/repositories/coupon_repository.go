package repositories

import (
	"context"

	"github.com/andriannf/storedesk/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CouponRow struct {
	models.Coupon `gorm:"embedded"`
	ProductName   string          `json:"product_name"`
	ProductPrice  decimal.Decimal `json:"product_price"`
}

type CouponRepository interface {
	List(ctx context.Context) ([]CouponRow, error)
	Get(ctx context.Context, id uuid.UUID) (*CouponRow, error)
	Create(ctx context.Context, coupon *models.Coupon) (*CouponRow, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*CouponRow, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type couponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) joinedQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Coupon{}).
		Select("coupons.*, p.name AS product_name, p.price AS product_price").
		Joins("JOIN products p ON coupons.product_id = p.id")
}

func (r *couponRepository) List(ctx context.Context) ([]CouponRow, error) {
	rows := []CouponRow{}
	if err := r.joinedQuery(ctx).Order("coupons.created_at DESC").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func (r *couponRepository) Get(ctx context.Context, id uuid.UUID) (*CouponRow, error) {
	var row CouponRow
	if err := r.joinedQuery(ctx).Where("coupons.id = ?", id).Take(&row).Error; err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

func (r *couponRepository) Create(ctx context.Context, coupon *models.Coupon) (*CouponRow, error) {
	if err := r.db.WithContext(ctx).Create(coupon).Error; err != nil {
		return nil, translate(err)
	}
	return r.Get(ctx, coupon.ID)
}

func (r *couponRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*CouponRow, error) {
	err := r.db.WithContext(ctx).Model(&models.Coupon{}).Where("id = ?", id).Updates(fields).Error
	if err != nil {
		return nil, translate(err)
	}
	return r.Get(ctx, id)
}

func (r *couponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Coupon{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
