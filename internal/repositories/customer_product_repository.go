package repositories

import (
	"context"

	"github.com/andriannf/storedesk/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CustomerProductRow struct {
	models.CustomerProduct `gorm:"embedded"`
	CustomerName           string          `json:"customer_name"`
	CustomerEmail          string          `json:"customer_email"`
	ProductName            string          `json:"product_name"`
	ProductPrice           decimal.Decimal `json:"product_price"`
}

type CustomerProductRepository interface {
	List(ctx context.Context) ([]CustomerProductRow, error)
	Create(ctx context.Context, purchase *models.CustomerProduct) (*CustomerProductRow, error)
}

type customerProductRepository struct {
	db *gorm.DB
}

func NewCustomerProductRepository(db *gorm.DB) CustomerProductRepository {
	return &customerProductRepository{db: db}
}

func (r *customerProductRepository) joinedQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.CustomerProduct{}).
		Select("customer_products.*, c.name AS customer_name, c.email AS customer_email, p.name AS product_name, p.price AS product_price").
		Joins("JOIN customers c ON customer_products.customer_id = c.id").
		Joins("JOIN products p ON customer_products.product_id = p.id")
}

func (r *customerProductRepository) List(ctx context.Context) ([]CustomerProductRow, error) {
	rows := []CustomerProductRow{}
	if err := r.joinedQuery(ctx).Order("customer_products.purchase_date DESC").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func (r *customerProductRepository) Create(ctx context.Context, purchase *models.CustomerProduct) (*CustomerProductRow, error) {
	if err := r.db.WithContext(ctx).Create(purchase).Error; err != nil {
		return nil, translate(err)
	}
	var row CustomerProductRow
	if err := r.joinedQuery(ctx).Where("customer_products.id = ?", purchase.ID).Take(&row).Error; err != nil {
		return nil, translate(err)
	}
	return &row, nil
}
