package repositories

import (
	"context"

	"github.com/andriannf/storedesk/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerRow is a customer plus its purchase aggregates, the shape the
// dashboard's customer table renders.
type CustomerRow struct {
	models.Customer   `gorm:"embedded"`
	TotalPurchases    int    `json:"total_purchases"`
	PurchasedProducts string `json:"purchased_products"`
}

type CustomerRepository interface {
	List(ctx context.Context) ([]CustomerRow, error)
	Get(ctx context.Context, id uuid.UUID) (*CustomerRow, error)
	Create(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) aggregateQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Select("customers.*, COUNT(cp.id) AS total_purchases, COALESCE(STRING_AGG(p.name, ','), '') AS purchased_products").
		Joins("LEFT JOIN customer_products cp ON cp.customer_id = customers.id").
		Joins("LEFT JOIN products p ON p.id = cp.product_id").
		Group("customers.id")
}

func (r *customerRepository) List(ctx context.Context) ([]CustomerRow, error) {
	rows := []CustomerRow{}
	if err := r.aggregateQuery(ctx).Order("customers.created_at DESC").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func (r *customerRepository) Get(ctx context.Context, id uuid.UUID) (*CustomerRow, error) {
	var row CustomerRow
	if err := r.aggregateQuery(ctx).Where("customers.id = ?", id).Take(&row).Error; err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		return nil, translate(err)
	}
	var created models.Customer
	if err := r.db.WithContext(ctx).Where("id = ?", customer.ID).First(&created).Error; err != nil {
		return nil, translate(err)
	}
	return &created, nil
}

func (r *customerRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Customer, error) {
	err := r.db.WithContext(ctx).Model(&models.Customer{}).Where("id = ?", id).Updates(fields).Error
	if err != nil {
		return nil, translate(err)
	}
	var updated models.Customer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&updated).Error; err != nil {
		return nil, translate(err)
	}
	return &updated, nil
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Customer{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
