package repositories

import (
	"context"

	"github.com/andriannf/storedesk/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SocialPostRow struct {
	models.SocialPost `gorm:"embedded"`
	ProductName       *string `json:"product_name"`
}

type SocialPostRepository interface {
	List(ctx context.Context) ([]SocialPostRow, error)
	Get(ctx context.Context, id uuid.UUID) (*SocialPostRow, error)
	Create(ctx context.Context, post *models.SocialPost) (*SocialPostRow, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*SocialPostRow, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type socialPostRepository struct {
	db *gorm.DB
}

func NewSocialPostRepository(db *gorm.DB) SocialPostRepository {
	return &socialPostRepository{db: db}
}

func (r *socialPostRepository) joinedQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.SocialPost{}).
		Select("social_posts.*, p.name AS product_name").
		Joins("LEFT JOIN products p ON social_posts.product_id = p.id")
}

func (r *socialPostRepository) List(ctx context.Context) ([]SocialPostRow, error) {
	rows := []SocialPostRow{}
	if err := r.joinedQuery(ctx).Order("social_posts.created_at DESC").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func (r *socialPostRepository) Get(ctx context.Context, id uuid.UUID) (*SocialPostRow, error) {
	var row SocialPostRow
	if err := r.joinedQuery(ctx).Where("social_posts.id = ?", id).Take(&row).Error; err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

func (r *socialPostRepository) Create(ctx context.Context, post *models.SocialPost) (*SocialPostRow, error) {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, translate(err)
	}
	return r.Get(ctx, post.ID)
}

func (r *socialPostRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*SocialPostRow, error) {
	err := r.db.WithContext(ctx).Model(&models.SocialPost{}).Where("id = ?", id).Updates(fields).Error
	if err != nil {
		return nil, translate(err)
	}
	return r.Get(ctx, id)
}

func (r *socialPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.SocialPost{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
