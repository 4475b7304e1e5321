package repositories

import (
	"context"

	"github.com/andriannf/storedesk/internal/models"
	"gorm.io/gorm"
)

type ChatRepository interface {
	// ListRecent returns at most limit messages, oldest first.
	ListRecent(ctx context.Context, limit int) ([]models.ChatMessage, error)
	Create(ctx context.Context, message *models.ChatMessage) (*models.ChatMessage, error)
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) ListRecent(ctx context.Context, limit int) ([]models.ChatMessage, error) {
	messages := []models.ChatMessage{}
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&messages).Error
	if err != nil {
		return nil, translate(err)
	}
	// Selected newest-first to apply the cap; present oldest-first.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *chatRepository) Create(ctx context.Context, message *models.ChatMessage) (*models.ChatMessage, error) {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return nil, translate(err)
	}
	var created models.ChatMessage
	if err := r.db.WithContext(ctx).Where("id = ?", message.ID).First(&created).Error; err != nil {
		return nil, translate(err)
	}
	return &created, nil
}
