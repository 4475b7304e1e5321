package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusPublished = "published"
)

// SocialPost keeps its row when the promoted product is deleted; the
// reference is nulled instead.
type SocialPost struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Content     string     `gorm:"not null" json:"content"`
	Platform    string     `gorm:"not null" json:"platform"`
	ProductID   *uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	Product     *Product   `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL" json:"-"`
	ImageURL    string     `json:"image_url"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	PostedAt    *time.Time `json:"posted_at"`
	Status      string     `gorm:"not null;default:'draft'" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (post *SocialPost) BeforeCreate(tx *gorm.DB) (err error) {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	return
}
