package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Coupon struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Code               string    `gorm:"unique;not null" json:"code"`
	ProductID          uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Product            *Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	DiscountPercentage int       `gorm:"not null" json:"discount_percentage"`
	ValidFrom          time.Time `gorm:"autoCreateTime" json:"valid_from"`
	ValidUntil         time.Time `gorm:"not null" json:"valid_until"`
	IsActive           bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
}

func (coupon *Coupon) BeforeCreate(tx *gorm.DB) (err error) {
	if coupon.ID == uuid.Nil {
		coupon.ID = uuid.New()
	}
	return
}
