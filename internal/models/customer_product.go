package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerProduct records a single purchase linking a customer to a
// product. Rows disappear with either side of the relation.
type CustomerProduct struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer     *Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Product      *Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	Quantity     int       `gorm:"not null;default:1" json:"quantity"`
	PurchaseDate time.Time `gorm:"autoCreateTime" json:"purchase_date"`
}

func (CustomerProduct) TableName() string {
	return "customer_products"
}

func (cp *CustomerProduct) BeforeCreate(tx *gorm.DB) (err error) {
	if cp.ID == uuid.Nil {
		cp.ID = uuid.New()
	}
	return
}
