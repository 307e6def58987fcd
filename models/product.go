package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	Name   string    `gorm:"not null"`
	Price  float64   `gorm:"type:decimal(10,2);not null"`
	Active bool      `gorm:"default:true"`

	OrderItems []OrderItem `gorm:"foreignKey:ProductID"`

	gorm.Model
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
