package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CustomerTypeIndividual = "individual"
	CustomerTypeBusiness   = "business"
)

type Customer struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	Type      string `gorm:"type:varchar(20);not null;default:'individual'"` // individual or business
	Company   string
	FirstName string
	LastName  string

	Email           string `gorm:"uniqueIndex;not null"`
	Phone           string
	DeliveryAddress string
	Notes           string

	// Empty for admin-created customers; such customers cannot log in
	// until a credential is assigned.
	PasswordHash string

	Orders []Order `gorm:"foreignKey:CustomerID"`

	gorm.Model
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}

// DisplayName returns the company name for business customers and the
// personal name otherwise.
func (c Customer) DisplayName() string {
	if c.Type == CustomerTypeBusiness && c.Company != "" {
		return c.Company
	}
	name := c.FirstName
	if c.LastName != "" {
		if name != "" {
			name += " "
		}
		name += c.LastName
	}
	if name == "" {
		return c.Email
	}
	return name
}
