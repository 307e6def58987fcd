package services

import (
	"errors"
	"testing"

	"orderdesk-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDuplicateCustomerEmailIsConstraintError(t *testing.T) {
	db := newTestDB(t)

	first := createTestCustomer(t, db, "a@b.com")

	duplicate := models.Customer{
		Type:      models.CustomerTypeIndividual,
		FirstName: "Bea",
		Email:     "a@b.com",
	}
	err := TranslateDBError(db.Create(&duplicate).Error)
	require.ErrorIs(t, err, ErrConstraint)

	// The existing row is untouched and no second row was inserted.
	var count int64
	db.Model(&models.Customer{}).Where("email = ?", "a@b.com").Count(&count)
	assert.EqualValues(t, 1, count)

	var reloaded models.Customer
	require.NoError(t, db.First(&reloaded, "id = ?", first.ID).Error)
	assert.Equal(t, "Ana", reloaded.FirstName)
}

func TestTranslateDBError(t *testing.T) {
	assert.Nil(t, TranslateDBError(nil))
	assert.ErrorIs(t, TranslateDBError(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, TranslateDBError(gorm.ErrDuplicatedKey), ErrConstraint)
	assert.ErrorIs(t, TranslateDBError(gorm.ErrForeignKeyViolated), ErrConstraint)

	unexpected := errors.New("connection reset")
	assert.Equal(t, unexpected, TranslateDBError(unexpected))
}
