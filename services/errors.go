package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Failure taxonomy surfaced to controllers. Anything that is not one of
// these sentinels is an unexpected persistence failure: controllers log it
// and show a generic server-error flash, never the raw store error.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
	ErrConstraint = errors.New("constraint violation")
)

// TranslateDBError maps store-level failures onto the taxonomy.
func TranslateDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	}
	// Drivers that gorm does not translate report uniqueness and FK
	// violations as plain errors.
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "FOREIGN KEY constraint failed") ||
		strings.Contains(msg, "violates foreign key constraint") {
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	}
	return err
}
