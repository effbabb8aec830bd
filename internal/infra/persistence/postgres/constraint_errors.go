package postgres

import (
	"gorm.io/gorm"

	"mart/internal/errors"
)

// Helper functions for constraint error checking. They rely on the dialector
// translating driver errors, which New and the tests enable via TranslateError.

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}
