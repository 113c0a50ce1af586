package repository

import (
	"errors"

	"friender/internal/models"

	"gorm.io/gorm"
)

// translateWriteError maps gorm's translated driver errors onto the store's
// error taxonomy. Requires gorm.Config{TranslateError: true} on the session.
func translateWriteError(err error, conflictMsg, fkMsg string) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return models.NewConflictError(conflictMsg)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return models.NewForeignKeyError(fkMsg)
	default:
		return models.NewInternalError(err)
	}
}
