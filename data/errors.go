package data

import (
	"errors"
	"gorm.io/gorm"
	"strings"
)

var (
	NotFoundError           = errors.New("not found")
	MissingIDError          = errors.New("entity id is missing")
	ForeignKeyViolatedError = errors.New("foreign key violated")
	DuplicatedKeyError      = errors.New("duplicated key")
)

// translateError maps gorm and driver errors onto the package errors.
// The driver error is kept in the chain.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFoundError
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errors.Join(ForeignKeyViolatedError, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errors.Join(DuplicatedKeyError, err)
	}
	// drivers without TranslateError support
	msg := err.Error()
	switch {
	case strings.Contains(msg, "FOREIGN KEY constraint failed"),
		strings.Contains(msg, "violates foreign key constraint"):
		return errors.Join(ForeignKeyViolatedError, err)
	case strings.Contains(msg, "UNIQUE constraint failed"),
		strings.Contains(msg, "duplicate key value"):
		return errors.Join(DuplicatedKeyError, err)
	}
	return err
}
