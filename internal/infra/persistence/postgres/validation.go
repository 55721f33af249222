package postgres

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ErrInvalidRow is returned when a stored row does not satisfy the entity's
// constraints. Rows are validated after mapping, before they reach callers.
var ErrInvalidRow = errors.New("stored row failed validation")

var rowValidator = validator.New(validator.WithRequiredStructEnabled())

func validateRow(entity any) error {
	if err := rowValidator.Struct(entity); err != nil {
		return errors.Wrapf(ErrInvalidRow, "%v", err)
	}

	return nil
}
