package usecases

import (
	"errors"

	"octofit.backend/internal/domain/entities"
	domainerrors "octofit.backend/internal/domain/errors"
)

// uniqueViolation reports a duplicate value on field as a validation error.
func uniqueViolation(resource, field string) error {
	return domainerrors.FieldError(field, entities.UniqueMessage(resource, field))
}

// mapDuplicate turns a storage-level duplicate key error into the field error
// clients see. Other errors pass through.
func mapDuplicate(err error, resource, field string) error {
	if errors.Is(err, domainerrors.ErrAlreadyExists) {
		return uniqueViolation(resource, field)
	}
	return err
}

// isNotFound treats a missing row as a normal outcome of a lookup.
func isNotFound(err error) bool {
	return errors.Is(err, domainerrors.ErrNotFound)
}
