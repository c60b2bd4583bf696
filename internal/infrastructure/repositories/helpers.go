package repositories

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"

	domainerrors "octofit.backend/internal/domain/errors"
)

// pqUniqueViolation is the SQLSTATE for unique_violation.
const pqUniqueViolation = "23505"

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

// translateError maps driver errors onto domain errors.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainerrors.ErrNotFound
	case isDuplicateKey(err):
		return fmt.Errorf("%w: %v", domainerrors.ErrAlreadyExists, err)
	default:
		return err
	}
}

// paginate applies limit/offset. A limit of 0 leaves the query unbounded.
func paginate(q *gorm.DB, limit, offset int) *gorm.DB {
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	return q
}

// checkAffected maps a Delete/Update outcome, reporting ErrNotFound when no
// row matched.
func checkAffected(result *gorm.DB) error {
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
