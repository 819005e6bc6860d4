package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"film-catalog/internal/apperror"
	"film-catalog/internal/database"

	"gorm.io/gorm"
)

type baseRepository struct {
	db      *database.Database
	timeout time.Duration
}

func newBaseRepository(db *database.Database) baseRepository {
	return baseRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *baseRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// translateError maps gorm and driver errors onto the apperror kinds.
// Errors that already carry a kind pass through.
func translateError(err error, entity, operation string) error {
	if err == nil {
		return nil
	}
	if apperror.HasKind(err) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("%s not found", entity)
	}
	if isUniqueViolation(err) {
		return apperror.Conflict("%s already exists", entity)
	}
	return apperror.Internal(err, operation)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
