package aggregates

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	domainagg "github.com/yungbote/claimline-backend/internal/domain/aggregates"
	"gorm.io/gorm"
)

// MapError maps infrastructure failures into aggregate error codes.
// Aggregate errors already in the chain pass through untouched.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := domainagg.AsError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainagg.Wrap(domainagg.CodeNotFound, op, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return domainagg.Wrap(domainagg.CodeRetryable, op, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return storageConflict(op, "DUPLICATED_KEY", err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return storageConflict(op, "FOREIGN_KEY_VIOLATED", err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return storageConflict(op, "CHECK_CONSTRAINT_VIOLATED", err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		code := strings.TrimSpace(pgErr.Code)
		switch {
		case strings.HasPrefix(code, "23"): // integrity_constraint_violation class
			return storageConflict(op, code, err)
		case code == "40001", code == "40P01", code == "55P03": // serialization/deadlock/lock_not_available
			return storageConflict(op, code, err)
		}
	}

	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	switch {
	case strings.Contains(msg, "unique constraint failed"):
		return storageConflict(op, "SQLITE_CONSTRAINT_UNIQUE", err)
	case strings.Contains(msg, "foreign key constraint failed"):
		return storageConflict(op, "SQLITE_CONSTRAINT_FOREIGNKEY", err)
	case strings.Contains(msg, "constraint failed"):
		return storageConflict(op, "SQLITE_CONSTRAINT", err)
	case strings.Contains(msg, "database is locked"):
		return storageConflict(op, "SQLITE_BUSY", err)
	case strings.Contains(msg, "duplicate key"):
		return storageConflict(op, "DUPLICATE_KEY", err)
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "temporar"):
		return domainagg.Wrap(domainagg.CodeRetryable, op, err)
	default:
		return domainagg.Wrap(domainagg.CodeInternal, op, err)
	}
}

func storageConflict(op, backendCode string, err error) error {
	return &domainagg.Error{
		Code:        domainagg.CodeStorageConflict,
		Op:          strings.TrimSpace(op),
		Message:     err.Error(),
		BackendCode: backendCode,
		Cause:       err,
	}
}
