package aggregates

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	domainagg "github.com/yungbote/claimline-backend/internal/domain/aggregates"
	"gorm.io/gorm"
)

func TestMapError_NotFound(t *testing.T) {
	err := MapError("op", gorm.ErrRecordNotFound)
	if !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("expected not_found code, got %q (%v)", domainagg.CodeOf(err), err)
	}
}

func TestMapError_PassthroughAggregateError(t *testing.T) {
	in := domainagg.NewError(domainagg.CodeRetryable, "op", "retry", errors.New("boom"))
	out := MapError("other", in)
	if out != in {
		t.Fatalf("expected passthrough aggregate error")
	}
	wrapped := fmt.Errorf("tx: %w", in)
	if MapError("other", wrapped) != wrapped {
		t.Fatalf("expected passthrough for wrapped aggregate error")
	}
}

func TestMapError_PostgresCodes(t *testing.T) {
	cases := []string{"23505", "23503", "23514", "40001", "40P01"}
	for _, code := range cases {
		err := MapError("op", fmt.Errorf("insert: %w", &pgconn.PgError{Code: code, Message: "x"}))
		aggErr, ok := domainagg.AsError(err)
		if !ok || aggErr.Code != domainagg.CodeStorageConflict {
			t.Fatalf("pg %s: expected storage_conflict, got %v", code, err)
		}
		if aggErr.BackendCode != code {
			t.Fatalf("pg %s: backend code %q", code, aggErr.BackendCode)
		}
	}
}

func TestMapError_SQLiteMessages(t *testing.T) {
	err := MapError("op", errors.New("constraint failed: UNIQUE constraint failed: export_variant_link.export_version_id (2067)"))
	aggErr, ok := domainagg.AsError(err)
	if !ok || aggErr.Code != domainagg.CodeStorageConflict || aggErr.BackendCode != "SQLITE_CONSTRAINT_UNIQUE" {
		t.Fatalf("unexpected mapping: %+v", aggErr)
	}
}

func TestMapError_ContextAndUnknown(t *testing.T) {
	if !domainagg.IsCode(MapError("op", context.Canceled), domainagg.CodeRetryable) {
		t.Fatalf("cancel should be retryable")
	}
	if !domainagg.IsCode(MapError("op", errors.New("no such table: claim")), domainagg.CodeInternal) {
		t.Fatalf("unknown errors should be internal")
	}
}
