package aggregates

import (
	"context"

	"gorm.io/gorm"

	domainagg "github.com/yungbote/claimline-backend/internal/domain/aggregates"
	"github.com/yungbote/claimline-backend/internal/platform/dbctx"
)

// TxRunner is the unit of work every pipeline write goes through: fn sees
// one transaction and its rows commit together or not at all.
type TxRunner interface {
	InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error
}

type gormTxRunner struct {
	db *gorm.DB
}

func NewGormTxRunner(db *gorm.DB) TxRunner {
	return &gormTxRunner{db: db}
}

func (r *gormTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	if fn == nil {
		return nil
	}
	if r == nil || r.db == nil {
		return domainagg.NewError(domainagg.CodeInternal, "aggregate.tx", "no database configured for pipeline writes", nil)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return fn(dbctx.Context{Ctx: ctx, Tx: tx})
	})
}
