package testutil

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"

	"github.com/yungbote/claimline-backend/internal/data/aggregates"
	"github.com/yungbote/claimline-backend/internal/platform/dbctx"
)

// errInjectedCommit forces the real transaction to roll back.
var errInjectedCommit = errors.New("injected commit failure")

// InjectedTxRunner runs aggregate bodies with injectable failures. With DB
// set the body runs inside a real transaction, so a FailCommit proves that
// every row written by the body is discarded.
type InjectedTxRunner struct {
	DB *gorm.DB

	FailBegin  error
	FailCommit error

	mu            sync.Mutex
	BeginCalls    int
	CommitCalls   int
	RollbackCalls int
}

var _ aggregates.TxRunner = (*InjectedTxRunner)(nil)

func (r *InjectedTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	r.mu.Lock()
	r.BeginCalls++
	r.mu.Unlock()

	if r.FailBegin != nil {
		return r.FailBegin
	}

	var err error
	if r.DB == nil {
		err = fn(dbctx.Context{Ctx: ctx})
		if err == nil && r.FailCommit != nil {
			err = r.FailCommit
		}
	} else {
		err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if bodyErr := fn(dbctx.Context{Ctx: ctx, Tx: tx}); bodyErr != nil {
				return bodyErr
			}
			if r.FailCommit != nil {
				return errInjectedCommit
			}
			return nil
		})
		if errors.Is(err, errInjectedCommit) {
			err = r.FailCommit
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.RollbackCalls++
		return err
	}
	r.CommitCalls++
	return nil
}
