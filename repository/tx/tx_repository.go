package tx

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// TxRepository hands out the transaction that every multi-write use case
// threads through the *Tx repository methods.
type TxRepository interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	CommitTx(tx *sqlx.Tx) error
	RollbackTx(tx *sqlx.Tx) error
}

type txRepo struct {
	db   *sqlx.DB
	opts *sql.TxOptions
}

// NewTxRepository begins transactions at READ COMMITTED; row locks taken
// with SELECT ... FOR UPDATE serialize writers on the same entity.
func NewTxRepository(db *sqlx.DB) TxRepository {
	return &txRepo{db: db, opts: &sql.TxOptions{Isolation: sql.LevelReadCommitted}}
}

func (r *txRepo) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, r.opts)
}

func (r *txRepo) CommitTx(tx *sqlx.Tx) error {
	return tx.Commit()
}

// RollbackTx is a no-op error-wise once the transaction has finished.
func (r *txRepo) RollbackTx(tx *sqlx.Tx) error {
	if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
		return err
	}
	return nil
}
