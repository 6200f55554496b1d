package tx_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	txrepo "github.com/muhammadheryan/farm-portal/repository/tx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxRepository_CommitThenRollbackIsSafe(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	conn := sqlx.NewDb(db, "sqlmock")
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := txrepo.NewTxRepository(conn)
	tx, err := repo.BeginTx(context.Background())
	require.NoError(t, err)
	require.NoError(t, repo.CommitTx(tx))

	// deferred rollbacks run after commit in every use case
	assert.NoError(t, repo.RollbackTx(tx))
	assert.NoError(t, mock.ExpectationsWereMet())
}
