package tx

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

// TxRepository is a testify mock of the TxRepository interface.
type TxRepository struct {
	mock.Mock
}

func (_m *TxRepository) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	ret := _m.Called(ctx)

	var r0 *sqlx.Tx
	if v := ret.Get(0); v != nil {
		r0 = v.(*sqlx.Tx)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *TxRepository) CommitTx(tx *sqlx.Tx) error {
	ret := _m.Called(tx)

	r0 := ret.Error(0)
	return r0
}

func (_m *TxRepository) RollbackTx(tx *sqlx.Tx) error {
	ret := _m.Called(tx)

	r0 := ret.Error(0)
	return r0
}

// NewTxRepository creates a new instance of TxRepository. It also registers a cleanup
// function to assert the mocks expectations.
func NewTxRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *TxRepository {
	m := &TxRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
