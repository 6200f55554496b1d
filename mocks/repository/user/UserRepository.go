package user

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/farm-portal/constant"
	"github.com/muhammadheryan/farm-portal/model"
	"github.com/stretchr/testify/mock"
)

// UserRepository is a testify mock of the UserRepository interface.
type UserRepository struct {
	mock.Mock
}

func (_m *UserRepository) CreateTx(ctx context.Context, tx *sqlx.Tx, account *model.Account) error {
	ret := _m.Called(ctx, tx, account)

	r0 := ret.Error(0)
	return r0
}

func (_m *UserRepository) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	ret := _m.Called(ctx, filter)

	var r0 *model.UserEntity
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.UserEntity)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *UserRepository) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, filter *model.UserFilter) (*model.UserEntity, error) {
	ret := _m.Called(ctx, tx, filter)

	var r0 *model.UserEntity
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.UserEntity)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *UserRepository) GetProfile(ctx context.Context, userID string, role constant.Role) (model.RoleProfile, error) {
	ret := _m.Called(ctx, userID, role)

	var r0 model.RoleProfile
	if v := ret.Get(0); v != nil {
		r0 = v.(model.RoleProfile)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *UserRepository) IdentifierExists(ctx context.Context, role constant.Role, value string) (bool, error) {
	ret := _m.Called(ctx, role, value)

	var r0 bool
	if v := ret.Get(0); v != nil {
		r0 = v.(bool)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *UserRepository) UpdateOTP(ctx context.Context, user *model.UserEntity) error {
	ret := _m.Called(ctx, user)

	r0 := ret.Error(0)
	return r0
}

func (_m *UserRepository) UpdateVerificationTx(ctx context.Context, tx *sqlx.Tx, user *model.UserEntity) error {
	ret := _m.Called(ctx, tx, user)

	r0 := ret.Error(0)
	return r0
}

func (_m *UserRepository) UpdatePasswordTx(ctx context.Context, tx *sqlx.Tx, userID string, passwordHash string) error {
	ret := _m.Called(ctx, tx, userID, passwordHash)

	r0 := ret.Error(0)
	return r0
}

func (_m *UserRepository) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, user *model.UserEntity) error {
	ret := _m.Called(ctx, tx, user)

	r0 := ret.Error(0)
	return r0
}

func (_m *UserRepository) UpdateProfileTx(ctx context.Context, tx *sqlx.Tx, account *model.Account) error {
	ret := _m.Called(ctx, tx, account)

	r0 := ret.Error(0)
	return r0
}

func (_m *UserRepository) List(ctx context.Context, filter *model.UserListFilter) ([]model.UserEntity, int64, error) {
	ret := _m.Called(ctx, filter)

	var r0 []model.UserEntity
	if v := ret.Get(0); v != nil {
		r0 = v.([]model.UserEntity)
	}
	var r1 int64
	if v := ret.Get(1); v != nil {
		r1 = v.(int64)
	}
	r2 := ret.Error(2)
	return r0, r1, r2
}

func (_m *UserRepository) Stats(ctx context.Context) (*model.UserStats, error) {
	ret := _m.Called(ctx)

	var r0 *model.UserStats
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.UserStats)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// NewUserRepository creates a new instance of UserRepository. It also registers a cleanup
// function to assert the mocks expectations.
func NewUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserRepository {
	m := &UserRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
