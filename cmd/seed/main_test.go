package main

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/farm-portal/constant"
	txmock "github.com/muhammadheryan/farm-portal/mocks/repository/tx"
	usermock "github.com/muhammadheryan/farm-portal/mocks/repository/user"
	"github.com/muhammadheryan/farm-portal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var now = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func validSeed() adminSeed {
	return adminSeed{
		Name:       "System Administrator",
		Email:      "Admin@FarmPortal.local",
		Phone:      "+91 98765 43210",
		Password:   "Str0ng#Pass",
		EmployeeID: "ADM001",
	}
}

func newTx(t *testing.T) *sqlx.Tx {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectBegin()
	conn := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { _ = conn.Close() })
	tx, err := conn.Beginx()
	require.NoError(t, err)
	return tx
}

func TestEnsureAdmin(t *testing.T) {
	t.Run("admin already present", func(t *testing.T) {
		txRepo := txmock.NewTxRepository(t)
		users := usermock.NewUserRepository(t)
		users.On("List", mock.Anything, mock.AnythingOfType("*model.UserListFilter")).
			Return([]model.UserEntity{{ID: "a1", Role: constant.RoleAdmin}}, int64(1), nil)

		created, err := ensureAdmin(context.Background(), txRepo, users, validSeed(), now)
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("weak password", func(t *testing.T) {
		txRepo := txmock.NewTxRepository(t)
		users := usermock.NewUserRepository(t)
		users.On("List", mock.Anything, mock.Anything).Return([]model.UserEntity{}, int64(0), nil)

		seed := validSeed()
		seed.Password = "admin123"
		_, err := ensureAdmin(context.Background(), txRepo, users, seed, now)
		assert.ErrorContains(t, err, "weak password")
	})

	t.Run("creates an active verified admin", func(t *testing.T) {
		txRepo := txmock.NewTxRepository(t)
		users := usermock.NewUserRepository(t)
		tx := newTx(t)

		users.On("List", mock.Anything, &model.UserListFilter{
			Role:            constant.RoleAdmin,
			IncludeInactive: true,
			PageRequest:     model.PageRequest{Page: 1, PerPage: 1},
		}).Return([]model.UserEntity{}, int64(0), nil)
		txRepo.On("BeginTx", mock.Anything).Return(tx, nil)
		users.On("CreateTx", mock.Anything, tx, mock.MatchedBy(func(a *model.Account) bool {
			admin, ok := a.Profile.(*model.AdminProfile)
			return ok &&
				a.User.Status == constant.UserStatusActive &&
				a.User.Verified() &&
				a.User.Email == "admin@farmportal.local" &&
				a.User.Phone == "9876543210" &&
				admin.HasPermission("anything") &&
				bcrypt.CompareHashAndPassword([]byte(a.User.PasswordHash), []byte("Str0ng#Pass")) == nil
		})).Return(nil)
		txRepo.On("CommitTx", tx).Return(nil)

		created, err := ensureAdmin(context.Background(), txRepo, users, validSeed(), now)
		require.NoError(t, err)
		assert.True(t, created)
	})
}
