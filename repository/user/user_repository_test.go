package user_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/farm-portal/constant"
	"github.com/muhammadheryan/farm-portal/model"
	"github.com/muhammadheryan/farm-portal/repository"
	userrepo "github.com/muhammadheryan/farm-portal/repository/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (userrepo.UserRepository, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	conn := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { _ = conn.Close() })
	return userrepo.NewUserRepository(conn), conn, mock
}

func TestSQL_Get(t *testing.T) {
	repo, _, mock := newRepo(t)
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE true AND email = ? AND is_active = 1")).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "email", "phone", "password_hash", "role", "status",
			"email_verified", "phone_verified", "is_active", "created_at",
		}).AddRow("u1", "Asha", "a@x.com", "9876543210", "hash", "farmer", "pending", true, false, true, created))

	got, err := repo.Get(context.Background(), &model.UserFilter{Email: "a@x.com"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, constant.RoleFarmer, got.Role)
	assert.Equal(t, constant.UserStatusPending, got.Status)
	assert.True(t, got.EmailVerified)
	assert.False(t, got.PhoneVerified)
	assert.Nil(t, got.OTPCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_Get_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE true AND id = ?")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := repo.Get(context.Background(), &model.UserFilter{ID: "missing", IncludeInactive: true})
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_Get_RequiresKey(t *testing.T) {
	tests := []struct {
		name   string
		filter *model.UserFilter
	}{
		{name: "nil filter", filter: nil},
		{name: "only include inactive", filter: &model.UserFilter{IncludeInactive: true}},
		{name: "zero filter", filter: &model.UserFilter{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo, conn, mock := newRepo(t)
			mock.ExpectBegin()

			got, err := repo.Get(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Nil(t, got)

			tx, err := conn.Beginx()
			require.NoError(t, err)
			got, err = repo.GetForUpdateTx(context.Background(), tx, tt.filter)
			require.NoError(t, err)
			assert.Nil(t, got)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQL_CreateTx(t *testing.T) {
	repo, conn, mock := newRepo(t)
	license := "VET-1"
	acc := &model.Account{
		User: model.UserEntity{
			ID: "v1", Name: "Dr Rao", Email: "rao@x.com", Phone: "9876500000",
			Role: constant.RoleVeterinarian, Status: constant.UserStatusPending, IsActive: true,
		},
		Profile: &model.VeterinarianProfile{LicenseNo: license},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO veterinarians")).
		WithArgs("v1", license, nil, nil, nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := conn.Beginx()
	require.NoError(t, err)
	require.NoError(t, repo.CreateTx(context.Background(), tx, acc))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_CreateTx_Duplicate(t *testing.T) {
	repo, conn, mock := newRepo(t)
	acc := &model.Account{
		User:    model.UserEntity{ID: "f1", Email: "a@x.com", Role: constant.RoleFarmer},
		Profile: &model.FarmerProfile{},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@x.com' for key 'users.email'"})
	mock.ExpectRollback()

	tx, err := conn.Beginx()
	require.NoError(t, err)
	err = repo.CreateTx(context.Background(), tx, acc)
	assert.ErrorIs(t, err, repository.ErrDuplicate)
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_UpdateOTP(t *testing.T) {
	repo, _, mock := newRepo(t)
	code := "123456"
	purpose := constant.OTPPurposeVerification
	issued := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET otp_code = ?, otp_purpose = ?, otp_issued_at = ?")).
		WithArgs(code, "verification", issued, "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateOTP(context.Background(), &model.UserEntity{
		ID: "u1", OTPCode: &code, OTPPurpose: &purpose, OTPIssuedAt: &issued,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_IdentifierExists(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM veterinarians WHERE license_no = ?)")).
		WithArgs("VET-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.IdentifierExists(context.Background(), constant.RoleVeterinarian, "VET-1")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.IdentifierExists(context.Background(), "guest", "x")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_GetProfile_Admin(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM admins WHERE user_id = ?")).
		WithArgs("a1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "employee_id", "department", "designation", "permissions"}).
			AddRow("a1", "ADM001", "IT", nil, []byte(`["all"]`)))

	profile, err := repo.GetProfile(context.Background(), "a1", constant.RoleAdmin)
	require.NoError(t, err)
	admin, ok := profile.(*model.AdminProfile)
	require.True(t, ok)
	assert.Equal(t, "ADM001", admin.EmployeeID)
	assert.True(t, admin.HasPermission("anything"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_List(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users WHERE true AND role = ? AND is_active = 1 AND (name LIKE ? OR email LIKE ? OR phone LIKE ?)")).
		WithArgs("veterinarian", "%rao%", "%rao%", "%rao%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(21))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC LIMIT ? OFFSET ?")).
		WithArgs("veterinarian", "%rao%", "%rao%", "%rao%", 10, 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "role"}).AddRow("v1", "Dr Rao", "veterinarian"))

	items, total, err := repo.List(context.Background(), &model.UserListFilter{
		Role:        constant.RoleVeterinarian,
		Search:      "rao",
		PageRequest: model.PageRequest{Page: 3, PerPage: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(21), total)
	require.Len(t, items, 1)
	assert.Equal(t, "v1", items[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
