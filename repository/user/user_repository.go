package user

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/farm-portal/constant"
	"github.com/muhammadheryan/farm-portal/model"
	"github.com/muhammadheryan/farm-portal/repository"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, account *model.Account) error
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, filter *model.UserFilter) (*model.UserEntity, error)
	GetProfile(ctx context.Context, userID string, role constant.Role) (model.RoleProfile, error)
	IdentifierExists(ctx context.Context, role constant.Role, value string) (bool, error)
	UpdateOTP(ctx context.Context, user *model.UserEntity) error
	UpdateVerificationTx(ctx context.Context, tx *sqlx.Tx, user *model.UserEntity) error
	UpdatePasswordTx(ctx context.Context, tx *sqlx.Tx, userID, passwordHash string) error
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, user *model.UserEntity) error
	UpdateProfileTx(ctx context.Context, tx *sqlx.Tx, account *model.Account) error
	List(ctx context.Context, filter *model.UserListFilter) ([]model.UserEntity, int64, error)
	Stats(ctx context.Context) (*model.UserStats, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	userColumns = `id, name, email, phone, password_hash, role, status, email_verified, phone_verified,
		otp_code, otp_purpose, otp_issued_at, address, is_active, deleted_at, created_at, updated_at`

	insertUserQuery = `INSERT INTO users (id, name, email, phone, password_hash, role, status,
		email_verified, phone_verified, otp_code, otp_purpose, otp_issued_at, address, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	insertFarmerQuery = `INSERT INTO farmers (user_id, aadhar_no, farm_name, farm_size, farm_type, district, state, pincode)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	insertVeterinarianQuery = `INSERT INTO veterinarians (user_id, license_no, specialization, qualification,
		experience_years, clinic_name, clinic_address) VALUES (?, ?, ?, ?, ?, ?, ?)`
	insertAdminQuery = `INSERT INTO admins (user_id, employee_id, department, designation, permissions)
		VALUES (?, ?, ?, ?, ?)`

	getUserBase = `SELECT ` + userColumns + ` FROM users WHERE true`

	getFarmerQuery = `SELECT user_id, aadhar_no, farm_name, farm_size, farm_type, district, state, pincode
		FROM farmers WHERE user_id = ?`
	getVeterinarianQuery = `SELECT user_id, license_no, specialization, qualification, experience_years,
		clinic_name, clinic_address FROM veterinarians WHERE user_id = ?`
	getAdminQuery = `SELECT user_id, employee_id, department, designation, permissions FROM admins WHERE user_id = ?`

	farmerAadharExistsQuery      = `SELECT EXISTS(SELECT 1 FROM farmers WHERE aadhar_no = ?)`
	veterinarianLicenseExistsQry = `SELECT EXISTS(SELECT 1 FROM veterinarians WHERE license_no = ?)`
	adminEmployeeExistsQuery     = `SELECT EXISTS(SELECT 1 FROM admins WHERE employee_id = ?)`

	updateOTPQuery = `UPDATE users SET otp_code = ?, otp_purpose = ?, otp_issued_at = ?, updated_at = NOW()
		WHERE id = ?`
	updateVerificationQuery = `UPDATE users SET email_verified = ?, phone_verified = ?, status = ?,
		otp_code = NULL, otp_purpose = NULL, otp_issued_at = NULL, updated_at = NOW() WHERE id = ?`
	updatePasswordQuery = `UPDATE users SET password_hash = ?, otp_code = NULL, otp_purpose = NULL,
		otp_issued_at = NULL, updated_at = NOW() WHERE id = ?`
	updateStatusQuery = `UPDATE users SET status = ?, is_active = ?, deleted_at = ?, updated_at = NOW() WHERE id = ?`
	updateUserQuery   = `UPDATE users SET name = ?, address = ?, updated_at = NOW() WHERE id = ?`

	updateFarmerQuery = `UPDATE farmers SET farm_name = ?, farm_size = ?, farm_type = ?, district = ?, state = ?,
		pincode = ? WHERE user_id = ?`
	updateVeterinarianQuery = `UPDATE veterinarians SET specialization = ?, qualification = ?, experience_years = ?,
		clinic_name = ?, clinic_address = ? WHERE user_id = ?`
	updateAdminQuery = `UPDATE admins SET department = ?, designation = ?, permissions = ? WHERE user_id = ?`

	statsByRoleQuery   = `SELECT role AS k, COUNT(*) AS c FROM users GROUP BY role`
	statsByStatusQuery = `SELECT status AS k, COUNT(*) AS c FROM users GROUP BY status`
	statsTotalsQuery   = `SELECT COUNT(*) AS total,
		COALESCE(SUM(is_active = 1 AND status = 'active'), 0) AS active,
		COALESCE(SUM(email_verified), 0) AS email_verified,
		COALESCE(SUM(phone_verified), 0) AS phone_verified FROM users`
)

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, account *model.Account) error {
	u := &account.User
	_, err := tx.ExecContext(ctx, insertUserQuery,
		u.ID, u.Name, u.Email, u.Phone, u.PasswordHash, u.Role, u.Status,
		u.EmailVerified, u.PhoneVerified, u.OTPCode, u.OTPPurpose, u.OTPIssuedAt, u.Address, u.IsActive, u.CreatedAt)
	if err != nil {
		return repository.TranslateError(err)
	}

	switch p := account.Profile.(type) {
	case *model.FarmerProfile:
		_, err = tx.ExecContext(ctx, insertFarmerQuery,
			u.ID, p.AadharNo, p.FarmName, p.FarmSize, p.FarmType, p.District, p.State, p.Pincode)
	case *model.VeterinarianProfile:
		_, err = tx.ExecContext(ctx, insertVeterinarianQuery,
			u.ID, p.LicenseNo, p.Specialization, p.Qualification, p.ExperienceYears, p.ClinicName, p.ClinicAddress)
	case *model.AdminProfile:
		_, err = tx.ExecContext(ctx, insertAdminQuery,
			u.ID, p.EmployeeID, p.Department, p.Designation, p.Permissions)
	default:
		return fmt.Errorf("unsupported profile type %T", account.Profile)
	}
	return repository.TranslateError(err)
}

// hasUserKey reports whether the filter pins a single account; without one
// the lookup would match an arbitrary row.
func hasUserKey(filter *model.UserFilter) bool {
	return filter != nil && (filter.ID != "" || filter.Email != "" || filter.Phone != "")
}

func buildUserQuery(filter *model.UserFilter) (string, []any) {
	query := getUserBase
	args := make([]any, 0, 3)

	if filter.ID != "" {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.Phone != "" {
		query += " AND phone = ?"
		args = append(args, filter.Phone)
	}
	if !filter.IncludeInactive {
		query += " AND is_active = 1"
	}
	return query, args
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	if !hasUserKey(filter) {
		return nil, nil
	}
	query, args := buildUserQuery(filter)

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, filter *model.UserFilter) (*model.UserEntity, error) {
	if !hasUserKey(filter) {
		return nil, nil
	}
	query, args := buildUserQuery(filter)
	query += " FOR UPDATE"

	var entity model.UserEntity
	if err := tx.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetProfile(ctx context.Context, userID string, role constant.Role) (model.RoleProfile, error) {
	var (
		profile model.RoleProfile
		err     error
	)
	switch role {
	case constant.RoleFarmer:
		p := &model.FarmerProfile{}
		err = s.conn.GetContext(ctx, p, getFarmerQuery, userID)
		profile = p
	case constant.RoleVeterinarian:
		p := &model.VeterinarianProfile{}
		err = s.conn.GetContext(ctx, p, getVeterinarianQuery, userID)
		profile = p
	case constant.RoleAdmin:
		p := &model.AdminProfile{}
		err = s.conn.GetContext(ctx, p, getAdminQuery, userID)
		profile = p
	default:
		return nil, fmt.Errorf("unsupported role %q", role)
	}
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

// IdentifierExists checks the role-specific unique identifier: Aadhar number
// for farmers, license number for veterinarians, employee id for admins.
func (s *SQL) IdentifierExists(ctx context.Context, role constant.Role, value string) (bool, error) {
	var query string
	switch role {
	case constant.RoleFarmer:
		query = farmerAadharExistsQuery
	case constant.RoleVeterinarian:
		query = veterinarianLicenseExistsQry
	case constant.RoleAdmin:
		query = adminEmployeeExistsQuery
	default:
		return false, fmt.Errorf("unsupported role %q", role)
	}

	var exists bool
	if err := s.conn.GetContext(ctx, &exists, query, value); err != nil {
		return false, err
	}
	return exists, nil
}

// UpdateOTP writes code, purpose and issue time in one statement so that
// concurrent issuance resolves to the last writer.
func (s *SQL) UpdateOTP(ctx context.Context, user *model.UserEntity) error {
	_, err := s.conn.ExecContext(ctx, updateOTPQuery, user.OTPCode, user.OTPPurpose, user.OTPIssuedAt, user.ID)
	return err
}

func (s *SQL) UpdateVerificationTx(ctx context.Context, tx *sqlx.Tx, user *model.UserEntity) error {
	_, err := tx.ExecContext(ctx, updateVerificationQuery, user.EmailVerified, user.PhoneVerified, user.Status, user.ID)
	return err
}

func (s *SQL) UpdatePasswordTx(ctx context.Context, tx *sqlx.Tx, userID, passwordHash string) error {
	_, err := tx.ExecContext(ctx, updatePasswordQuery, passwordHash, userID)
	return err
}

func (s *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, user *model.UserEntity) error {
	_, err := tx.ExecContext(ctx, updateStatusQuery, user.Status, user.IsActive, user.DeletedAt, user.ID)
	return err
}

func (s *SQL) UpdateProfileTx(ctx context.Context, tx *sqlx.Tx, account *model.Account) error {
	u := &account.User
	if _, err := tx.ExecContext(ctx, updateUserQuery, u.Name, u.Address, u.ID); err != nil {
		return err
	}

	var err error
	switch p := account.Profile.(type) {
	case *model.FarmerProfile:
		_, err = tx.ExecContext(ctx, updateFarmerQuery, p.FarmName, p.FarmSize, p.FarmType, p.District, p.State, p.Pincode, u.ID)
	case *model.VeterinarianProfile:
		_, err = tx.ExecContext(ctx, updateVeterinarianQuery,
			p.Specialization, p.Qualification, p.ExperienceYears, p.ClinicName, p.ClinicAddress, u.ID)
	case *model.AdminProfile:
		_, err = tx.ExecContext(ctx, updateAdminQuery, p.Department, p.Designation, p.Permissions, u.ID)
	case nil:
	default:
		return fmt.Errorf("unsupported profile type %T", account.Profile)
	}
	return err
}

func buildUserListWhere(filter *model.UserListFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if filter.Role != "" {
		conds = append(conds, "role = ?")
		args = append(args, filter.Role)
	}
	if filter.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, filter.Status)
	}
	if !filter.IncludeInactive {
		conds = append(conds, "is_active = 1")
	}
	if term := strings.TrimSpace(filter.Search); term != "" {
		like := "%" + term + "%"
		conds = append(conds, "(name LIKE ? OR email LIKE ? OR phone LIKE ?)")
		args = append(args, like, like, like)
	}

	where := " WHERE true"
	for _, c := range conds {
		where += " AND " + c
	}
	return where, args
}

func (s *SQL) List(ctx context.Context, filter *model.UserListFilter) ([]model.UserEntity, int64, error) {
	where, args := buildUserListWhere(filter)

	var total int64
	if err := s.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM users"+where, args...); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + userColumns + " FROM users" + where + " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	listArgs := append(append([]any{}, args...), filter.PerPage, filter.Offset())

	items := make([]model.UserEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, query, listArgs...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) Stats(ctx context.Context) (*model.UserStats, error) {
	var totals struct {
		Total         int64 `db:"total"`
		Active        int64 `db:"active"`
		EmailVerified int64 `db:"email_verified"`
		PhoneVerified int64 `db:"phone_verified"`
	}
	if err := s.conn.GetContext(ctx, &totals, statsTotalsQuery); err != nil {
		return nil, err
	}

	byRole, err := s.groupCounts(ctx, statsByRoleQuery)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.groupCounts(ctx, statsByStatusQuery)
	if err != nil {
		return nil, err
	}

	return &model.UserStats{
		Total:         totals.Total,
		Active:        totals.Active,
		ByRole:        byRole,
		ByStatus:      byStatus,
		EmailVerified: totals.EmailVerified,
		PhoneVerified: totals.PhoneVerified,
	}, nil
}

func (s *SQL) groupCounts(ctx context.Context, query string) (map[string]int64, error) {
	var rows []model.GroupCount
	if err := s.conn.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		if r.Key != nil {
			out[*r.Key] = r.Count
		}
	}
	return out, nil
}
