package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/muhammadheryan/farm-portal/constant"
)

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID   string        `json:"id"`
	Role constant.Role `json:"role"`
}

// UserEntity represents the users table entity shared by every role.
type UserEntity struct {
	ID            string               `db:"id" json:"id"`
	Name          string               `db:"name" json:"name"`
	Email         string               `db:"email" json:"email"`
	Phone         string               `db:"phone" json:"phone"`
	PasswordHash  string               `db:"password_hash" json:"-"`
	Role          constant.Role        `db:"role" json:"role"`
	Status        constant.UserStatus  `db:"status" json:"status"`
	EmailVerified bool                 `db:"email_verified" json:"email_verified"`
	PhoneVerified bool                 `db:"phone_verified" json:"phone_verified"`
	OTPCode       *string              `db:"otp_code" json:"-"`
	OTPPurpose    *constant.OTPPurpose `db:"otp_purpose" json:"-"`
	OTPIssuedAt   *time.Time           `db:"otp_issued_at" json:"-"`
	Address       *string              `db:"address" json:"address,omitempty"`
	IsActive      bool                 `db:"is_active" json:"is_active"`
	DeletedAt     *time.Time           `db:"deleted_at" json:"deleted_at,omitempty"`
	CreatedAt     time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time           `db:"updated_at" json:"updated_at,omitempty"`
}

func (u *UserEntity) Verified() bool {
	return u.EmailVerified && u.PhoneVerified
}

func (u *UserEntity) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role}
}

// RoleProfile is the role-specific half of an account. The set of
// implementations is closed: FarmerProfile, VeterinarianProfile, AdminProfile.
type RoleProfile interface {
	ProfileRole() constant.Role
	isRoleProfile()
}

type FarmerProfile struct {
	UserID   string  `db:"user_id" json:"-"`
	AadharNo *string `db:"aadhar_no" json:"aadhar_no,omitempty"`
	FarmName *string `db:"farm_name" json:"farm_name,omitempty"`
	FarmSize *string `db:"farm_size" json:"farm_size,omitempty"`
	FarmType *string `db:"farm_type" json:"farm_type,omitempty"`
	District *string `db:"district" json:"district,omitempty"`
	State    *string `db:"state" json:"state,omitempty"`
	Pincode  *string `db:"pincode" json:"pincode,omitempty"`
}

type VeterinarianProfile struct {
	UserID          string  `db:"user_id" json:"-"`
	LicenseNo       string  `db:"license_no" json:"license_no"`
	Specialization  *string `db:"specialization" json:"specialization,omitempty"`
	Qualification   *string `db:"qualification" json:"qualification,omitempty"`
	ExperienceYears *int    `db:"experience_years" json:"experience_years,omitempty"`
	ClinicName      *string `db:"clinic_name" json:"clinic_name,omitempty"`
	ClinicAddress   *string `db:"clinic_address" json:"clinic_address,omitempty"`
}

type AdminProfile struct {
	UserID      string      `db:"user_id" json:"-"`
	EmployeeID  string      `db:"employee_id" json:"employee_id"`
	Department  *string     `db:"department" json:"department,omitempty"`
	Designation *string     `db:"designation" json:"designation,omitempty"`
	Permissions Permissions `db:"permissions" json:"permissions"`
}

func (*FarmerProfile) ProfileRole() constant.Role       { return constant.RoleFarmer }
func (*VeterinarianProfile) ProfileRole() constant.Role { return constant.RoleVeterinarian }
func (*AdminProfile) ProfileRole() constant.Role        { return constant.RoleAdmin }

func (*FarmerProfile) isRoleProfile()       {}
func (*VeterinarianProfile) isRoleProfile() {}
func (*AdminProfile) isRoleProfile()        {}

// HasPermission reports whether the admin holds capability or the "all" grant.
func (p *AdminProfile) HasPermission(capability string) bool {
	for _, perm := range p.Permissions {
		if perm == constant.PermissionAll || perm == capability {
			return true
		}
	}
	return false
}

// Permissions is stored as a JSON array column.
type Permissions []string

func (p Permissions) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(p))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (p *Permissions) Scan(src any) error {
	var raw []byte
	switch s := src.(type) {
	case nil:
		*p = Permissions{}
		return nil
	case []byte:
		raw = s
	case string:
		raw = []byte(s)
	default:
		return fmt.Errorf("permissions: unsupported scan type %T", src)
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	*p = out
	return nil
}

// Account is a user together with its role-specific profile.
type Account struct {
	User    UserEntity
	Profile RoleProfile
}

// UserFilter for querying a single user
type UserFilter struct {
	ID              string
	Email           string
	Phone           string
	IncludeInactive bool
}

// UserListFilter for paginated user listing
type UserListFilter struct {
	Role            constant.Role
	Status          constant.UserStatus
	Search          string
	IncludeInactive bool
	PageRequest
}

type UserStats struct {
	Total         int64            `json:"total"`
	Active        int64            `json:"active"`
	ByRole        map[string]int64 `json:"by_role"`
	ByStatus      map[string]int64 `json:"by_status"`
	EmailVerified int64            `json:"email_verified"`
	PhoneVerified int64            `json:"phone_verified"`
}

// UserProfile is the outward view of an account.
type UserProfile struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Email         string               `json:"email"`
	Phone         string               `json:"phone"`
	Role          constant.Role        `json:"role"`
	Status        constant.UserStatus  `json:"status"`
	EmailVerified bool                 `json:"email_verified"`
	PhoneVerified bool                 `json:"phone_verified"`
	Address       *string              `json:"address,omitempty"`
	IsActive      bool                 `json:"is_active"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     *time.Time           `json:"updated_at,omitempty"`
	Farmer        *FarmerProfile       `json:"farmer,omitempty"`
	Veterinarian  *VeterinarianProfile `json:"veterinarian,omitempty"`
	Admin         *AdminProfile        `json:"admin,omitempty"`
}

func NewUserProfile(u *UserEntity, profile RoleProfile) *UserProfile {
	out := &UserProfile{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Phone:         u.Phone,
		Role:          u.Role,
		Status:        u.Status,
		EmailVerified: u.EmailVerified,
		PhoneVerified: u.PhoneVerified,
		Address:       u.Address,
		IsActive:      u.IsActive,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
	switch p := profile.(type) {
	case *FarmerProfile:
		out.Farmer = p
	case *VeterinarianProfile:
		out.Veterinarian = p
	case *AdminProfile:
		out.Admin = p
	case nil:
	}
	return out
}

func NewAccountProfile(a *Account) *UserProfile {
	return NewUserProfile(&a.User, a.Profile)
}

type UserListResponse struct {
	Items      []UserProfile `json:"items"`
	Pagination Pagination    `json:"pagination"`
}

// UserListRequest is the admin user listing query before enum parsing.
type UserListRequest struct {
	Role            string
	Status          string
	Search          string
	IncludeInactive bool
	PageRequest
}
