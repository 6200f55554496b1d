package constant

type Role string

const (
	RoleFarmer       Role = "farmer"
	RoleVeterinarian Role = "veterinarian"
	RoleAdmin        Role = "admin"
)

var Roles = []Role{RoleFarmer, RoleVeterinarian, RoleAdmin}

func ParseRole(s string) (Role, bool) { return parseEnum(s, Roles) }

type UserStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

var UserStatuses = []UserStatus{UserStatusPending, UserStatusActive, UserStatusInactive, UserStatusSuspended}

func ParseUserStatus(s string) (UserStatus, bool) { return parseEnum(s, UserStatuses) }

// OTPPurpose binds an issued code to the flow that may consume it.
type OTPPurpose string

const (
	OTPPurposeVerification  OTPPurpose = "verification"
	OTPPurposePasswordReset OTPPurpose = "password_reset"
)

type VerificationChannel string

const (
	ChannelEmail VerificationChannel = "email"
	ChannelPhone VerificationChannel = "phone"
	ChannelBoth  VerificationChannel = "both"
)

var VerificationChannels = []VerificationChannel{ChannelEmail, ChannelPhone, ChannelBoth}

func ParseVerificationChannel(s string) (VerificationChannel, bool) {
	return parseEnum(s, VerificationChannels)
}

// PermissionAll grants every admin capability.
const PermissionAll = "all"

var DefaultAdminPermissions = []string{"user_management", "system_admin"}
