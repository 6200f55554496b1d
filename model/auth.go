package model

// RegisterRequest carries the common identity fields plus the profile fields
// of whichever role is being registered. Fields of other roles are ignored.
type RegisterRequest struct {
	Role     string  `json:"role"`
	Name     string  `json:"name" validate:"required,notblank"`
	Email    string  `json:"email" validate:"required,notblank"`
	Phone    string  `json:"phone" validate:"required,notblank"`
	Password string  `json:"password" validate:"required,notblank"`
	Address  *string `json:"address,omitempty"`

	AadharNo *string `json:"aadhar_no,omitempty"`
	FarmName *string `json:"farm_name,omitempty"`
	FarmSize *string `json:"farm_size,omitempty"`
	FarmType *string `json:"farm_type,omitempty"`
	District *string `json:"district,omitempty"`
	State    *string `json:"state,omitempty"`
	Pincode  *string `json:"pincode,omitempty" validate:"omitempty,pincode"`

	LicenseNo       string  `json:"license_no,omitempty"`
	Specialization  *string `json:"specialization,omitempty"`
	Qualification   *string `json:"qualification,omitempty"`
	ExperienceYears *int    `json:"experience_years,omitempty" validate:"omitempty,min=0"`
	ClinicName      *string `json:"clinic_name,omitempty"`
	ClinicAddress   *string `json:"clinic_address,omitempty"`

	EmployeeID  string   `json:"employee_id,omitempty"`
	Department  *string  `json:"department,omitempty"`
	Designation *string  `json:"designation,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}

type RegisterResponse struct {
	User             *UserProfile `json:"user"`
	NotificationSent bool         `json:"notification_sent"`
	OTP              string       `json:"otp,omitempty"`
}

type VerifyRequest struct {
	Email   string `json:"email" validate:"required,notblank"`
	OTP     string `json:"otp" validate:"required,notblank"`
	Channel string `json:"verification_type"`
}

type VerifyResponse struct {
	User             *UserProfile `json:"user"`
	Activated        bool         `json:"activated"`
	NotificationSent bool         `json:"notification_sent"`
}

type ResendVerificationRequest struct {
	Email string `json:"email" validate:"required,notblank"`
}

type NotificationResponse struct {
	NotificationSent bool   `json:"notification_sent"`
	OTP              string `json:"otp,omitempty"`
}

// LoginRequest for user login (accepts email or phone)
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required,notblank"`
	Password   string `json:"password" validate:"required,notblank"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int64        `json:"expires_in"`
	User         *UserProfile `json:"user"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required,notblank"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Principal is what a valid bearer credential resolves to.
type Principal struct {
	Actor
	SessionID string `json:"session_id"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,notblank"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,notblank"`
	OTP         string `json:"otp" validate:"required,notblank"`
	NewPassword string `json:"new_password" validate:"required,notblank"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required,notblank"`
	NewPassword     string `json:"new_password" validate:"required,notblank"`
}

// UpdateProfileRequest lists every editable profile field. Only the fields
// belonging to the account's role are applied.
type UpdateProfileRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,notblank"`
	Address *string `json:"address,omitempty"`

	FarmName *string `json:"farm_name,omitempty"`
	FarmSize *string `json:"farm_size,omitempty"`
	FarmType *string `json:"farm_type,omitempty"`
	District *string `json:"district,omitempty"`
	State    *string `json:"state,omitempty"`
	Pincode  *string `json:"pincode,omitempty" validate:"omitempty,pincode"`

	Specialization  *string `json:"specialization,omitempty"`
	Qualification   *string `json:"qualification,omitempty"`
	ExperienceYears *int    `json:"experience_years,omitempty" validate:"omitempty,min=0"`
	ClinicName      *string `json:"clinic_name,omitempty"`
	ClinicAddress   *string `json:"clinic_address,omitempty"`

	Department  *string `json:"department,omitempty"`
	Designation *string `json:"designation,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,notblank"`
}
