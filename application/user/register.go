package user

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/google/uuid"
	"github.com/muhammadheryan/farm-portal/application/account"
	"github.com/muhammadheryan/farm-portal/application/otp"
	"github.com/muhammadheryan/farm-portal/application/policy"
	"github.com/muhammadheryan/farm-portal/constant"
	"github.com/muhammadheryan/farm-portal/model"
	"github.com/muhammadheryan/farm-portal/repository"
	"github.com/muhammadheryan/farm-portal/thirdparty/rabbitmq"
	"github.com/muhammadheryan/farm-portal/utils/errors"
	"github.com/muhammadheryan/farm-portal/utils/logger"
	validatorx "github.com/muhammadheryan/farm-portal/utils/validator"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a pending account with its role profile and issues a
// verification code. Only an admin actor may register another admin.
func (s *UserAppImpl) Register(ctx context.Context, actor *model.Actor, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	role, ok := constant.ParseRole(req.Role)
	if !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidEnum).
			WithFields(errors.FieldError{Field: "role", Rule: "oneof=farmer veterinarian admin"})
	}
	if role == constant.RoleAdmin {
		if actor == nil {
			return nil, errors.SetCustomError(constant.ErrForbidden).WithDetail("admin role required")
		}
		if err := s.authorize(*actor, policy.OpCreate, policy.UserCollection); err != nil {
			return nil, err
		}
	}

	email := normalizeEmail(req.Email)
	if !validatorx.IsValidEmail(email) {
		return nil, errors.SetCustomError(constant.ErrInvalidEmail).
			WithFields(errors.FieldError{Field: "email", Rule: "email"})
	}
	phone := validatorx.NormalizePhone(req.Phone)
	if !validatorx.IsValidPhone(phone) {
		return nil, errors.SetCustomError(constant.ErrInvalidPhone).
			WithFields(errors.FieldError{Field: "phone", Rule: "in_phone"})
	}
	if err := passwordError(req.Password); err != nil {
		return nil, err
	}

	profile, identifier, err := buildProfile(role, req)
	if err != nil {
		return nil, err
	}

	// Check if user exists by email or phone, including deactivated accounts
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email, IncludeInactive: true})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists).
			WithFields(errors.FieldError{Field: "email", Rule: "unique"})
	}

	existingUser, err = s.userRepo.Get(ctx, &model.UserFilter{Phone: phone, IncludeInactive: true})
	if err != nil {
		logger.Error("[Register] err userRepo.Get phone", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists).
			WithFields(errors.FieldError{Field: "phone", Rule: "unique"})
	}

	if identifier != "" {
		exists, err := s.userRepo.IdentifierExists(ctx, role, identifier)
		if err != nil {
			logger.Error("[Register] err userRepo.IdentifierExists", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if exists {
			return nil, identifierExistsError(role)
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	now := s.now()
	acc := &model.Account{
		User: model.UserEntity{
			ID:           uuid.NewString(),
			Name:         strings.TrimSpace(req.Name),
			Email:        email,
			Phone:        phone,
			PasswordHash: string(hashedPassword),
			Role:         role,
			Status:       constant.UserStatusPending,
			Address:      req.Address,
			IsActive:     true,
			CreatedAt:    now,
		},
		Profile: profile,
	}
	setProfileUserID(profile, acc.User.ID)

	code, err := s.otp.Issue(&acc.User, constant.OTPPurposeVerification, now)
	if err != nil {
		logger.Error("[Register] err otp.Issue", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Register] err BeginTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err = s.userRepo.CreateTx(ctx, tx, acc); err != nil {
		if stderrors.Is(err, repository.ErrDuplicate) {
			return nil, errors.SetCustomError(constant.ErrConflict).WithDetail("account already exists")
		}
		logger.Error("[Register] err userRepo.CreateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err = s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Register] err CommitTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	s.metrics.Registration(string(role))

	sent := s.notify(ctx, rabbitmq.NotificationOTPVerification, &acc.User, map[string]string{
		"otp":        code,
		"expires_in": s.otp.Window(constant.OTPPurposeVerification).String(),
	})

	return &model.RegisterResponse{
		User:             model.NewAccountProfile(acc),
		NotificationSent: sent,
		OTP:              s.exposedOTP(code),
	}, nil
}

// buildProfile picks the role specific fields out of req and returns the
// role's unique identifier, if any.
func buildProfile(role constant.Role, req *model.RegisterRequest) (model.RoleProfile, string, error) {
	switch role {
	case constant.RoleFarmer:
		p := &model.FarmerProfile{
			FarmName: req.FarmName,
			FarmSize: req.FarmSize,
			FarmType: req.FarmType,
			District: req.District,
			State:    req.State,
			Pincode:  req.Pincode,
		}
		if req.AadharNo == nil || strings.TrimSpace(*req.AadharNo) == "" {
			return p, "", nil
		}
		aadhar := strings.ReplaceAll(strings.TrimSpace(*req.AadharNo), " ", "")
		if !validatorx.IsValidAadhar(aadhar) {
			return nil, "", errors.SetCustomError(constant.ErrInvalidRequest).
				WithFields(errors.FieldError{Field: "aadhar_no", Rule: "aadhar"})
		}
		p.AadharNo = &aadhar
		return p, aadhar, nil

	case constant.RoleVeterinarian:
		license := strings.TrimSpace(req.LicenseNo)
		if license == "" {
			return nil, "", errors.SetCustomError(constant.ErrInvalidRequest).
				WithFields(errors.FieldError{Field: "license_no", Rule: "required"})
		}
		return &model.VeterinarianProfile{
			LicenseNo:       license,
			Specialization:  req.Specialization,
			Qualification:   req.Qualification,
			ExperienceYears: req.ExperienceYears,
			ClinicName:      req.ClinicName,
			ClinicAddress:   req.ClinicAddress,
		}, license, nil

	case constant.RoleAdmin:
		employeeID := strings.TrimSpace(req.EmployeeID)
		if employeeID == "" {
			return nil, "", errors.SetCustomError(constant.ErrInvalidRequest).
				WithFields(errors.FieldError{Field: "employee_id", Rule: "required"})
		}
		permissions := model.Permissions(req.Permissions)
		if len(permissions) == 0 {
			permissions = append(model.Permissions{}, constant.DefaultAdminPermissions...)
		}
		return &model.AdminProfile{
			EmployeeID:  employeeID,
			Department:  req.Department,
			Designation: req.Designation,
			Permissions: permissions,
		}, employeeID, nil
	}
	return nil, "", errors.SetCustomError(constant.ErrInvalidEnum)
}

func setProfileUserID(profile model.RoleProfile, userID string) {
	switch p := profile.(type) {
	case *model.FarmerProfile:
		p.UserID = userID
	case *model.VeterinarianProfile:
		p.UserID = userID
	case *model.AdminProfile:
		p.UserID = userID
	}
}

func identifierExistsError(role constant.Role) error {
	switch role {
	case constant.RoleFarmer:
		return errors.SetCustomError(constant.ErrAadharExists).
			WithFields(errors.FieldError{Field: "aadhar_no", Rule: "unique"})
	case constant.RoleVeterinarian:
		return errors.SetCustomError(constant.ErrLicenseExists).
			WithFields(errors.FieldError{Field: "license_no", Rule: "unique"})
	default:
		return errors.SetCustomError(constant.ErrEmployeeIDExists).
			WithFields(errors.FieldError{Field: "employee_id", Rule: "unique"})
	}
}

// VerifyAccount checks a verification code and marks the requested channel(s)
// verified. The account activates once both channels are verified.
func (s *UserAppImpl) VerifyAccount(ctx context.Context, req *model.VerifyRequest) (*model.VerifyResponse, error) {
	channel := constant.ChannelBoth
	if strings.TrimSpace(req.Channel) != "" {
		parsed, ok := constant.ParseVerificationChannel(req.Channel)
		if !ok {
			return nil, errors.SetCustomError(constant.ErrInvalidEnum).
				WithFields(errors.FieldError{Field: "verification_type", Rule: "oneof=email phone both"})
		}
		channel = parsed
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[VerifyAccount] err BeginTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	user, err := s.userRepo.GetForUpdateTx(ctx, tx, &model.UserFilter{Email: normalizeEmail(req.Email)})
	if err != nil {
		logger.Error("[VerifyAccount] err userRepo.GetForUpdateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound).WithDetail("user not found")
	}
	if user.Verified() {
		return nil, errors.SetCustomError(constant.ErrAlreadyVerified)
	}

	if err = s.otp.Validate(user, req.OTP, constant.OTPPurposeVerification, s.now()); err != nil {
		s.metrics.OTPValidation(string(constant.OTPPurposeVerification), outcome(err))
		return nil, err
	}
	s.metrics.OTPValidation(string(constant.OTPPurposeVerification), "ok")

	activated, err := account.MarkVerified(user, channel)
	if err != nil {
		return nil, err
	}
	otp.Clear(user)

	if err = s.userRepo.UpdateVerificationTx(ctx, tx, user); err != nil {
		logger.Error("[VerifyAccount] err userRepo.UpdateVerificationTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err = s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[VerifyAccount] err CommitTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	sent := false
	if activated {
		sent = s.notify(ctx, rabbitmq.NotificationWelcome, user, nil)
	}

	return &model.VerifyResponse{
		User:             model.NewUserProfile(user, nil),
		Activated:        activated,
		NotificationSent: sent,
	}, nil
}

// ResendVerification issues a fresh verification code, at most once per
// cooldown period per user.
func (s *UserAppImpl) ResendVerification(ctx context.Context, req *model.ResendVerificationRequest) (*model.NotificationResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: normalizeEmail(req.Email)})
	if err != nil {
		logger.Error("[ResendVerification] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound).WithDetail("user not found")
	}
	if user.Verified() {
		return nil, errors.SetCustomError(constant.ErrAlreadyVerified)
	}

	if !s.acquireCooldown(ctx, "verification:"+user.ID) {
		return nil, errors.SetCustomError(constant.ErrRateLimited).
			WithDetail("a code was sent recently, try again later")
	}

	code, err := s.otp.Issue(user, constant.OTPPurposeVerification, s.now())
	if err != nil {
		logger.Error("[ResendVerification] err otp.Issue", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err = s.userRepo.UpdateOTP(ctx, user); err != nil {
		logger.Error("[ResendVerification] err userRepo.UpdateOTP", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	sent := s.notify(ctx, rabbitmq.NotificationOTPVerification, user, map[string]string{
		"otp":        code,
		"expires_in": s.otp.Window(constant.OTPPurposeVerification).String(),
	})
	return &model.NotificationResponse{NotificationSent: sent, OTP: s.exposedOTP(code)}, nil
}

// acquireCooldown fails open when redis is unavailable.
func (s *UserAppImpl) acquireCooldown(ctx context.Context, key string) bool {
	if s.config.OTP.ResendCooldown <= 0 {
		return true
	}
	ok, err := s.redisRepo.AcquireCooldown(ctx, key, s.config.OTP.ResendCooldown)
	if err != nil {
		logger.Warn("[acquireCooldown] err redisRepo.AcquireCooldown", zap.String("key", key), zap.String("error", err.Error()))
		return true
	}
	return ok
}

func outcome(err error) string {
	switch {
	case errors.IsType(err, constant.ErrOTPNotIssued):
		return "not_issued"
	case errors.IsType(err, constant.ErrOTPMismatch):
		return "mismatch"
	case errors.IsType(err, constant.ErrOTPExpired):
		return "expired"
	}
	return "error"
}
