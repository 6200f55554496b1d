package user

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/farm-portal/application"
	"github.com/muhammadheryan/farm-portal/application/otp"
	"github.com/muhammadheryan/farm-portal/cmd/config"
	"github.com/muhammadheryan/farm-portal/constant"
	"github.com/muhammadheryan/farm-portal/model"
	animalrepo "github.com/muhammadheryan/farm-portal/repository/animal"
	redisrepo "github.com/muhammadheryan/farm-portal/repository/redis"
	txrepo "github.com/muhammadheryan/farm-portal/repository/tx"
	userrepo "github.com/muhammadheryan/farm-portal/repository/user"
	"github.com/muhammadheryan/farm-portal/thirdparty/rabbitmq"
	"github.com/muhammadheryan/farm-portal/utils/errors"
	"github.com/muhammadheryan/farm-portal/utils/logger"
	"github.com/muhammadheryan/farm-portal/utils/metrics"
	validatorx "github.com/muhammadheryan/farm-portal/utils/validator"
	"go.uber.org/zap"
)

type UserApp interface {
	Register(ctx context.Context, actor *model.Actor, req *model.RegisterRequest) (*model.RegisterResponse, error)
	VerifyAccount(ctx context.Context, req *model.VerifyRequest) (*model.VerifyResponse, error)
	ResendVerification(ctx context.Context, req *model.ResendVerificationRequest) (*model.NotificationResponse, error)

	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	RefreshToken(ctx context.Context, req *model.RefreshTokenRequest) (*model.TokenResponse, error)
	Logout(ctx context.Context, principal model.Principal) error
	ValidateToken(ctx context.Context, tokenString string) (*model.Principal, error)

	ForgotPassword(ctx context.Context, req *model.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) error
	ChangePassword(ctx context.Context, actor model.Actor, req *model.ChangePasswordRequest) error

	GetProfile(ctx context.Context, actor model.Actor, userID string) (*model.UserProfile, error)
	UpdateProfile(ctx context.Context, actor model.Actor, userID string, req *model.UpdateProfileRequest) (*model.UserProfile, error)
	ListUsers(ctx context.Context, actor model.Actor, req *model.UserListRequest) (*model.UserListResponse, error)
	ListVeterinarians(ctx context.Context, actor model.Actor, page model.PageRequest) (*model.UserListResponse, error)
	UpdateStatus(ctx context.Context, actor model.Actor, userID string, req *model.UpdateStatusRequest) (*model.UserProfile, error)
	DeactivateUser(ctx context.Context, actor model.Actor, userID string) error
	ReactivateUser(ctx context.Context, actor model.Actor, userID string) (*model.UserProfile, error)
	Stats(ctx context.Context, actor model.Actor) (*model.UserStats, error)
}

type UserAppImpl struct {
	config     *config.Config
	txRepo     txrepo.TxRepository
	userRepo   userrepo.UserRepository
	animalRepo animalrepo.AnimalRepository
	redisRepo  redisrepo.Repository
	publisher  rabbitmq.NotificationPublisher
	metrics    *metrics.Metrics
	otp        otp.Policy
	now        func() time.Time
}

func NewUserApp(deps *application.Dependencies) UserApp {
	return &UserAppImpl{
		config:     deps.Config,
		txRepo:     deps.TxRepo,
		userRepo:   deps.UserRepo,
		animalRepo: deps.AnimalRepo,
		redisRepo:  deps.RedisRepo,
		publisher:  deps.Publisher,
		metrics:    deps.Metrics,
		otp:        otp.NewPolicy(deps.Config.OTP),
		now:        deps.Clock(),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// isEmail checks if identifier looks like an email
func isEmail(identifier string) bool {
	return strings.Contains(identifier, "@")
}

func passwordError(password string) error {
	issues := validatorx.PasswordIssues(password)
	if len(issues) == 0 {
		return nil
	}
	fields := make([]errors.FieldError, 0, len(issues))
	for _, issue := range issues {
		fields = append(fields, errors.FieldError{Field: "password", Rule: issue})
	}
	return errors.SetCustomError(constant.ErrWeakPassword).WithFields(fields...)
}

// notify publishes msg and reports whether the broker accepted it. Failures
// are logged and never fail the calling operation.
func (s *UserAppImpl) notify(ctx context.Context, kind rabbitmq.NotificationKind, u *model.UserEntity, data map[string]string) bool {
	if s.publisher == nil {
		logger.Warn("[notify] publisher not configured", zap.String("kind", string(kind)), zap.String("user_id", u.ID))
		return false
	}

	err := s.publisher.PublishNotification(ctx, rabbitmq.NotificationMessage{
		Kind:      kind,
		UserID:    u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Data:      data,
		CreatedAt: s.now(),
	})
	s.metrics.Notification(string(kind), err == nil)
	if err != nil {
		logger.Warn("[notify] err PublishNotification",
			zap.String("kind", string(kind)), zap.String("user_id", u.ID), zap.String("error", err.Error()))
		return false
	}
	return true
}

// exposedOTP returns code only when the environment allows echoing codes back.
func (s *UserAppImpl) exposedOTP(code string) string {
	if s.config.ExposeOTP() {
		return code
	}
	return ""
}

// cascadeStatusTx keeps animals consistent with a user status change: a
// veterinarian that is no longer active loses its assignments and a
// suspended or inactive farmer's herd is soft-deleted with it.
func (s *UserAppImpl) cascadeStatusTx(ctx context.Context, tx *sqlx.Tx, u *model.UserEntity, now time.Time) error {
	switch u.Role {
	case constant.RoleVeterinarian:
		if u.Status == constant.UserStatusActive && u.IsActive {
			return nil
		}
		n, err := s.animalRepo.UnassignVeterinarianTx(ctx, tx, u.ID)
		if err != nil {
			return err
		}
		logger.Info("[cascadeStatusTx] unassigned veterinarian", zap.String("user_id", u.ID), zap.Int64("animals", n))
	case constant.RoleFarmer:
		if u.Status != constant.UserStatusInactive && u.Status != constant.UserStatusSuspended {
			return nil
		}
		n, err := s.animalRepo.SoftDeleteByFarmerTx(ctx, tx, u.ID, now)
		if err != nil {
			return err
		}
		logger.Info("[cascadeStatusTx] deactivated farmer animals", zap.String("user_id", u.ID), zap.Int64("animals", n))
	}
	return nil
}
