package user

import (
	"context"

	"github.com/muhammadheryan/farm-portal/constant"
	"github.com/muhammadheryan/farm-portal/model"
	"github.com/muhammadheryan/farm-portal/thirdparty/rabbitmq"
	"github.com/muhammadheryan/farm-portal/utils/errors"
	"github.com/muhammadheryan/farm-portal/utils/logger"
	validatorx "github.com/muhammadheryan/farm-portal/utils/validator"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ForgotPassword issues a password reset code when the email belongs to an
// active account. The result is the same whether or not it does.
func (s *UserAppImpl) ForgotPassword(ctx context.Context, req *model.ForgotPasswordRequest) error {
	email := normalizeEmail(req.Email)
	if !validatorx.IsValidEmail(email) {
		return errors.SetCustomError(constant.ErrInvalidEmail).
			WithFields(errors.FieldError{Field: "email", Rule: "email"})
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[ForgotPassword] err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		logger.Info("[ForgotPassword] no active account for email")
		return nil
	}
	if !s.acquireCooldown(ctx, "password_reset:"+user.ID) {
		logger.Info("[ForgotPassword] cooldown active", zap.String("user_id", user.ID))
		return nil
	}

	code, err := s.otp.Issue(user, constant.OTPPurposePasswordReset, s.now())
	if err != nil {
		logger.Error("[ForgotPassword] err otp.Issue", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err = s.userRepo.UpdateOTP(ctx, user); err != nil {
		logger.Error("[ForgotPassword] err userRepo.UpdateOTP", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	s.notify(ctx, rabbitmq.NotificationPasswordReset, user, map[string]string{
		"otp":        code,
		"expires_in": s.otp.Window(constant.OTPPurposePasswordReset).String(),
	})
	return nil
}

// ResetPassword replaces the password of the account holding a valid reset
// code. An unknown email fails the same way as an account without a code.
func (s *UserAppImpl) ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) error {
	if err := passwordError(req.NewPassword); err != nil {
		return err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ResetPassword] err BeginTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	user, err := s.userRepo.GetForUpdateTx(ctx, tx, &model.UserFilter{Email: normalizeEmail(req.Email)})
	if err != nil {
		logger.Error("[ResetPassword] err userRepo.GetForUpdateTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		s.metrics.OTPValidation(string(constant.OTPPurposePasswordReset), "not_issued")
		return errors.SetCustomError(constant.ErrOTPNotIssued)
	}

	if err = s.otp.Validate(user, req.OTP, constant.OTPPurposePasswordReset, s.now()); err != nil {
		s.metrics.OTPValidation(string(constant.OTPPurposePasswordReset), outcome(err))
		return err
	}
	s.metrics.OTPValidation(string(constant.OTPPurposePasswordReset), "ok")

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[ResetPassword] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err = s.userRepo.UpdatePasswordTx(ctx, tx, user.ID, string(hashedPassword)); err != nil {
		logger.Error("[ResetPassword] err userRepo.UpdatePasswordTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err = s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ResetPassword] err CommitTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

func (s *UserAppImpl) ChangePassword(ctx context.Context, actor model.Actor, req *model.ChangePasswordRequest) error {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: actor.ID})
	if err != nil {
		logger.Error("[ChangePassword] err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return errors.SetCustomError(constant.ErrNotFound).WithDetail("user not found")
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return errors.SetCustomError(constant.ErrInvalidCredentials).WithDetail("current password is incorrect")
	}
	if req.NewPassword == req.CurrentPassword {
		return errors.SetCustomError(constant.ErrSamePassword)
	}
	if err = passwordError(req.NewPassword); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[ChangePassword] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ChangePassword] err BeginTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err = s.userRepo.UpdatePasswordTx(ctx, tx, user.ID, string(hashedPassword)); err != nil {
		logger.Error("[ChangePassword] err userRepo.UpdatePasswordTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err = s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ChangePassword] err CommitTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}
