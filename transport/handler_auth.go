package transport

import (
	"net/http"

	"github.com/muhammadheryan/farm-portal/model"
	utilsContext "github.com/muhammadheryan/farm-portal/utils/context"
)

const notificationFailedMessage = "request completed but the notification could not be sent"

// Register handler
// @Summary Register farmer or veterinarian
// @Description Register a new account in pending status and send a verification code
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} Response{data=model.RegisterResponse}
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /auth/register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	s.register(w, r, nil)
}

// RegisterByAdmin handler
// @Summary Register any account, including admins
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} Response{data=model.RegisterResponse}
// @Failure 403 {object} Response
// @Router /admin/users [post]
func (s *RestHandler) RegisterByAdmin(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}
	s.register(w, r, &actor)
}

func (s *RestHandler) register(w http.ResponseWriter, r *http.Request, actor *model.Actor) {
	var req model.RegisterRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Register(r.Context(), actor, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	if !res.NotificationSent {
		writeCreated(w, notificationFailedMessage, res)
		return
	}
	writeCreated(w, "registration successful, verification code sent", res)
}

// VerifyAccount handler
// @Summary Verify account
// @Description Confirm email, phone or both with the issued code
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.VerifyRequest true "Verify Request"
// @Success 200 {object} Response{data=model.VerifyResponse}
// @Failure 400 {object} Response
// @Router /auth/verify [post]
func (s *RestHandler) VerifyAccount(w http.ResponseWriter, r *http.Request) {
	var req model.VerifyRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.VerifyAccount(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	if res.Activated && !res.NotificationSent {
		writeSuccessMessage(w, notificationFailedMessage, res)
		return
	}
	writeSuccessMessage(w, "verification successful", res)
}

// ResendVerification handler
// @Summary Resend verification code
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.ResendVerificationRequest true "Resend Request"
// @Success 200 {object} Response{data=model.NotificationResponse}
// @Failure 429 {object} Response
// @Router /auth/resend-verification [post]
func (s *RestHandler) ResendVerification(w http.ResponseWriter, r *http.Request) {
	var req model.ResendVerificationRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.ResendVerification(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	if !res.NotificationSent {
		writeSuccessMessage(w, notificationFailedMessage, res)
		return
	}
	writeSuccessMessage(w, "verification code sent", res)
}

// Login handler
// @Summary Login user
// @Description Login with email or phone and receive access and refresh tokens
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} Response{data=model.LoginResponse}
// @Failure 401 {object} Response
// @Failure 403 {object} Response
// @Router /auth/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccessMessage(w, "login successful", res)
}

// RefreshToken handler
// @Summary Exchange a refresh token for a new access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RefreshTokenRequest true "Refresh Request"
// @Success 200 {object} Response{data=model.TokenResponse}
// @Failure 401 {object} Response
// @Router /auth/refresh [post]
func (s *RestHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req model.RefreshTokenRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.RefreshToken(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Revoke the current session
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /auth/logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}
	sessionID, _ := utilsContext.GetSessionID(r.Context())

	if err := s.UserApp.Logout(r.Context(), model.Principal{Actor: actor, SessionID: sessionID}); err != nil {
		writeError(w, err)
		return
	}

	writeSuccessMessage(w, "logout successful", nil)
}

// ForgotPassword handler
// @Summary Request a password reset code
// @Description Always answers the same way whether or not the email is registered
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.ForgotPasswordRequest true "Forgot Password Request"
// @Success 200 {object} Response
// @Router /auth/forgot-password [post]
func (s *RestHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req model.ForgotPasswordRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.UserApp.ForgotPassword(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccessMessage(w, "if the email is registered, a reset code has been sent", nil)
}

// ResetPassword handler
// @Summary Reset password with a reset code
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.ResetPasswordRequest true "Reset Password Request"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /auth/reset-password [post]
func (s *RestHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req model.ResetPasswordRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.UserApp.ResetPassword(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccessMessage(w, "password reset successful", nil)
}

// ChangePassword handler
// @Summary Change own password
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ChangePasswordRequest true "Change Password Request"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /auth/change-password [post]
func (s *RestHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ChangePasswordRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := s.UserApp.ChangePassword(r.Context(), actor, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccessMessage(w, "password changed", nil)
}
