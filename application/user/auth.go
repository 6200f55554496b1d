package user

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/farm-portal/application/account"
	"github.com/muhammadheryan/farm-portal/constant"
	"github.com/muhammadheryan/farm-portal/model"
	redisrepo "github.com/muhammadheryan/farm-portal/repository/redis"
	"github.com/muhammadheryan/farm-portal/utils/errors"
	"github.com/muhammadheryan/farm-portal/utils/logger"
	validatorx "github.com/muhammadheryan/farm-portal/utils/validator"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenKindAccess  = "access"
	tokenKindRefresh = "refresh"
	tokenType        = "Bearer"
)

// Claims are the JWT claims issued by Login. The token ID doubles as the
// redis session key.
type Claims struct {
	Role constant.Role `json:"role"`
	Kind string        `json:"kind"`
	jwt.RegisteredClaims
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	// Find user by email or phone
	filter := &model.UserFilter{IncludeInactive: true}
	if isEmail(req.Identifier) {
		filter.Email = normalizeEmail(req.Identifier)
		if !validatorx.IsValidEmail(filter.Email) {
			s.metrics.Login("invalid_credentials")
			return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
		}
	} else {
		filter.Phone = validatorx.NormalizePhone(req.Identifier)
		if !validatorx.IsValidPhone(filter.Phone) {
			s.metrics.Login("invalid_credentials")
			return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
		}
	}

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		s.metrics.Login("invalid_credentials")
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	// Verify password before revealing anything about the account state
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.metrics.Login("invalid_credentials")
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	if err = account.CanLogin(user); err != nil {
		s.metrics.Login(string(user.Status))
		return nil, err
	}

	access, accessID, err := s.generateJWT(user, tokenKindAccess, s.config.Auth.JWTExpiration)
	if err != nil {
		logger.Error("[Login] err generateJWT access", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	refresh, refreshID, err := s.generateJWT(user, tokenKindRefresh, s.config.Auth.RefreshExpiration)
	if err != nil {
		logger.Error("[Login] err generateJWT refresh", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Store sessions in Redis
	if err = s.redisRepo.SetSession(ctx, accessID, user.ID, s.sessionTTL()); err != nil {
		logger.Error("[Login] err SetSession access", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err = s.redisRepo.SetSession(ctx, refreshID, user.ID, s.config.Auth.RefreshExpiration); err != nil {
		logger.Error("[Login] err SetSession refresh", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	s.metrics.Login("ok")

	return &model.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    tokenType,
		ExpiresIn:    int64(s.config.Auth.JWTExpiration.Seconds()),
		User:         model.NewUserProfile(user, nil),
	}, nil
}

// RefreshToken exchanges a live refresh token for a new access token.
func (s *UserAppImpl) RefreshToken(ctx context.Context, req *model.RefreshTokenRequest) (*model.TokenResponse, error) {
	claims, err := s.parseJWT(req.RefreshToken, tokenKindRefresh)
	if err != nil {
		return nil, err
	}
	user, err := s.resolveSession(ctx, claims)
	if err != nil {
		return nil, err
	}

	access, accessID, err := s.generateJWT(user, tokenKindAccess, s.config.Auth.JWTExpiration)
	if err != nil {
		logger.Error("[RefreshToken] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err = s.redisRepo.SetSession(ctx, accessID, user.ID, s.sessionTTL()); err != nil {
		logger.Error("[RefreshToken] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.TokenResponse{
		AccessToken: access,
		TokenType:   tokenType,
		ExpiresIn:   int64(s.config.Auth.JWTExpiration.Seconds()),
	}, nil
}

// Logout revokes the session behind the presented access token.
func (s *UserAppImpl) Logout(ctx context.Context, principal model.Principal) error {
	if principal.SessionID == "" {
		return errors.SetCustomError(constant.ErrTokenMissing)
	}
	if err := s.redisRepo.DeleteSession(ctx, principal.SessionID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// ValidateToken resolves a bearer access token to the principal behind it.
// The token must be signed by us, unexpired, backed by a live session and
// belong to an account that may still log in.
func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.Principal, error) {
	claims, err := s.parseJWT(tokenString, tokenKindAccess)
	if err != nil {
		return nil, err
	}
	user, err := s.resolveSession(ctx, claims)
	if err != nil {
		return nil, err
	}
	return &model.Principal{Actor: user.Actor(), SessionID: claims.ID}, nil
}

func (s *UserAppImpl) parseJWT(tokenString, kind string) (*Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, errors.SetCustomError(constant.ErrTokenMissing)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.SetCustomError(constant.ErrTokenExpired)
		}
		return nil, errors.SetCustomError(constant.ErrTokenInvalid)
	}
	if !token.Valid || claims.Kind != kind || claims.ID == "" || claims.Subject == "" {
		return nil, errors.SetCustomError(constant.ErrTokenInvalid)
	}
	return claims, nil
}

// resolveSession checks the redis session for claims and loads its user.
func (s *UserAppImpl) resolveSession(ctx context.Context, claims *Claims) (*model.UserEntity, error) {
	sessionUserID, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil {
		if stderrors.Is(err, redisrepo.ErrNil) {
			return nil, errors.SetCustomError(constant.ErrTokenExpired).WithDetail("session has ended")
		}
		logger.Error("[resolveSession] err GetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if sessionUserID != claims.Subject {
		return nil, errors.SetCustomError(constant.ErrTokenInvalid)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: claims.Subject, IncludeInactive: true})
	if err != nil {
		logger.Error("[resolveSession] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrTokenInvalid)
	}
	if err = account.CanLogin(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserAppImpl) sessionTTL() time.Duration {
	if s.config.Auth.SessionExpTime > 0 {
		return s.config.Auth.SessionExpTime
	}
	return s.config.Auth.JWTExpiration
}

// generateJWT creates a signed token and returns it with its token ID.
func (s *UserAppImpl) generateJWT(user *model.UserEntity, kind string, ttl time.Duration) (string, string, error) {
	now := s.now()
	claims := Claims{
		Role: user.Role,
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, claims.ID, nil
}
