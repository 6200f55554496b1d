package user

import (
	"context"

	"github.com/muhammadheryan/farm-portal/model"
	"github.com/stretchr/testify/mock"
)

// UserApp is a testify mock of the UserApp interface.
type UserApp struct {
	mock.Mock
}

func (_m *UserApp) Register(ctx context.Context, actor *model.Actor, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	ret := _m.Called(ctx, actor, req)

	var r0 *model.RegisterResponse
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.RegisterResponse)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *UserApp) VerifyAccount(ctx context.Context, req *model.VerifyRequest) (*model.VerifyResponse, error) {
	ret := _m.Called(ctx, req)

	var r0 *model.VerifyResponse
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.VerifyResponse)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *UserApp) ResendVerification(ctx context.Context, req *model.ResendVerificationRequest) (*model.NotificationResponse, error) {
	ret := _m.Called(ctx, req)

	var r0 *model.NotificationResponse
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.NotificationResponse)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *UserApp) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	ret := _m.Called(ctx, req)

	var r0 *model.LoginResponse
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.LoginResponse)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *UserApp) RefreshToken(ctx context.Context, req *model.RefreshTokenRequest) (*model.TokenResponse, error) {
	ret := _m.Called(ctx, req)

	var r0 *model.TokenResponse
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.TokenResponse)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *UserApp) Logout(ctx context.Context, principal model.Principal) error {
	ret := _m.Called(ctx, principal)

	r0 := ret.Error(0)
	return r0
}

func (_m *UserApp) ValidateToken(ctx context.Context, tokenString string) (*model.Principal, error) {
	ret := _m.Called(ctx, tokenString)

	var r0 *model.Principal
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.Principal)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *UserApp) ForgotPassword(ctx context.Context, req *model.ForgotPasswordRequest) error {
	ret := _m.Called(ctx, req)

	r0 := ret.Error(0)
	return r0
}

func (_m *UserApp) ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) error {
	ret := _m.Called(ctx, req)

	r0 := ret.Error(0)
	return r0
}

func (_m *UserApp) ChangePassword(ctx context.Context, actor model.Actor, req *model.ChangePasswordRequest) error {
	ret := _m.Called(ctx, actor, req)

	r0 := ret.Error(0)
	return r0
}

func (_m *UserApp) GetProfile(ctx context.Context, actor model.Actor, userID string) (*model.UserProfile, error) {
	ret := _m.Called(ctx, actor, userID)

	var r0 *model.UserProfile
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.UserProfile)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *UserApp) UpdateProfile(ctx context.Context, actor model.Actor, userID string, req *model.UpdateProfileRequest) (*model.UserProfile, error) {
	ret := _m.Called(ctx, actor, userID, req)

	var r0 *model.UserProfile
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.UserProfile)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *UserApp) ListUsers(ctx context.Context, actor model.Actor, req *model.UserListRequest) (*model.UserListResponse, error) {
	ret := _m.Called(ctx, actor, req)

	var r0 *model.UserListResponse
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.UserListResponse)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *UserApp) ListVeterinarians(ctx context.Context, actor model.Actor, page model.PageRequest) (*model.UserListResponse, error) {
	ret := _m.Called(ctx, actor, page)

	var r0 *model.UserListResponse
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.UserListResponse)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *UserApp) UpdateStatus(ctx context.Context, actor model.Actor, userID string, req *model.UpdateStatusRequest) (*model.UserProfile, error) {
	ret := _m.Called(ctx, actor, userID, req)

	var r0 *model.UserProfile
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.UserProfile)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *UserApp) DeactivateUser(ctx context.Context, actor model.Actor, userID string) error {
	ret := _m.Called(ctx, actor, userID)

	r0 := ret.Error(0)
	return r0
}

func (_m *UserApp) ReactivateUser(ctx context.Context, actor model.Actor, userID string) (*model.UserProfile, error) {
	ret := _m.Called(ctx, actor, userID)

	var r0 *model.UserProfile
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.UserProfile)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *UserApp) Stats(ctx context.Context, actor model.Actor) (*model.UserStats, error) {
	ret := _m.Called(ctx, actor)

	var r0 *model.UserStats
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.UserStats)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// NewUserApp creates a new instance of UserApp. It also registers a cleanup
// function to assert the mocks expectations.
func NewUserApp(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserApp {
	m := &UserApp{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
