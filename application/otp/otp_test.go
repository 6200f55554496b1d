package otp_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/farm-portal/application/otp"
	"github.com/muhammadheryan/farm-portal/cmd/config"
	"github.com/muhammadheryan/farm-portal/constant"
	"github.com/muhammadheryan/farm-portal/model"
	cerr "github.com/muhammadheryan/farm-portal/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPolicy() otp.Policy {
	return otp.NewPolicy(config.OTPConfig{
		Length:              6,
		VerificationWindow:  10 * time.Minute,
		PasswordResetWindow: 30 * time.Minute,
	})
}

func TestGenerate(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := otp.Generate(6)
		require.NoError(t, err)
		assert.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "code %q is not numeric", code)
		}
	}

	code, err := otp.Generate(0)
	require.NoError(t, err)
	assert.Len(t, code, 6)
}

func TestPolicy_IssueOverwritesPreviousCode(t *testing.T) {
	p := newPolicy()
	u := &model.UserEntity{ID: "u1"}
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	first, err := p.Issue(u, constant.OTPPurposeVerification, now)
	require.NoError(t, err)

	second, err := p.Issue(u, constant.OTPPurposePasswordReset, now.Add(time.Minute))
	require.NoError(t, err)

	assert.Equal(t, second, *u.OTPCode)
	assert.Equal(t, constant.OTPPurposePasswordReset, *u.OTPPurpose)
	assert.Equal(t, now.Add(time.Minute), *u.OTPIssuedAt)

	// the first code is no longer accepted for its purpose
	err = p.Validate(u, first, constant.OTPPurposeVerification, now.Add(2*time.Minute))
	assert.True(t, cerr.IsType(err, constant.ErrOTPNotIssued))
}

func TestPolicy_Validate(t *testing.T) {
	p := newPolicy()
	issued := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	code := "123456"
	verification := constant.OTPPurposeVerification
	reset := constant.OTPPurposePasswordReset

	tests := []struct {
		name    string
		user    *model.UserEntity
		code    string
		purpose constant.OTPPurpose
		now     time.Time
		errCode constant.ErrorType
	}{
		{
			name:    "no code issued",
			user:    &model.UserEntity{},
			code:    code,
			purpose: verification,
			now:     issued,
			errCode: constant.ErrOTPNotIssued,
		},
		{
			name:    "purpose mismatch counts as not issued",
			user:    &model.UserEntity{OTPCode: &code, OTPPurpose: &reset, OTPIssuedAt: &issued},
			code:    code,
			purpose: verification,
			now:     issued,
			errCode: constant.ErrOTPNotIssued,
		},
		{
			name:    "wrong code",
			user:    &model.UserEntity{OTPCode: &code, OTPPurpose: &verification, OTPIssuedAt: &issued},
			code:    "654321",
			purpose: verification,
			now:     issued.Add(time.Minute),
			errCode: constant.ErrOTPMismatch,
		},
		{
			name:    "verification code expired after 10 minutes",
			user:    &model.UserEntity{OTPCode: &code, OTPPurpose: &verification, OTPIssuedAt: &issued},
			code:    code,
			purpose: verification,
			now:     issued.Add(10*time.Minute + time.Second),
			errCode: constant.ErrOTPExpired,
		},
		{
			name:    "verification code valid at window edge",
			user:    &model.UserEntity{OTPCode: &code, OTPPurpose: &verification, OTPIssuedAt: &issued},
			code:    code,
			purpose: verification,
			now:     issued.Add(10 * time.Minute),
		},
		{
			name:    "reset code still valid after 20 minutes",
			user:    &model.UserEntity{OTPCode: &code, OTPPurpose: &reset, OTPIssuedAt: &issued},
			code:    code,
			purpose: reset,
			now:     issued.Add(20 * time.Minute),
		},
		{
			name:    "reset code expired after 30 minutes",
			user:    &model.UserEntity{OTPCode: &code, OTPPurpose: &reset, OTPIssuedAt: &issued},
			code:    code,
			purpose: reset,
			now:     issued.Add(31 * time.Minute),
			errCode: constant.ErrOTPExpired,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := p.Validate(tt.user, tt.code, tt.purpose, tt.now)
			if tt.errCode == constant.Successful {
				assert.NoError(t, err)
				return
			}
			assert.True(t, cerr.IsType(err, tt.errCode), "got %v", err)
		})
	}
}

func TestPolicy_WindowsAreConfigurable(t *testing.T) {
	p := otp.NewPolicy(config.OTPConfig{Length: 4, VerificationWindow: time.Minute, PasswordResetWindow: 2 * time.Minute})
	u := &model.UserEntity{}
	now := time.Now()

	code, err := p.Issue(u, constant.OTPPurposeVerification, now)
	require.NoError(t, err)
	assert.Len(t, code, 4)

	err = p.Validate(u, code, constant.OTPPurposeVerification, now.Add(90*time.Second))
	assert.True(t, cerr.IsType(err, constant.ErrOTPExpired))
}

func TestClear(t *testing.T) {
	p := newPolicy()
	u := &model.UserEntity{}
	now := time.Now()
	code, err := p.Issue(u, constant.OTPPurposeVerification, now)
	require.NoError(t, err)

	otp.Clear(u)

	assert.Nil(t, u.OTPCode)
	assert.Nil(t, u.OTPPurpose)
	assert.Nil(t, u.OTPIssuedAt)
	err = p.Validate(u, code, constant.OTPPurposeVerification, now)
	assert.True(t, cerr.IsType(err, constant.ErrOTPNotIssued))
}
