// Package otp issues and checks the one-time numeric codes stored on a user
// record. Codes are bound to a purpose and expire after a per-purpose window.
package otp

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"time"

	"github.com/muhammadheryan/farm-portal/cmd/config"
	"github.com/muhammadheryan/farm-portal/constant"
	"github.com/muhammadheryan/farm-portal/model"
	"github.com/muhammadheryan/farm-portal/utils/errors"
)

const defaultLength = 6

type Policy struct {
	Length  int
	Windows map[constant.OTPPurpose]time.Duration
}

func NewPolicy(cfg config.OTPConfig) Policy {
	return Policy{
		Length: cfg.Length,
		Windows: map[constant.OTPPurpose]time.Duration{
			constant.OTPPurposeVerification:  cfg.VerificationWindow,
			constant.OTPPurposePasswordReset: cfg.PasswordResetWindow,
		},
	}
}

func (p Policy) Window(purpose constant.OTPPurpose) time.Duration {
	return p.Windows[purpose]
}

// Generate returns a numeric code of the given length from crypto/rand.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = defaultLength
	}
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%0*d", length, n), nil
}

// Issue sets a fresh code on u, replacing any outstanding one. The caller
// persists the three OTP fields in a single write.
func (p Policy) Issue(u *model.UserEntity, purpose constant.OTPPurpose, now time.Time) (string, error) {
	code, err := Generate(p.Length)
	if err != nil {
		return "", err
	}
	issuedAt := now
	u.OTPCode = &code
	u.OTPPurpose = &purpose
	u.OTPIssuedAt = &issuedAt
	return code, nil
}

// Validate checks code against the one stored for purpose.
func (p Policy) Validate(u *model.UserEntity, code string, purpose constant.OTPPurpose, now time.Time) error {
	if u.OTPCode == nil || u.OTPIssuedAt == nil || u.OTPPurpose == nil || *u.OTPPurpose != purpose {
		return errors.SetCustomError(constant.ErrOTPNotIssued)
	}
	if subtle.ConstantTimeCompare([]byte(*u.OTPCode), []byte(code)) != 1 {
		return errors.SetCustomError(constant.ErrOTPMismatch)
	}
	if now.Sub(*u.OTPIssuedAt) > p.Window(purpose) {
		return errors.SetCustomError(constant.ErrOTPExpired)
	}
	return nil
}

// Clear erases the stored code so it cannot be replayed.
func Clear(u *model.UserEntity) {
	u.OTPCode = nil
	u.OTPPurpose = nil
	u.OTPIssuedAt = nil
}
