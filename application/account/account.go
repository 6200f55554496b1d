// Package account holds the user lifecycle rules. Every status change of a
// user goes through this package so that a user can only become active once
// both contact channels are verified.
package account

import (
	"time"

	"github.com/muhammadheryan/farm-portal/constant"
	"github.com/muhammadheryan/farm-portal/model"
	"github.com/muhammadheryan/farm-portal/utils/errors"
)

// CanLogin returns nil when the user may authenticate, otherwise an error
// naming the blocking status.
func CanLogin(u *model.UserEntity) error {
	if !u.IsActive && u.Status != constant.UserStatusSuspended {
		return errors.SetCustomError(constant.ErrAccountInactive)
	}
	switch u.Status {
	case constant.UserStatusActive:
		if !u.Verified() {
			return errors.SetCustomError(constant.ErrAccountPending)
		}
		return nil
	case constant.UserStatusPending:
		return errors.SetCustomError(constant.ErrAccountPending)
	case constant.UserStatusInactive:
		return errors.SetCustomError(constant.ErrAccountInactive)
	case constant.UserStatusSuspended:
		return errors.SetCustomError(constant.ErrAccountSuspended)
	}
	return errors.SetCustomError(constant.ErrInvalidState)
}

// MarkVerified records proof of control over the given channel(s). A pending
// user becomes active as soon as both channels are verified; activated
// reports that transition.
func MarkVerified(u *model.UserEntity, channel constant.VerificationChannel) (activated bool, err error) {
	if u.Verified() {
		return false, errors.SetCustomError(constant.ErrAlreadyVerified)
	}

	switch channel {
	case constant.ChannelEmail:
		u.EmailVerified = true
	case constant.ChannelPhone:
		u.PhoneVerified = true
	case constant.ChannelBoth:
		u.EmailVerified = true
		u.PhoneVerified = true
	default:
		return false, errors.SetCustomError(constant.ErrInvalidEnum).
			WithFields(errors.FieldError{Field: "verification_type", Rule: "oneof=email phone both"})
	}

	if u.Status == constant.UserStatusPending && u.Verified() {
		u.Status = constant.UserStatusActive
		return true, nil
	}
	return false, nil
}

// Deactivate soft-deletes the user. Deactivating an inactive user is a no-op.
func Deactivate(u *model.UserEntity, now time.Time) (changed bool) {
	if u.Status == constant.UserStatusInactive && !u.IsActive {
		return false
	}
	u.Status = constant.UserStatusInactive
	u.IsActive = false
	u.DeletedAt = &now
	return true
}

// Suspend blocks a pending or active user until an admin reactivates it.
func Suspend(u *model.UserEntity) (changed bool, err error) {
	switch u.Status {
	case constant.UserStatusSuspended:
		return false, nil
	case constant.UserStatusPending, constant.UserStatusActive:
		u.Status = constant.UserStatusSuspended
		return true, nil
	}
	return false, errors.SetCustomError(constant.ErrInvalidState).
		WithDetail("only pending or active accounts can be suspended")
}

// Reactivate restores an inactive or suspended user. Users that never
// finished verification return to pending rather than active.
func Reactivate(u *model.UserEntity) (changed bool, err error) {
	switch u.Status {
	case constant.UserStatusInactive, constant.UserStatusSuspended:
	case constant.UserStatusActive, constant.UserStatusPending:
		if u.IsActive {
			return false, nil
		}
	default:
		return false, errors.SetCustomError(constant.ErrInvalidState)
	}

	u.IsActive = true
	u.DeletedAt = nil
	if u.Verified() {
		u.Status = constant.UserStatusActive
	} else {
		u.Status = constant.UserStatusPending
	}
	return true, nil
}

// Apply moves the user to the requested status on behalf of an admin.
// Pending is never a valid target and active is only reachable for verified users.
func Apply(u *model.UserEntity, to constant.UserStatus, now time.Time) (changed bool, err error) {
	switch to {
	case constant.UserStatusInactive:
		return Deactivate(u, now), nil
	case constant.UserStatusSuspended:
		return Suspend(u)
	case constant.UserStatusActive:
		if u.Status == constant.UserStatusActive && u.IsActive {
			return false, nil
		}
		if !u.Verified() {
			return false, errors.SetCustomError(constant.ErrInvalidState).
				WithDetail("account must complete verification before it can be active")
		}
		return Reactivate(u)
	case constant.UserStatusPending:
		return false, errors.SetCustomError(constant.ErrInvalidState).
			WithDetail("accounts cannot be moved back to pending")
	}
	return false, errors.SetCustomError(constant.ErrInvalidEnum)
}
