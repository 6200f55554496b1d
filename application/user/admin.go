package user

import (
	"context"
	"strings"

	"github.com/muhammadheryan/farm-portal/application/account"
	"github.com/muhammadheryan/farm-portal/application/policy"
	"github.com/muhammadheryan/farm-portal/constant"
	"github.com/muhammadheryan/farm-portal/model"
	"github.com/muhammadheryan/farm-portal/utils/errors"
	"github.com/muhammadheryan/farm-portal/utils/logger"
	"go.uber.org/zap"
)

func (s *UserAppImpl) GetProfile(ctx context.Context, actor model.Actor, userID string) (*model.UserProfile, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID, IncludeInactive: actor.Role == constant.RoleAdmin})
	if err != nil {
		logger.Error("[GetProfile] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound).WithDetail("user not found")
	}
	if err = s.authorize(actor, policy.OpRead, policy.UserTarget(user)); err != nil {
		return nil, err
	}

	profile, err := s.userRepo.GetProfile(ctx, user.ID, user.Role)
	if err != nil {
		logger.Error("[GetProfile] err userRepo.GetProfile", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return model.NewUserProfile(user, profile), nil
}

// UpdateProfile applies the whitelisted fields of the account's role.
// Identity fields (email, phone, role, identifiers) are never editable here.
func (s *UserAppImpl) UpdateProfile(ctx context.Context, actor model.Actor, userID string, req *model.UpdateProfileRequest) (*model.UserProfile, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest).
			WithFields(errors.FieldError{Field: "name", Rule: "required"})
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateProfile] err BeginTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	user, err := s.userRepo.GetForUpdateTx(ctx, tx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[UpdateProfile] err userRepo.GetForUpdateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound).WithDetail("user not found")
	}
	if err = s.authorize(actor, policy.OpUpdate, policy.UserTarget(user)); err != nil {
		return nil, err
	}

	profile, err := s.userRepo.GetProfile(ctx, user.ID, user.Role)
	if err != nil {
		logger.Error("[UpdateProfile] err userRepo.GetProfile", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		user.Address = req.Address
	}
	applyProfileUpdate(profile, req)

	acc := &model.Account{User: *user, Profile: profile}
	if err = s.userRepo.UpdateProfileTx(ctx, tx, acc); err != nil {
		logger.Error("[UpdateProfile] err userRepo.UpdateProfileTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err = s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateProfile] err CommitTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return model.NewAccountProfile(acc), nil
}

func applyProfileUpdate(profile model.RoleProfile, req *model.UpdateProfileRequest) {
	switch p := profile.(type) {
	case *model.FarmerProfile:
		setIfPresent(&p.FarmName, req.FarmName)
		setIfPresent(&p.FarmSize, req.FarmSize)
		setIfPresent(&p.FarmType, req.FarmType)
		setIfPresent(&p.District, req.District)
		setIfPresent(&p.State, req.State)
		setIfPresent(&p.Pincode, req.Pincode)
	case *model.VeterinarianProfile:
		setIfPresent(&p.Specialization, req.Specialization)
		setIfPresent(&p.Qualification, req.Qualification)
		setIfPresent(&p.ClinicName, req.ClinicName)
		setIfPresent(&p.ClinicAddress, req.ClinicAddress)
		if req.ExperienceYears != nil {
			p.ExperienceYears = req.ExperienceYears
		}
	case *model.AdminProfile:
		setIfPresent(&p.Department, req.Department)
		setIfPresent(&p.Designation, req.Designation)
	}
}

func setIfPresent(dst **string, v *string) {
	if v != nil {
		*dst = v
	}
}

func (s *UserAppImpl) ListUsers(ctx context.Context, actor model.Actor, req *model.UserListRequest) (*model.UserListResponse, error) {
	if err := s.authorize(actor, policy.OpList, policy.UserCollection); err != nil {
		return nil, err
	}

	filter := &model.UserListFilter{
		Search:          req.Search,
		IncludeInactive: req.IncludeInactive,
		PageRequest:     req.PageRequest.Normalize(s.config.Pagination.DefaultPerPage, s.config.Pagination.MaxPerPage),
	}
	if strings.TrimSpace(req.Role) != "" {
		role, ok := constant.ParseRole(req.Role)
		if !ok {
			return nil, errors.SetCustomError(constant.ErrInvalidEnum).
				WithFields(errors.FieldError{Field: "role", Rule: "oneof=farmer veterinarian admin"})
		}
		filter.Role = role
	}
	if strings.TrimSpace(req.Status) != "" {
		status, ok := constant.ParseUserStatus(req.Status)
		if !ok {
			return nil, errors.SetCustomError(constant.ErrInvalidEnum).
				WithFields(errors.FieldError{Field: "status", Rule: "oneof=pending active inactive suspended"})
		}
		filter.Status = status
		if status == constant.UserStatusInactive {
			filter.IncludeInactive = true
		}
	}

	return s.listUsers(ctx, "ListUsers", filter)
}

// ListVeterinarians is the directory farmers pick from when assigning a vet.
// Only active veterinarians are listed.
func (s *UserAppImpl) ListVeterinarians(ctx context.Context, actor model.Actor, page model.PageRequest) (*model.UserListResponse, error) {
	if actor.ID == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	return s.listUsers(ctx, "ListVeterinarians", &model.UserListFilter{
		Role:        constant.RoleVeterinarian,
		Status:      constant.UserStatusActive,
		PageRequest: page.Normalize(s.config.Pagination.DefaultPerPage, s.config.Pagination.MaxPerPage),
	})
}

func (s *UserAppImpl) listUsers(ctx context.Context, op string, filter *model.UserListFilter) (*model.UserListResponse, error) {
	users, total, err := s.userRepo.List(ctx, filter)
	if err != nil {
		logger.Error("["+op+"] err userRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items := make([]model.UserProfile, 0, len(users))
	for i := range users {
		items = append(items, *model.NewUserProfile(&users[i], nil))
	}
	return &model.UserListResponse{
		Items:      items,
		Pagination: model.NewPagination(filter.PageRequest, total),
	}, nil
}

// UpdateStatus lets an admin move an account to active, suspended or inactive.
func (s *UserAppImpl) UpdateStatus(ctx context.Context, actor model.Actor, userID string, req *model.UpdateStatusRequest) (*model.UserProfile, error) {
	to, ok := constant.ParseUserStatus(req.Status)
	if !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidEnum).
			WithFields(errors.FieldError{Field: "status", Rule: "oneof=pending active inactive suspended"})
	}

	op := policy.OpManageStatus
	if to == constant.UserStatusInactive {
		op = policy.OpDelete
	}
	return s.changeStatus(ctx, "UpdateStatus", actor, userID, op, func(u *model.UserEntity) (bool, error) {
		return account.Apply(u, to, s.now())
	})
}

// DeactivateUser soft-deletes the account. Deactivating an already inactive
// account succeeds without changing anything.
func (s *UserAppImpl) DeactivateUser(ctx context.Context, actor model.Actor, userID string) error {
	_, err := s.changeStatus(ctx, "DeactivateUser", actor, userID, policy.OpDelete, func(u *model.UserEntity) (bool, error) {
		return account.Deactivate(u, s.now()), nil
	})
	return err
}

func (s *UserAppImpl) ReactivateUser(ctx context.Context, actor model.Actor, userID string) (*model.UserProfile, error) {
	return s.changeStatus(ctx, "ReactivateUser", actor, userID, policy.OpManageStatus, account.Reactivate)
}

// changeStatus loads and locks the user, checks op against it, applies
// transition and persists the result with its cascades in one transaction.
func (s *UserAppImpl) changeStatus(ctx context.Context, name string, actor model.Actor, userID string,
	op policy.Operation, transition func(u *model.UserEntity) (bool, error)) (*model.UserProfile, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("["+name+"] err BeginTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	user, err := s.userRepo.GetForUpdateTx(ctx, tx, &model.UserFilter{ID: userID, IncludeInactive: true})
	if err != nil {
		logger.Error("["+name+"] err userRepo.GetForUpdateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound).WithDetail("user not found")
	}
	if err = s.authorize(actor, op, policy.UserTarget(user)); err != nil {
		return nil, err
	}

	changed, err := transition(user)
	if err != nil {
		return nil, err
	}
	if !changed {
		return model.NewUserProfile(user, nil), nil
	}

	if err = s.userRepo.UpdateStatusTx(ctx, tx, user); err != nil {
		logger.Error("["+name+"] err userRepo.UpdateStatusTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err = s.cascadeStatusTx(ctx, tx, user, s.now()); err != nil {
		logger.Error("["+name+"] err cascadeStatusTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err = s.txRepo.CommitTx(tx); err != nil {
		logger.Error("["+name+"] err CommitTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	logger.Info("["+name+"] status changed",
		zap.String("user_id", user.ID), zap.String("status", string(user.Status)), zap.String("actor_id", actor.ID))
	return model.NewUserProfile(user, nil), nil
}

func (s *UserAppImpl) Stats(ctx context.Context, actor model.Actor) (*model.UserStats, error) {
	if err := s.authorize(actor, policy.OpList, policy.UserCollection); err != nil {
		return nil, err
	}
	stats, err := s.userRepo.Stats(ctx)
	if err != nil {
		logger.Error("[Stats] err userRepo.Stats", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return stats, nil
}

func (s *UserAppImpl) authorize(actor model.Actor, op policy.Operation, target policy.Target) error {
	decision := policy.Decide(actor, op, target)
	if !decision.Allowed {
		s.metrics.AuthorizationDenied(string(op))
	}
	return decision.Err()
}
