package animal

import (
	"context"
	"time"

	"github.com/muhammadheryan/farm-portal/application/policy"
	"github.com/muhammadheryan/farm-portal/constant"
	"github.com/muhammadheryan/farm-portal/model"
	"github.com/muhammadheryan/farm-portal/utils/errors"
	"github.com/muhammadheryan/farm-portal/utils/logger"
	"go.uber.org/zap"
)

const (
	defaultScheduleDays = 30
	dashboardItems      = 10
)

// loadAccount checks that actor may read the activity of userID, then loads
// the active account and requires it to have role.
func (s *AnimalAppImpl) loadAccount(ctx context.Context, op string, actor model.Actor, userID string, role constant.Role) (*model.UserEntity, error) {
	if err := s.authorize(actor, policy.OpRead, policy.AccountTarget(userID)); err != nil {
		return nil, err
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("["+op+"] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil || user.Role != role {
		return nil, errors.SetCustomError(constant.ErrNotFound).WithDetail(string(role) + " not found")
	}
	return user, nil
}

func (s *AnimalAppImpl) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ListVeterinarianRecords returns the health records written by the
// veterinarian, newest first.
func (s *AnimalAppImpl) ListVeterinarianRecords(ctx context.Context, actor model.Actor, vetID string, page model.PageRequest) (*model.HealthRecordListResponse, error) {
	if _, err := s.loadAccount(ctx, "ListVeterinarianRecords", actor, vetID, constant.RoleVeterinarian); err != nil {
		return nil, err
	}

	page = page.Normalize(s.config.Pagination.DefaultPerPage, s.config.Pagination.MaxPerPage)
	records, total, err := s.healthRecordRepo.ListByRecorder(ctx, vetID, page)
	if err != nil {
		logger.Error("[ListVeterinarianRecords] err healthRecordRepo.ListByRecorder", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.HealthRecordListResponse{
		Items:      records,
		Pagination: model.NewPagination(page, total),
	}, nil
}

// VeterinarianSchedule lists the next checkups of the veterinarian's assigned
// animals between start and end inclusive.
func (s *AnimalAppImpl) VeterinarianSchedule(ctx context.Context, actor model.Actor, vetID string, req *model.ScheduleRequest) (*model.ScheduleResponse, error) {
	start := s.today()
	if req.StartDate != nil && !req.StartDate.IsZero() {
		start = req.StartDate.Time
	}
	end := start.AddDate(0, 0, defaultScheduleDays)
	if req.EndDate != nil && !req.EndDate.IsZero() {
		end = req.EndDate.Time
	}
	if end.Before(start) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest).
			WithFields(errors.FieldError{Field: "end_date", Rule: "gtefield=start_date"})
	}

	if _, err := s.loadAccount(ctx, "VeterinarianSchedule", actor, vetID, constant.RoleVeterinarian); err != nil {
		return nil, err
	}

	items, err := s.healthRecordRepo.ListScheduled(ctx, &model.CheckupFilter{
		Scope: model.AnimalScope{VeterinarianID: vetID},
		From:  start,
		To:    end,
	})
	if err != nil {
		logger.Error("[VeterinarianSchedule] err healthRecordRepo.ListScheduled", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.ScheduleResponse{
		VeterinarianID:    vetID,
		StartDate:         model.Date{Time: start},
		EndDate:           model.Date{Time: end},
		Items:             items,
		TotalAppointments: len(items),
	}, nil
}

// Dashboard gathers the herd summary, the latest health records and the
// upcoming checkups of a farmer or veterinarian. For a farmer the records are
// those of the farmer's animals; for a veterinarian those the vet wrote.
func (s *AnimalAppImpl) Dashboard(ctx context.Context, actor model.Actor, role constant.Role, userID string) (*model.DashboardResponse, error) {
	if role != constant.RoleFarmer && role != constant.RoleVeterinarian {
		return nil, errors.SetCustomError(constant.ErrInvalidEnum).
			WithFields(errors.FieldError{Field: "role", Rule: "oneof=farmer veterinarian"})
	}
	user, err := s.loadAccount(ctx, "Dashboard", actor, userID, role)
	if err != nil {
		return nil, err
	}

	scope, err := policy.AnimalScope(model.Actor{ID: user.ID, Role: user.Role})
	if err != nil {
		return nil, err
	}
	summary, err := s.animalRepo.Summary(ctx, scope, s.now())
	if err != nil {
		logger.Error("[Dashboard] err animalRepo.Summary", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	var recent []model.HealthRecordEntity
	if role == constant.RoleFarmer {
		recent, err = s.healthRecordRepo.ListRecentByFarmer(ctx, user.ID, dashboardItems)
	} else {
		recent, _, err = s.healthRecordRepo.ListByRecorder(ctx, user.ID, model.PageRequest{Page: 1, PerPage: dashboardItems})
	}
	if err != nil {
		logger.Error("[Dashboard] err healthRecordRepo recent records", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	upcoming, err := s.healthRecordRepo.ListScheduled(ctx, &model.CheckupFilter{
		Scope: scope,
		From:  s.today(),
		Limit: dashboardItems,
	})
	if err != nil {
		logger.Error("[Dashboard] err healthRecordRepo.ListScheduled", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.DashboardResponse{
		User:                model.NewUserProfile(user, nil),
		Summary:             summary,
		RecentHealthRecords: recent,
		UpcomingCheckups:    upcoming,
	}, nil
}
