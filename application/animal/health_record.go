package animal

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/farm-portal/application/policy"
	"github.com/muhammadheryan/farm-portal/constant"
	"github.com/muhammadheryan/farm-portal/model"
	"github.com/muhammadheryan/farm-portal/utils/errors"
	"github.com/muhammadheryan/farm-portal/utils/logger"
	"go.uber.org/zap"
)

// CreateHealthRecord stores a checkup and moves the animal's last checkup
// date, and its health status when overall_condition is given, in the same
// transaction.
func (s *AnimalAppImpl) CreateHealthRecord(ctx context.Context, actor model.Actor, animalID string, req *model.CreateHealthRecordRequest) (*model.HealthRecordResponse, error) {
	var condition *constant.HealthStatus
	if strings.TrimSpace(req.OverallCondition) != "" {
		c, ok := constant.ParseHealthStatus(req.OverallCondition)
		if !ok {
			return nil, invalidEnum("overall_condition", "oneof=healthy sick under_treatment recovering quarantine deceased")
		}
		condition = &c
	}

	now := s.now()
	checkupDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if req.CheckupDate != nil {
		checkupDate = req.CheckupDate.Time
	}
	if checkupDate.After(now) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest).
			WithFields(errors.FieldError{Field: "checkup_date", Rule: "not_future"})
	}
	record := &model.HealthRecordEntity{
		ID:               uuid.NewString(),
		AnimalID:         animalID,
		RecordedByID:     actor.ID,
		CheckupDate:      checkupDate,
		Temperature:      req.Temperature,
		WeightKg:         req.WeightKg,
		HeartRate:        req.HeartRate,
		RespiratoryRate:  req.RespiratoryRate,
		Symptoms:         req.Symptoms,
		Diagnosis:        req.Diagnosis,
		TreatmentGiven:   req.TreatmentGiven,
		Recommendations:  req.Recommendations,
		OverallCondition: condition,
		Notes:            req.Notes,
		IsActive:         true,
		CreatedAt:        now,
	}
	if req.NextCheckupDate != nil {
		record.NextCheckupDate = req.NextCheckupDate.Ptr()
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateHealthRecord] err BeginTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	animal, err := s.animalRepo.GetForUpdateTx(ctx, tx, animalID)
	if err != nil {
		logger.Error("[CreateHealthRecord] err animalRepo.GetForUpdateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if animal == nil || !animal.IsActive {
		return nil, errors.SetCustomError(constant.ErrNotFound).WithDetail("animal not found")
	}
	if err = s.authorize(actor, policy.OpCreateHealthRecord, policy.AnimalTarget(animal)); err != nil {
		return nil, err
	}

	if err = s.healthRecordRepo.CreateTx(ctx, tx, record); err != nil {
		logger.Error("[CreateHealthRecord] err healthRecordRepo.CreateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if condition != nil {
		animal.HealthStatus = *condition
	}
	animal.LastCheckupDate = &checkupDate
	if err = s.animalRepo.UpdateHealthStatusTx(ctx, tx, animal.ID, animal.HealthStatus, checkupDate); err != nil {
		logger.Error("[CreateHealthRecord] err animalRepo.UpdateHealthStatusTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err = s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateHealthRecord] err CommitTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	s.metrics.HealthRecordCreated()

	return &model.HealthRecordResponse{
		Record: record,
		Animal: model.NewAnimalResponse(animal, now),
	}, nil
}

// ListHealthRecords returns the animal's checkups, newest first.
func (s *AnimalAppImpl) ListHealthRecords(ctx context.Context, actor model.Actor, animalID string, page model.PageRequest) (*model.HealthRecordListResponse, error) {
	if _, err := s.loadVisible(ctx, "ListHealthRecords", actor, animalID); err != nil {
		return nil, err
	}

	page = page.Normalize(s.config.Pagination.DefaultPerPage, s.config.Pagination.MaxPerPage)
	records, total, err := s.healthRecordRepo.ListByAnimal(ctx, animalID, page)
	if err != nil {
		logger.Error("[ListHealthRecords] err healthRecordRepo.ListByAnimal", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.HealthRecordListResponse{
		Items:      records,
		Pagination: model.NewPagination(page, total),
	}, nil
}
