package animal

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/farm-portal/application"
	"github.com/muhammadheryan/farm-portal/application/policy"
	"github.com/muhammadheryan/farm-portal/cmd/config"
	"github.com/muhammadheryan/farm-portal/constant"
	"github.com/muhammadheryan/farm-portal/model"
	"github.com/muhammadheryan/farm-portal/repository"
	animalrepo "github.com/muhammadheryan/farm-portal/repository/animal"
	healthrecordrepo "github.com/muhammadheryan/farm-portal/repository/healthrecord"
	txrepo "github.com/muhammadheryan/farm-portal/repository/tx"
	userrepo "github.com/muhammadheryan/farm-portal/repository/user"
	"github.com/muhammadheryan/farm-portal/utils/errors"
	"github.com/muhammadheryan/farm-portal/utils/logger"
	"github.com/muhammadheryan/farm-portal/utils/metrics"
	"go.uber.org/zap"
)

type AnimalApp interface {
	CreateAnimal(ctx context.Context, actor model.Actor, req *model.CreateAnimalRequest) (*model.AnimalResponse, error)
	GetAnimal(ctx context.Context, actor model.Actor, animalID string) (*model.AnimalResponse, error)
	SearchAnimals(ctx context.Context, actor model.Actor, req *model.AnimalSearchRequest) (*model.AnimalListResponse, error)
	UpdateAnimal(ctx context.Context, actor model.Actor, animalID string, req *model.UpdateAnimalRequest) (*model.AnimalResponse, error)
	AssignVeterinarian(ctx context.Context, actor model.Actor, animalID string, req *model.AssignVeterinarianRequest) (*model.AnimalResponse, error)
	DeactivateAnimal(ctx context.Context, actor model.Actor, animalID string) error
	CreateHealthRecord(ctx context.Context, actor model.Actor, animalID string, req *model.CreateHealthRecordRequest) (*model.HealthRecordResponse, error)
	ListHealthRecords(ctx context.Context, actor model.Actor, animalID string, page model.PageRequest) (*model.HealthRecordListResponse, error)
	Summary(ctx context.Context, actor model.Actor) (*model.AnimalSummary, error)
	ListVeterinarianRecords(ctx context.Context, actor model.Actor, vetID string, page model.PageRequest) (*model.HealthRecordListResponse, error)
	VeterinarianSchedule(ctx context.Context, actor model.Actor, vetID string, req *model.ScheduleRequest) (*model.ScheduleResponse, error)
	Dashboard(ctx context.Context, actor model.Actor, role constant.Role, userID string) (*model.DashboardResponse, error)
}

type AnimalAppImpl struct {
	config           *config.Config
	txRepo           txrepo.TxRepository
	userRepo         userrepo.UserRepository
	animalRepo       animalrepo.AnimalRepository
	healthRecordRepo healthrecordrepo.HealthRecordRepository
	metrics          *metrics.Metrics
	now              func() time.Time
}

func NewAnimalApp(deps *application.Dependencies) AnimalApp {
	return &AnimalAppImpl{
		config:           deps.Config,
		txRepo:           deps.TxRepo,
		userRepo:         deps.UserRepo,
		animalRepo:       deps.AnimalRepo,
		healthRecordRepo: deps.HealthRecordRepo,
		metrics:          deps.Metrics,
		now:              deps.Clock(),
	}
}

func invalidEnum(field, rule string) error {
	return errors.SetCustomError(constant.ErrInvalidEnum).WithFields(errors.FieldError{Field: field, Rule: rule})
}

func (s *AnimalAppImpl) authorize(actor model.Actor, op policy.Operation, target policy.Target) error {
	decision := policy.Decide(actor, op, target)
	if !decision.Allowed {
		s.metrics.AuthorizationDenied(string(op))
	}
	return decision.Err()
}

// CreateAnimal registers an animal for the calling farmer, or for the farmer
// named in the request when an admin calls.
func (s *AnimalAppImpl) CreateAnimal(ctx context.Context, actor model.Actor, req *model.CreateAnimalRequest) (*model.AnimalResponse, error) {
	farmerID := strings.TrimSpace(req.FarmerID)
	if actor.Role == constant.RoleFarmer && farmerID == "" {
		farmerID = actor.ID
	}
	if actor.Role == constant.RoleAdmin && farmerID == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest).
			WithFields(errors.FieldError{Field: "farmer_id", Rule: "required"})
	}
	if err := s.authorize(actor, policy.OpCreate, policy.NewAnimalTarget(farmerID)); err != nil {
		return nil, err
	}

	species, ok := constant.ParseSpecies(req.Species)
	if !ok {
		return nil, invalidEnum("species", "oneof=cattle buffalo goat sheep poultry swine other")
	}
	gender, ok := constant.ParseGender(req.Gender)
	if !ok {
		return nil, invalidEnum("gender", "oneof=male female")
	}
	health := constant.HealthStatusHealthy
	if strings.TrimSpace(req.HealthStatus) != "" {
		if health, ok = constant.ParseHealthStatus(req.HealthStatus); !ok {
			return nil, invalidEnum("health_status", "oneof=healthy sick under_treatment recovering quarantine deceased")
		}
	}
	var production *constant.ProductionStatus
	if strings.TrimSpace(req.ProductionStatus) != "" {
		p, ok := constant.ParseProductionStatus(req.ProductionStatus)
		if !ok {
			return nil, invalidEnum("production_status", "oneof=active dry pregnant lactating breeding retired")
		}
		production = &p
	}

	if actor.Role == constant.RoleAdmin {
		if err := s.checkFarmer(ctx, farmerID); err != nil {
			return nil, err
		}
	}

	tagID := strings.TrimSpace(req.TagID)
	exists, err := s.animalRepo.TagExists(ctx, farmerID, tagID)
	if err != nil {
		logger.Error("[CreateAnimal] err animalRepo.TagExists", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if exists {
		return nil, errors.SetCustomError(constant.ErrTagExists).
			WithFields(errors.FieldError{Field: "tag_id", Rule: "unique"})
	}

	now := s.now()
	animal := &model.AnimalEntity{
		ID:                uuid.NewString(),
		TagID:             tagID,
		Name:              req.Name,
		Species:           species,
		Breed:             req.Breed,
		Gender:            gender,
		AgeMonths:         req.AgeMonths,
		WeightKg:          req.WeightKg,
		Color:             req.Color,
		HealthStatus:      health,
		ProductionStatus:  production,
		FarmerID:          farmerID,
		VaccinationStatus: req.VaccinationStatus,
		Notes:             req.Notes,
		IsActive:          true,
		CreatedAt:         now,
	}
	if req.BirthDate != nil {
		animal.BirthDate = req.BirthDate.Ptr()
	}

	if err = s.animalRepo.Create(ctx, animal); err != nil {
		if stderrors.Is(err, repository.ErrDuplicate) {
			return nil, errors.SetCustomError(constant.ErrTagExists).
				WithFields(errors.FieldError{Field: "tag_id", Rule: "unique"})
		}
		logger.Error("[CreateAnimal] err animalRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return model.NewAnimalResponse(animal, now), nil
}

// checkFarmer makes sure an admin creates animals only for a live farmer
// account. Whether that farmer must also be active is a config decision.
func (s *AnimalAppImpl) checkFarmer(ctx context.Context, farmerID string) error {
	farmer, err := s.userRepo.Get(ctx, &model.UserFilter{ID: farmerID})
	if err != nil {
		logger.Error("[CreateAnimal] err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if farmer == nil || farmer.Role != constant.RoleFarmer {
		return errors.SetCustomError(constant.ErrNotFound).WithDetail("farmer not found")
	}
	if s.config.Policy.RequireActiveFarmerForAdminCreate && farmer.Status != constant.UserStatusActive {
		return errors.SetCustomError(constant.ErrFarmerInactive)
	}
	return nil
}

func (s *AnimalAppImpl) GetAnimal(ctx context.Context, actor model.Actor, animalID string) (*model.AnimalResponse, error) {
	animal, err := s.loadVisible(ctx, "GetAnimal", actor, animalID)
	if err != nil {
		return nil, err
	}
	return model.NewAnimalResponse(animal, s.now()), nil
}

// loadVisible fetches the animal and checks the actor may read it. Admins
// also see soft-deleted animals.
func (s *AnimalAppImpl) loadVisible(ctx context.Context, op string, actor model.Actor, animalID string) (*model.AnimalEntity, error) {
	animal, err := s.animalRepo.Get(ctx, animalID, actor.Role == constant.RoleAdmin)
	if err != nil {
		logger.Error("["+op+"] err animalRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if animal == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound).WithDetail("animal not found")
	}
	if err = s.authorize(actor, policy.OpRead, policy.AnimalTarget(animal)); err != nil {
		return nil, err
	}
	return animal, nil
}

// SearchAnimals lists the animals visible to actor. The role scope is part
// of the query itself.
func (s *AnimalAppImpl) SearchAnimals(ctx context.Context, actor model.Actor, req *model.AnimalSearchRequest) (*model.AnimalListResponse, error) {
	scope, err := policy.AnimalScope(actor)
	if err != nil {
		return nil, err
	}

	filter := &model.AnimalFilter{
		Scope:           scope,
		FarmerID:        strings.TrimSpace(req.FarmerID),
		VeterinarianID:  strings.TrimSpace(req.VeterinarianID),
		Search:          req.Search,
		IncludeInactive: req.IncludeInactive && actor.Role == constant.RoleAdmin,
		PageRequest:     req.PageRequest.Normalize(s.config.Pagination.DefaultPerPage, s.config.Pagination.MaxPerPage),
	}
	if strings.TrimSpace(req.Species) != "" {
		species, ok := constant.ParseSpecies(req.Species)
		if !ok {
			return nil, invalidEnum("species", "oneof=cattle buffalo goat sheep poultry swine other")
		}
		filter.Species = species
	}
	if strings.TrimSpace(req.HealthStatus) != "" {
		health, ok := constant.ParseHealthStatus(req.HealthStatus)
		if !ok {
			return nil, invalidEnum("health_status", "oneof=healthy sick under_treatment recovering quarantine deceased")
		}
		filter.HealthStatus = health
	}
	if strings.TrimSpace(req.ProductionStatus) != "" {
		production, ok := constant.ParseProductionStatus(req.ProductionStatus)
		if !ok {
			return nil, invalidEnum("production_status", "oneof=active dry pregnant lactating breeding retired")
		}
		filter.ProductionStatus = production
	}

	animals, total, err := s.animalRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[SearchAnimals] err animalRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	now := s.now()
	items := make([]model.AnimalResponse, 0, len(animals))
	for i := range animals {
		items = append(items, *model.NewAnimalResponse(&animals[i], now))
	}
	return &model.AnimalListResponse{
		Items:      items,
		Pagination: model.NewPagination(filter.PageRequest, total),
	}, nil
}

func (s *AnimalAppImpl) UpdateAnimal(ctx context.Context, actor model.Actor, animalID string, req *model.UpdateAnimalRequest) (*model.AnimalResponse, error) {
	var (
		health     *constant.HealthStatus
		production *constant.ProductionStatus
	)
	if req.HealthStatus != nil {
		h, ok := constant.ParseHealthStatus(*req.HealthStatus)
		if !ok {
			return nil, invalidEnum("health_status", "oneof=healthy sick under_treatment recovering quarantine deceased")
		}
		health = &h
	}
	if req.ProductionStatus != nil {
		p, ok := constant.ParseProductionStatus(*req.ProductionStatus)
		if !ok {
			return nil, invalidEnum("production_status", "oneof=active dry pregnant lactating breeding retired")
		}
		production = &p
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateAnimal] err BeginTx", zap.String("error", err.Error()))
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
		logger.Error("[UpdateAnimal] err animalRepo.GetForUpdateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if animal == nil || !animal.IsActive {
		return nil, errors.SetCustomError(constant.ErrNotFound).WithDetail("animal not found")
	}
	if err = s.authorize(actor, policy.OpUpdate, policy.AnimalTarget(animal)); err != nil {
		return nil, err
	}

	if req.Name != nil {
		animal.Name = req.Name
	}
	if req.Breed != nil {
		animal.Breed = req.Breed
	}
	if req.WeightKg != nil {
		animal.WeightKg = req.WeightKg
	}
	if req.AgeMonths != nil {
		animal.AgeMonths = req.AgeMonths
	}
	if req.Color != nil {
		animal.Color = req.Color
	}
	if req.VaccinationStatus != nil {
		animal.VaccinationStatus = req.VaccinationStatus
	}
	if req.Notes != nil {
		animal.Notes = req.Notes
	}
	if health != nil {
		animal.HealthStatus = *health
	}
	if production != nil {
		animal.ProductionStatus = production
	}

	if err = s.animalRepo.UpdateTx(ctx, tx, animal); err != nil {
		logger.Error("[UpdateAnimal] err animalRepo.UpdateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err = s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateAnimal] err CommitTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return model.NewAnimalResponse(animal, s.now()), nil
}

// AssignVeterinarian links an active veterinarian to the animal, replacing
// any previous assignment.
func (s *AnimalAppImpl) AssignVeterinarian(ctx context.Context, actor model.Actor, animalID string, req *model.AssignVeterinarianRequest) (*model.AnimalResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[AssignVeterinarian] err BeginTx", zap.String("error", err.Error()))
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
		logger.Error("[AssignVeterinarian] err animalRepo.GetForUpdateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if animal == nil || !animal.IsActive {
		return nil, errors.SetCustomError(constant.ErrNotFound).WithDetail("animal not found")
	}
	if err = s.authorize(actor, policy.OpAssignVet, policy.AnimalTarget(animal)); err != nil {
		return nil, err
	}

	vetID := strings.TrimSpace(req.VeterinarianID)
	vet, err := s.userRepo.GetForUpdateTx(ctx, tx, &model.UserFilter{ID: vetID, IncludeInactive: true})
	if err != nil {
		logger.Error("[AssignVeterinarian] err userRepo.GetForUpdateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if vet == nil || vet.Role != constant.RoleVeterinarian {
		return nil, errors.SetCustomError(constant.ErrNotFound).WithDetail("veterinarian not found")
	}
	if vet.Status != constant.UserStatusActive || !vet.IsActive {
		return nil, errors.SetCustomError(constant.ErrVeterinarianInactive)
	}

	if err = s.animalRepo.AssignVeterinarianTx(ctx, tx, animal.ID, vet.ID); err != nil {
		logger.Error("[AssignVeterinarian] err animalRepo.AssignVeterinarianTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err = s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[AssignVeterinarian] err CommitTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	animal.VeterinarianID = &vet.ID
	return model.NewAnimalResponse(animal, s.now()), nil
}

// DeactivateAnimal soft-deletes the animal. An already inactive animal is
// left untouched and the call succeeds.
func (s *AnimalAppImpl) DeactivateAnimal(ctx context.Context, actor model.Actor, animalID string) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DeactivateAnimal] err BeginTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	animal, err := s.animalRepo.GetForUpdateTx(ctx, tx, animalID)
	if err != nil {
		logger.Error("[DeactivateAnimal] err animalRepo.GetForUpdateTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if animal == nil {
		return errors.SetCustomError(constant.ErrNotFound).WithDetail("animal not found")
	}
	if err = s.authorize(actor, policy.OpDelete, policy.AnimalTarget(animal)); err != nil {
		return err
	}
	if !animal.IsActive {
		return nil
	}

	if err = s.animalRepo.SoftDeleteTx(ctx, tx, animal.ID, s.now()); err != nil {
		logger.Error("[DeactivateAnimal] err animalRepo.SoftDeleteTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err = s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DeactivateAnimal] err CommitTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

// Summary aggregates the herd visible to actor.
func (s *AnimalAppImpl) Summary(ctx context.Context, actor model.Actor) (*model.AnimalSummary, error) {
	scope, err := policy.AnimalScope(actor)
	if err != nil {
		return nil, err
	}
	summary, err := s.animalRepo.Summary(ctx, scope, s.now())
	if err != nil {
		logger.Error("[Summary] err animalRepo.Summary", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return summary, nil
}
