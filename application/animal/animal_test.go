package animal_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/farm-portal/application"
	appanimal "github.com/muhammadheryan/farm-portal/application/animal"
	"github.com/muhammadheryan/farm-portal/cmd/config"
	"github.com/muhammadheryan/farm-portal/constant"
	animalmocks "github.com/muhammadheryan/farm-portal/mocks/repository/animal"
	healthrecordmocks "github.com/muhammadheryan/farm-portal/mocks/repository/healthrecord"
	txmocks "github.com/muhammadheryan/farm-portal/mocks/repository/tx"
	usermocks "github.com/muhammadheryan/farm-portal/mocks/repository/user"
	"github.com/muhammadheryan/farm-portal/model"
	"github.com/muhammadheryan/farm-portal/repository"
	cerr "github.com/muhammadheryan/farm-portal/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

var (
	admin   = model.Actor{ID: "admin-1", Role: constant.RoleAdmin}
	farmer1 = model.Actor{ID: "f1", Role: constant.RoleFarmer}
	farmer2 = model.Actor{ID: "f2", Role: constant.RoleFarmer}
	vet1    = model.Actor{ID: "v1", Role: constant.RoleVeterinarian}
	vet2    = model.Actor{ID: "v2", Role: constant.RoleVeterinarian}
)

type fields struct {
	config           *config.Config
	txRepo           *txmocks.TxRepository
	userRepo         *usermocks.UserRepository
	animalRepo       *animalmocks.AnimalRepository
	healthRecordRepo *healthrecordmocks.HealthRecordRepository
}

func newFields(t *testing.T) fields {
	return fields{
		config: &config.Config{
			Pagination: config.PaginationConfig{DefaultPerPage: 20, MaxPerPage: 100},
		},
		txRepo:           txmocks.NewTxRepository(t),
		userRepo:         usermocks.NewUserRepository(t),
		animalRepo:       animalmocks.NewAnimalRepository(t),
		healthRecordRepo: healthrecordmocks.NewHealthRecordRepository(t),
	}
}

func newApp(f fields) appanimal.AnimalApp {
	return appanimal.NewAnimalApp(&application.Dependencies{
		Config:           f.config,
		TxRepo:           f.txRepo,
		UserRepo:         f.userRepo,
		AnimalRepo:       f.animalRepo,
		HealthRecordRepo: f.healthRecordRepo,
		Now:              func() time.Time { return fixedNow },
	})
}

func assertErrorType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s (%s), want %s", ce.ErrorCode(), ce.Error(), constant.ErrorTypeCode[want])
	}
}

func strPtr(s string) *string { return &s }

// cow001 is owned by f1 and assigned to v1.
func cow001() *model.AnimalEntity {
	return &model.AnimalEntity{
		ID:             "a1",
		TagID:          "COW001",
		Species:        constant.SpeciesCattle,
		Gender:         constant.GenderFemale,
		HealthStatus:   constant.HealthStatusHealthy,
		FarmerID:       "f1",
		VeterinarianID: strPtr("v1"),
		IsActive:       true,
	}
}

func TestAnimalApp_CreateAnimal(t *testing.T) {
	req := func(farmerID string) *model.CreateAnimalRequest {
		return &model.CreateAnimalRequest{
			TagID:            " COW001 ",
			Species:          "Cattle",
			Gender:           "FEMALE",
			FarmerID:         farmerID,
			ProductionStatus: "lactating",
		}
	}

	tests := []struct {
		name     string
		actor    model.Actor
		req      *model.CreateAnimalRequest
		config   func(c *config.Config)
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: farmer creates for self",
			actor: farmer1,
			req:   req(""),
			mockCall: func(f fields) {
				f.animalRepo.On("TagExists", mock.Anything, "f1", "COW001").Return(false, nil).Once()
				f.animalRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.AnimalEntity) bool {
					return a.FarmerID == "f1" && a.TagID == "COW001" && a.Species == constant.SpeciesCattle &&
						a.HealthStatus == constant.HealthStatusHealthy && *a.ProductionStatus == constant.ProductionStatusLactating
				})).Return(nil).Once()
			},
		},
		{
			name:    "error: farmer creates for another farmer",
			actor:   farmer1,
			req:     req("f2"),
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name:    "error: veterinarian cannot create animals",
			actor:   vet1,
			req:     req("f1"),
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name:    "error: admin must name the farmer",
			actor:   admin,
			req:     req(""),
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:  "error: admin names a missing farmer",
			actor: admin,
			req:   req("f9"),
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: "f9"}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:  "success: admin creates for a pending farmer by default",
			actor: admin,
			req:   req("f1"),
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: "f1"}).
					Return(&model.UserEntity{ID: "f1", Role: constant.RoleFarmer, Status: constant.UserStatusPending, IsActive: true}, nil).Once()
				f.animalRepo.On("TagExists", mock.Anything, "f1", "COW001").Return(false, nil).Once()
				f.animalRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:   "error: admin creates for a pending farmer when active is required",
			actor:  admin,
			req:    req("f1"),
			config: func(c *config.Config) { c.Policy.RequireActiveFarmerForAdminCreate = true },
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: "f1"}).
					Return(&model.UserEntity{ID: "f1", Role: constant.RoleFarmer, Status: constant.UserStatusPending, IsActive: true}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrFarmerInactive,
		},
		{
			name:    "error: unknown species",
			actor:   farmer1,
			req:     &model.CreateAnimalRequest{TagID: "X1", Species: "dragon", Gender: "male"},
			wantErr: true,
			errCode: constant.ErrInvalidEnum,
		},
		{
			name:  "error: tag already used by this farmer",
			actor: farmer1,
			req:   req(""),
			mockCall: func(f fields) {
				f.animalRepo.On("TagExists", mock.Anything, "f1", "COW001").Return(true, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrTagExists,
		},
		{
			name:  "error: racing insert hits the unique key",
			actor: farmer1,
			req:   req(""),
			mockCall: func(f fields) {
				f.animalRepo.On("TagExists", mock.Anything, "f1", "COW001").Return(false, nil).Once()
				f.animalRepo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate).Once()
			},
			wantErr: true,
			errCode: constant.ErrTagExists,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.config != nil {
				tt.config(f.config)
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := newApp(f).CreateAnimal(context.Background(), tt.actor, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateAnimal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrorType(t, err, tt.errCode)
				return
			}
			assert.Equal(t, "COW001", got.TagID)
			assert.True(t, got.IsProductive)
			assert.True(t, got.NeedsAttention)
		})
	}
}

func TestAnimalApp_GetAnimal_Authorization(t *testing.T) {
	tests := []struct {
		name    string
		actor   model.Actor
		wantErr bool
	}{
		{name: "owner", actor: farmer1},
		{name: "assigned vet", actor: vet1},
		{name: "admin", actor: admin},
		{name: "other farmer", actor: farmer2, wantErr: true},
		{name: "unassigned vet", actor: vet2, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.animalRepo.On("Get", mock.Anything, "a1", tt.actor.Role == constant.RoleAdmin).Return(cow001(), nil).Once()

			got, err := newApp(f).GetAnimal(context.Background(), tt.actor, "a1")
			if tt.wantErr {
				assertErrorType(t, err, constant.ErrForbidden)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "a1", got.ID)
		})
	}
}

func TestAnimalApp_SearchAnimals_IsScopedInTheQuery(t *testing.T) {
	tests := []struct {
		name  string
		actor model.Actor
		scope model.AnimalScope
	}{
		{name: "farmer", actor: farmer1, scope: model.AnimalScope{FarmerID: "f1"}},
		{name: "veterinarian", actor: vet1, scope: model.AnimalScope{VeterinarianID: "v1"}},
		{name: "admin", actor: admin, scope: model.AnimalScope{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			f.animalRepo.On("List", mock.Anything, &model.AnimalFilter{
				Scope:           tt.scope,
				Species:         constant.SpeciesCattle,
				HealthStatus:    constant.HealthStatusSick,
				Search:          "cow",
				IncludeInactive: tt.actor.Role == constant.RoleAdmin,
				PageRequest:     model.PageRequest{Page: 1, PerPage: 20},
			}).Return([]model.AnimalEntity{*cow001()}, int64(1), nil).Once()

			got, err := newApp(f).SearchAnimals(context.Background(), tt.actor, &model.AnimalSearchRequest{
				Species:         "CATTLE",
				HealthStatus:    "Sick",
				Search:          "cow",
				IncludeInactive: true,
			})
			require.NoError(t, err)
			require.Len(t, got.Items, 1)
			assert.Equal(t, int64(1), got.Pagination.Total)
			assert.Equal(t, 1, got.Pagination.Pages)
		})
	}

	t.Run("invalid health status", func(t *testing.T) {
		f := newFields(t)
		_, err := newApp(f).SearchAnimals(context.Background(), farmer1, &model.AnimalSearchRequest{HealthStatus: "zombie"})
		assertErrorType(t, err, constant.ErrInvalidEnum)
	})
}

func TestAnimalApp_AssignVeterinarian(t *testing.T) {
	tx := &sqlx.Tx{}
	activeVet := func() *model.UserEntity {
		return &model.UserEntity{ID: "v2", Role: constant.RoleVeterinarian, Status: constant.UserStatusActive,
			EmailVerified: true, PhoneVerified: true, IsActive: true}
	}

	tests := []struct {
		name     string
		actor    model.Actor
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: owner assigns an active vet",
			actor: farmer1,
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.animalRepo.On("GetForUpdateTx", mock.Anything, tx, "a1").Return(cow001(), nil).Once()
				f.userRepo.On("GetForUpdateTx", mock.Anything, tx, &model.UserFilter{ID: "v2", IncludeInactive: true}).
					Return(activeVet(), nil).Once()
				f.animalRepo.On("AssignVeterinarianTx", mock.Anything, tx, "a1", "v2").Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
		},
		{
			name:  "error: animal missing",
			actor: farmer1,
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.animalRepo.On("GetForUpdateTx", mock.Anything, tx, "a1").Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:  "error: vet missing",
			actor: admin,
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.animalRepo.On("GetForUpdateTx", mock.Anything, tx, "a1").Return(cow001(), nil).Once()
				f.userRepo.On("GetForUpdateTx", mock.Anything, tx, mock.Anything).Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:  "error: target user is a farmer",
			actor: admin,
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.animalRepo.On("GetForUpdateTx", mock.Anything, tx, "a1").Return(cow001(), nil).Once()
				f.userRepo.On("GetForUpdateTx", mock.Anything, tx, mock.Anything).
					Return(&model.UserEntity{ID: "v2", Role: constant.RoleFarmer, Status: constant.UserStatusActive, IsActive: true}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:  "error: vet suspended",
			actor: farmer1,
			mockCall: func(f fields) {
				vet := activeVet()
				vet.Status = constant.UserStatusSuspended
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.animalRepo.On("GetForUpdateTx", mock.Anything, tx, "a1").Return(cow001(), nil).Once()
				f.userRepo.On("GetForUpdateTx", mock.Anything, tx, mock.Anything).Return(vet, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrVeterinarianInactive,
		},
		{
			name:  "error: other farmer",
			actor: farmer2,
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.animalRepo.On("GetForUpdateTx", mock.Anything, tx, "a1").Return(cow001(), nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name:  "error: vet cannot assign itself",
			actor: vet2,
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.animalRepo.On("GetForUpdateTx", mock.Anything, tx, "a1").Return(cow001(), nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := newApp(f).AssignVeterinarian(context.Background(), tt.actor, "a1",
				&model.AssignVeterinarianRequest{VeterinarianID: "v2"})
			if (err != nil) != tt.wantErr {
				t.Fatalf("AssignVeterinarian() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrorType(t, err, tt.errCode)
				return
			}
			require.NotNil(t, got.VeterinarianID)
			assert.Equal(t, "v2", *got.VeterinarianID)
		})
	}
}

func TestAnimalApp_CreateHealthRecord(t *testing.T) {
	tx := &sqlx.Tx{}
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("assigned vet records sickness atomically", func(t *testing.T) {
		f := newFields(t)
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.animalRepo.On("GetForUpdateTx", mock.Anything, tx, "a1").Return(cow001(), nil).Once()
		f.healthRecordRepo.On("CreateTx", mock.Anything, tx, mock.MatchedBy(func(r *model.HealthRecordEntity) bool {
			return r.AnimalID == "a1" && r.RecordedByID == "v1" && r.CheckupDate.Equal(today) &&
				*r.OverallCondition == constant.HealthStatusSick
		})).Return(nil).Once()
		f.animalRepo.On("UpdateHealthStatusTx", mock.Anything, tx, "a1", constant.HealthStatusSick, today).Return(nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()

		got, err := newApp(f).CreateHealthRecord(context.Background(), vet1, "a1",
			&model.CreateHealthRecordRequest{OverallCondition: "SICK", Diagnosis: strPtr("mastitis")})
		require.NoError(t, err)
		assert.Equal(t, constant.HealthStatusSick, got.Animal.HealthStatus)
		assert.True(t, got.Animal.NeedsAttention)
		assert.Equal(t, 0, *got.Animal.DaysSinceCheckup)
	})

	t.Run("unassigned vet is forbidden", func(t *testing.T) {
		f := newFields(t)
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.animalRepo.On("GetForUpdateTx", mock.Anything, tx, "a1").Return(cow001(), nil).Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Once()

		_, err := newApp(f).CreateHealthRecord(context.Background(), vet2, "a1",
			&model.CreateHealthRecordRequest{OverallCondition: "sick"})
		assertErrorType(t, err, constant.ErrForbidden)
	})

	t.Run("owner farmer cannot record checkups", func(t *testing.T) {
		f := newFields(t)
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.animalRepo.On("GetForUpdateTx", mock.Anything, tx, "a1").Return(cow001(), nil).Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Once()

		_, err := newApp(f).CreateHealthRecord(context.Background(), farmer1, "a1", &model.CreateHealthRecordRequest{})
		assertErrorType(t, err, constant.ErrForbidden)
	})

	t.Run("status update failure rolls back the record", func(t *testing.T) {
		f := newFields(t)
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.animalRepo.On("GetForUpdateTx", mock.Anything, tx, "a1").Return(cow001(), nil).Once()
		f.healthRecordRepo.On("CreateTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
		f.animalRepo.On("UpdateHealthStatusTx", mock.Anything, tx, "a1", constant.HealthStatusSick, today).
			Return(errors.New("lock wait timeout")).Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Once()

		_, err := newApp(f).CreateHealthRecord(context.Background(), admin, "a1",
			&model.CreateHealthRecordRequest{OverallCondition: "sick"})
		assertErrorType(t, err, constant.ErrInternal)
	})

	t.Run("without condition keeps the status", func(t *testing.T) {
		f := newFields(t)
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.animalRepo.On("GetForUpdateTx", mock.Anything, tx, "a1").Return(cow001(), nil).Once()
		f.healthRecordRepo.On("CreateTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
		f.animalRepo.On("UpdateHealthStatusTx", mock.Anything, tx, "a1", constant.HealthStatusHealthy, today).Return(nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()

		got, err := newApp(f).CreateHealthRecord(context.Background(), vet1, "a1", &model.CreateHealthRecordRequest{})
		require.NoError(t, err)
		assert.Nil(t, got.Record.OverallCondition)
		assert.False(t, got.Animal.NeedsAttention)
	})

	t.Run("future checkup date", func(t *testing.T) {
		f := newFields(t)
		_, err := newApp(f).CreateHealthRecord(context.Background(), vet1, "a1",
			&model.CreateHealthRecordRequest{CheckupDate: &model.Date{Time: today.AddDate(0, 0, 2)}})
		assertErrorType(t, err, constant.ErrInvalidRequest)
	})
}

func TestAnimalApp_DeactivateAnimal(t *testing.T) {
	tx := &sqlx.Tx{}

	t.Run("owner deactivates", func(t *testing.T) {
		f := newFields(t)
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.animalRepo.On("GetForUpdateTx", mock.Anything, tx, "a1").Return(cow001(), nil).Once()
		f.animalRepo.On("SoftDeleteTx", mock.Anything, tx, "a1", fixedNow).Return(nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()

		assert.NoError(t, newApp(f).DeactivateAnimal(context.Background(), farmer1, "a1"))
	})

	t.Run("already inactive is a no-op", func(t *testing.T) {
		f := newFields(t)
		gone := cow001()
		gone.IsActive = false
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.animalRepo.On("GetForUpdateTx", mock.Anything, tx, "a1").Return(gone, nil).Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Once()

		assert.NoError(t, newApp(f).DeactivateAnimal(context.Background(), farmer1, "a1"))
	})

	t.Run("assigned vet cannot delete", func(t *testing.T) {
		f := newFields(t)
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.animalRepo.On("GetForUpdateTx", mock.Anything, tx, "a1").Return(cow001(), nil).Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Once()

		err := newApp(f).DeactivateAnimal(context.Background(), vet1, "a1")
		assertErrorType(t, err, constant.ErrForbidden)
	})
}

func TestAnimalApp_UpdateAnimal(t *testing.T) {
	tx := &sqlx.Tx{}
	f := newFields(t)
	f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	f.animalRepo.On("GetForUpdateTx", mock.Anything, tx, "a1").Return(cow001(), nil).Once()
	f.animalRepo.On("UpdateTx", mock.Anything, tx, mock.MatchedBy(func(a *model.AnimalEntity) bool {
		return *a.Name == "Gauri" && *a.ProductionStatus == constant.ProductionStatusDry && a.FarmerID == "f1"
	})).Return(nil).Once()
	f.txRepo.On("CommitTx", tx).Return(nil).Once()

	got, err := newApp(f).UpdateAnimal(context.Background(), farmer1, "a1",
		&model.UpdateAnimalRequest{Name: strPtr("Gauri"), ProductionStatus: strPtr("Dry")})
	require.NoError(t, err)
	assert.False(t, got.IsProductive)

	_, err = newApp(newFields(t)).UpdateAnimal(context.Background(), farmer1, "a1",
		&model.UpdateAnimalRequest{HealthStatus: strPtr("undead")})
	assertErrorType(t, err, constant.ErrInvalidEnum)
}

func TestAnimalApp_ListHealthRecords(t *testing.T) {
	f := newFields(t)
	f.animalRepo.On("Get", mock.Anything, "a1", false).Return(cow001(), nil).Once()
	f.healthRecordRepo.On("ListByAnimal", mock.Anything, "a1", model.PageRequest{Page: 1, PerPage: 20}).
		Return([]model.HealthRecordEntity{{ID: "h1", AnimalID: "a1"}}, int64(1), nil).Once()

	got, err := newApp(f).ListHealthRecords(context.Background(), vet1, "a1", model.PageRequest{})
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.False(t, got.Pagination.HasNext)
}

func TestAnimalApp_Summary(t *testing.T) {
	f := newFields(t)
	f.animalRepo.On("Summary", mock.Anything, model.AnimalScope{FarmerID: "f1"}, fixedNow).
		Return(&model.AnimalSummary{Total: 3, NeedsAttentionCount: 1}, nil).Once()

	got, err := newApp(f).Summary(context.Background(), farmer1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Total)
}
