package animal

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/farm-portal/constant"
	"github.com/muhammadheryan/farm-portal/model"
	"github.com/stretchr/testify/mock"
)

// AnimalRepository is a testify mock of the AnimalRepository interface.
type AnimalRepository struct {
	mock.Mock
}

func (_m *AnimalRepository) Create(ctx context.Context, animal *model.AnimalEntity) error {
	ret := _m.Called(ctx, animal)

	r0 := ret.Error(0)
	return r0
}

func (_m *AnimalRepository) TagExists(ctx context.Context, farmerID string, tagID string) (bool, error) {
	ret := _m.Called(ctx, farmerID, tagID)

	var r0 bool
	if v := ret.Get(0); v != nil {
		r0 = v.(bool)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AnimalRepository) Get(ctx context.Context, id string, includeInactive bool) (*model.AnimalEntity, error) {
	ret := _m.Called(ctx, id, includeInactive)

	var r0 *model.AnimalEntity
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.AnimalEntity)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AnimalRepository) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.AnimalEntity, error) {
	ret := _m.Called(ctx, tx, id)

	var r0 *model.AnimalEntity
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.AnimalEntity)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AnimalRepository) List(ctx context.Context, filter *model.AnimalFilter) ([]model.AnimalEntity, int64, error) {
	ret := _m.Called(ctx, filter)

	var r0 []model.AnimalEntity
	if v := ret.Get(0); v != nil {
		r0 = v.([]model.AnimalEntity)
	}
	var r1 int64
	if v := ret.Get(1); v != nil {
		r1 = v.(int64)
	}
	r2 := ret.Error(2)
	return r0, r1, r2
}

func (_m *AnimalRepository) UpdateTx(ctx context.Context, tx *sqlx.Tx, animal *model.AnimalEntity) error {
	ret := _m.Called(ctx, tx, animal)

	r0 := ret.Error(0)
	return r0
}

func (_m *AnimalRepository) AssignVeterinarianTx(ctx context.Context, tx *sqlx.Tx, animalID string, veterinarianID string) error {
	ret := _m.Called(ctx, tx, animalID, veterinarianID)

	r0 := ret.Error(0)
	return r0
}

func (_m *AnimalRepository) UpdateHealthStatusTx(ctx context.Context, tx *sqlx.Tx, animalID string, status constant.HealthStatus, checkupDate time.Time) error {
	ret := _m.Called(ctx, tx, animalID, status, checkupDate)

	r0 := ret.Error(0)
	return r0
}

func (_m *AnimalRepository) SoftDeleteTx(ctx context.Context, tx *sqlx.Tx, animalID string, at time.Time) error {
	ret := _m.Called(ctx, tx, animalID, at)

	r0 := ret.Error(0)
	return r0
}

func (_m *AnimalRepository) SoftDeleteByFarmerTx(ctx context.Context, tx *sqlx.Tx, farmerID string, at time.Time) (int64, error) {
	ret := _m.Called(ctx, tx, farmerID, at)

	var r0 int64
	if v := ret.Get(0); v != nil {
		r0 = v.(int64)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AnimalRepository) UnassignVeterinarianTx(ctx context.Context, tx *sqlx.Tx, veterinarianID string) (int64, error) {
	ret := _m.Called(ctx, tx, veterinarianID)

	var r0 int64
	if v := ret.Get(0); v != nil {
		r0 = v.(int64)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AnimalRepository) Summary(ctx context.Context, scope model.AnimalScope, now time.Time) (*model.AnimalSummary, error) {
	ret := _m.Called(ctx, scope, now)

	var r0 *model.AnimalSummary
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.AnimalSummary)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// NewAnimalRepository creates a new instance of AnimalRepository. It also registers a cleanup
// function to assert the mocks expectations.
func NewAnimalRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *AnimalRepository {
	m := &AnimalRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
