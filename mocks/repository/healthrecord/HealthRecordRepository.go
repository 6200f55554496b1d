package healthrecord

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/farm-portal/model"
	"github.com/stretchr/testify/mock"
)

// HealthRecordRepository is a testify mock of the HealthRecordRepository interface.
type HealthRecordRepository struct {
	mock.Mock
}

func (_m *HealthRecordRepository) CreateTx(ctx context.Context, tx *sqlx.Tx, record *model.HealthRecordEntity) error {
	ret := _m.Called(ctx, tx, record)

	r0 := ret.Error(0)
	return r0
}

func (_m *HealthRecordRepository) ListByAnimal(ctx context.Context, animalID string, page model.PageRequest) ([]model.HealthRecordEntity, int64, error) {
	ret := _m.Called(ctx, animalID, page)

	var r0 []model.HealthRecordEntity
	if v := ret.Get(0); v != nil {
		r0 = v.([]model.HealthRecordEntity)
	}
	var r1 int64
	if v := ret.Get(1); v != nil {
		r1 = v.(int64)
	}
	r2 := ret.Error(2)
	return r0, r1, r2
}

func (_m *HealthRecordRepository) ListByRecorder(ctx context.Context, recorderID string, page model.PageRequest) ([]model.HealthRecordEntity, int64, error) {
	ret := _m.Called(ctx, recorderID, page)

	var r0 []model.HealthRecordEntity
	if v := ret.Get(0); v != nil {
		r0 = v.([]model.HealthRecordEntity)
	}
	var r1 int64
	if v := ret.Get(1); v != nil {
		r1 = v.(int64)
	}
	r2 := ret.Error(2)
	return r0, r1, r2
}

func (_m *HealthRecordRepository) ListRecentByFarmer(ctx context.Context, farmerID string, limit int) ([]model.HealthRecordEntity, error) {
	ret := _m.Called(ctx, farmerID, limit)

	var r0 []model.HealthRecordEntity
	if v := ret.Get(0); v != nil {
		r0 = v.([]model.HealthRecordEntity)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *HealthRecordRepository) ListScheduled(ctx context.Context, filter *model.CheckupFilter) ([]model.ScheduledCheckup, error) {
	ret := _m.Called(ctx, filter)

	var r0 []model.ScheduledCheckup
	if v := ret.Get(0); v != nil {
		r0 = v.([]model.ScheduledCheckup)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// NewHealthRecordRepository creates a new instance of HealthRecordRepository. It also registers a cleanup
// function to assert the mocks expectations.
func NewHealthRecordRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *HealthRecordRepository {
	m := &HealthRecordRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
