package animal

import (
	"context"

	"github.com/muhammadheryan/farm-portal/constant"
	"github.com/muhammadheryan/farm-portal/model"
	"github.com/stretchr/testify/mock"
)

// AnimalApp is a testify mock of the AnimalApp interface.
type AnimalApp struct {
	mock.Mock
}

func (_m *AnimalApp) CreateAnimal(ctx context.Context, actor model.Actor, req *model.CreateAnimalRequest) (*model.AnimalResponse, error) {
	ret := _m.Called(ctx, actor, req)

	var r0 *model.AnimalResponse
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.AnimalResponse)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AnimalApp) GetAnimal(ctx context.Context, actor model.Actor, animalID string) (*model.AnimalResponse, error) {
	ret := _m.Called(ctx, actor, animalID)

	var r0 *model.AnimalResponse
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.AnimalResponse)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AnimalApp) SearchAnimals(ctx context.Context, actor model.Actor, req *model.AnimalSearchRequest) (*model.AnimalListResponse, error) {
	ret := _m.Called(ctx, actor, req)

	var r0 *model.AnimalListResponse
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.AnimalListResponse)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AnimalApp) UpdateAnimal(ctx context.Context, actor model.Actor, animalID string, req *model.UpdateAnimalRequest) (*model.AnimalResponse, error) {
	ret := _m.Called(ctx, actor, animalID, req)

	var r0 *model.AnimalResponse
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.AnimalResponse)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AnimalApp) AssignVeterinarian(ctx context.Context, actor model.Actor, animalID string, req *model.AssignVeterinarianRequest) (*model.AnimalResponse, error) {
	ret := _m.Called(ctx, actor, animalID, req)

	var r0 *model.AnimalResponse
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.AnimalResponse)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AnimalApp) DeactivateAnimal(ctx context.Context, actor model.Actor, animalID string) error {
	ret := _m.Called(ctx, actor, animalID)

	r0 := ret.Error(0)
	return r0
}

func (_m *AnimalApp) CreateHealthRecord(ctx context.Context, actor model.Actor, animalID string, req *model.CreateHealthRecordRequest) (*model.HealthRecordResponse, error) {
	ret := _m.Called(ctx, actor, animalID, req)

	var r0 *model.HealthRecordResponse
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.HealthRecordResponse)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AnimalApp) ListHealthRecords(ctx context.Context, actor model.Actor, animalID string, page model.PageRequest) (*model.HealthRecordListResponse, error) {
	ret := _m.Called(ctx, actor, animalID, page)

	var r0 *model.HealthRecordListResponse
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.HealthRecordListResponse)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AnimalApp) Summary(ctx context.Context, actor model.Actor) (*model.AnimalSummary, error) {
	ret := _m.Called(ctx, actor)

	var r0 *model.AnimalSummary
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.AnimalSummary)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AnimalApp) ListVeterinarianRecords(ctx context.Context, actor model.Actor, vetID string, page model.PageRequest) (*model.HealthRecordListResponse, error) {
	ret := _m.Called(ctx, actor, vetID, page)

	var r0 *model.HealthRecordListResponse
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.HealthRecordListResponse)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AnimalApp) VeterinarianSchedule(ctx context.Context, actor model.Actor, vetID string, req *model.ScheduleRequest) (*model.ScheduleResponse, error) {
	ret := _m.Called(ctx, actor, vetID, req)

	var r0 *model.ScheduleResponse
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.ScheduleResponse)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AnimalApp) Dashboard(ctx context.Context, actor model.Actor, role constant.Role, userID string) (*model.DashboardResponse, error) {
	ret := _m.Called(ctx, actor, role, userID)

	var r0 *model.DashboardResponse
	if v := ret.Get(0); v != nil {
		r0 = v.(*model.DashboardResponse)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// NewAnimalApp creates a new instance of AnimalApp. It also registers a cleanup
// function to assert the mocks expectations.
func NewAnimalApp(t interface {
	mock.TestingT
	Cleanup(func())
}) *AnimalApp {
	m := &AnimalApp{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
