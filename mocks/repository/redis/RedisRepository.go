package redis

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// RedisRepository is a testify mock of the Repository interface.
type RedisRepository struct {
	mock.Mock
}

func (_m *RedisRepository) SetSession(ctx context.Context, sessionID string, userID string, ttl time.Duration) error {
	ret := _m.Called(ctx, sessionID, userID, ttl)

	r0 := ret.Error(0)
	return r0
}

func (_m *RedisRepository) GetSession(ctx context.Context, sessionID string) (string, error) {
	ret := _m.Called(ctx, sessionID)

	var r0 string
	if v := ret.Get(0); v != nil {
		r0 = v.(string)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *RedisRepository) DeleteSession(ctx context.Context, sessionID string) error {
	ret := _m.Called(ctx, sessionID)

	r0 := ret.Error(0)
	return r0
}

func (_m *RedisRepository) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	ret := _m.Called(ctx, key, window)

	var r0 int64
	if v := ret.Get(0); v != nil {
		r0 = v.(int64)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *RedisRepository) AcquireCooldown(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ret := _m.Called(ctx, key, ttl)

	var r0 bool
	if v := ret.Get(0); v != nil {
		r0 = v.(bool)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// NewRedisRepository creates a new instance of RedisRepository. It also registers a cleanup
// function to assert the mocks expectations.
func NewRedisRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *RedisRepository {
	m := &RedisRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
