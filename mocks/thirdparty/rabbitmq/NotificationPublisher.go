package rabbitmq

import (
	"context"

	"github.com/muhammadheryan/farm-portal/thirdparty/rabbitmq"
	"github.com/stretchr/testify/mock"
)

// NotificationPublisher is a testify mock of the NotificationPublisher interface.
type NotificationPublisher struct {
	mock.Mock
}

func (_m *NotificationPublisher) PublishNotification(ctx context.Context, msg rabbitmq.NotificationMessage) error {
	ret := _m.Called(ctx, msg)

	r0 := ret.Error(0)
	return r0
}

// NewNotificationPublisher creates a new instance of NotificationPublisher. It also registers a cleanup
// function to assert the mocks expectations.
func NewNotificationPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *NotificationPublisher {
	m := &NotificationPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
