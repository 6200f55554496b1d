package rabbitmq_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/muhammadheryan/farm-portal/thirdparty/rabbitmq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch(t *testing.T) {
	body, err := json.Marshal(rabbitmq.NotificationMessage{
		Kind:   rabbitmq.NotificationOTPVerification,
		UserID: "u1",
		Email:  "a@x.com",
		Data:   map[string]string{"otp": "123456"},
	})
	require.NoError(t, err)

	var got rabbitmq.NotificationMessage
	requeue, err := rabbitmq.Dispatch(context.Background(), body, func(_ context.Context, msg rabbitmq.NotificationMessage) error {
		got = msg
		return nil
	})
	require.NoError(t, err)
	assert.False(t, requeue)
	assert.Equal(t, "123456", got.Data["otp"])
	assert.Equal(t, rabbitmq.NotificationOTPVerification, got.Kind)

	requeue, err = rabbitmq.Dispatch(context.Background(), body, func(context.Context, rabbitmq.NotificationMessage) error {
		return errors.New("smtp down")
	})
	assert.Error(t, err)
	assert.True(t, requeue)

	requeue, err = rabbitmq.Dispatch(context.Background(), []byte("{not json"), func(context.Context, rabbitmq.NotificationMessage) error {
		t.Fatal("handler must not run for malformed messages")
		return nil
	})
	assert.Error(t, err)
	assert.False(t, requeue)
}
