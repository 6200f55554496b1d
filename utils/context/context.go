package context

import (
	"context"

	"github.com/muhammadheryan/farm-portal/constant"
	"github.com/muhammadheryan/farm-portal/model"
)

func WithActor(ctx context.Context, actor model.Actor) context.Context {
	return context.WithValue(ctx, constant.ActorKey, actor)
}

func GetActor(ctx context.Context) (model.Actor, bool) {
	v := ctx.Value(constant.ActorKey)
	if v == nil {
		return model.Actor{}, false
	}
	actor, ok := v.(model.Actor)
	return actor, ok
}

func GetUserID(ctx context.Context) (string, bool) {
	actor, ok := GetActor(ctx)
	if !ok || actor.ID == "" {
		return "", false
	}
	return actor.ID, true
}

func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, constant.SessionIDKey, sessionID)
}

func GetSessionID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(constant.SessionIDKey).(string)
	return v, ok && v != ""
}
