package middleware

import (
	"context"

	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// actorKey is the key used to store the authenticated caller.
const actorKey = contextKey("actor")

// WithActor returns a copy of ctx carrying the authenticated caller.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromCtx retrieves the authenticated caller from a standard context.
func ActorFromCtx(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	if !ok || actor.UserID == "" {
		return domain.Actor{}, false
	}
	return actor, true
}

// GetActorFromContext retrieves the authenticated caller from the Gin context.
// It returns the actor and a boolean indicating if it was found.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	if val, exists := c.Get(string(actorKey)); exists {
		if actor, ok := val.(domain.Actor); ok && actor.UserID != "" {
			return actor, true
		}
	}
	return ActorFromCtx(c.Request.Context())
}
