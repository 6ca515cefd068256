package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/supabase-community/auth-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/projects-hub/server/internal/config"
	"github.com/projects-hub/server/internal/modules/serializer"
)

// TokenVerifier resolves a bearer token to the authenticated user's ID.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (uuid.UUID, error)
}

type supabaseVerifier struct {
	client auth.Client
}

// NewSupabaseVerifier verifies tokens against the Supabase auth service.
func NewSupabaseVerifier(cfg *config.Config) TokenVerifier {
	return &supabaseVerifier{client: auth.New(cfg.Supabase.ProjectRef, cfg.Supabase.APIKey)}
}

func (v *supabaseVerifier) Verify(_ context.Context, token string) (uuid.UUID, error) {
	user, err := v.client.WithToken(token).GetUser()
	if err != nil {
		return uuid.Nil, err
	}
	return user.ID, nil
}

// tokenCacheKey hashes the raw token so the cache never stores a usable
// credential.
func tokenCacheKey(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return "auth:token:" + hex.EncodeToString(sum[:])
}

// UserAuth authenticates requests with Supabase bearer tokens. Verified
// tokens are cached in redis for the configured TTL so a burst of requests
// does not hammer the auth service. The user_id is set in the gin context
// and as a span attribute for telemetry filtering.
func UserAuth(verifier TokenVerifier, rdb *redis.Client, ttl time.Duration, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ctx, authSpan := otel.Tracer("middleware").Start(ctx, "user_auth",
			trace.WithAttributes(attribute.String("middleware", "user_auth")))

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			authSpan.SetAttributes(attribute.Bool("authenticated", false))
			authSpan.End()
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		cacheKey := tokenCacheKey(raw)
		if cached, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			if userID, err := uuid.Parse(cached); err == nil {
				finishAuth(c, authSpan, userID, true)
				return
			}
		} else if err != redis.Nil {
			log.Warn("auth cache unavailable", zap.Error(err))
		}

		userID, err := verifier.Verify(ctx, raw)
		if err != nil {
			authSpan.SetAttributes(attribute.Bool("authenticated", false))
			authSpan.End()
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}

		if err := rdb.Set(ctx, cacheKey, userID.String(), ttl).Err(); err != nil {
			log.Warn("auth cache write failed", zap.Error(err))
		}

		finishAuth(c, authSpan, userID, false)
	}
}

func finishAuth(c *gin.Context, authSpan trace.Span, userID uuid.UUID, cacheHit bool) {
	rootSpan := trace.SpanFromContext(c.Request.Context())
	if rootSpan.SpanContext().IsValid() {
		rootSpan.SetAttributes(attribute.String("user_id", userID.String()))
	}

	authSpan.SetAttributes(
		attribute.String("user_id", userID.String()),
		attribute.Bool("authenticated", true),
		attribute.Bool("cache_hit", cacheHit),
	)
	authSpan.End()

	c.Set("user_id", userID)
	c.Next()
}
