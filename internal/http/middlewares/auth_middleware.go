package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/geocoder89/volcanoes/internal/actorctx"
	"github.com/geocoder89/volcanoes/internal/auth"
	"github.com/geocoder89/volcanoes/internal/domain/user"
	"github.com/gin-gonic/gin"
)

const (
	MsgMalformedHeader = "Authorization header is malformed"
	MsgInvalidToken    = "Invalid JWT token"
	MsgExpiredToken    = "JWT token has expired"
)

// Keep these small interfaces so tests can fake them easily.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type UserFinder interface {
	GetByID(ctx context.Context, id int64) (user.User, error)
}

type AuthMiddleware struct {
	jwt   TokenVerifier
	users UserFinder
}

func NewAuthMiddleware(jwt TokenVerifier, users UserFinder) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwt, users: users}
}

// Resolve derives the request's identity from an optional bearer token.
// A missing header, or a Bearer scheme with no token, leaves the request
// anonymous. Any other scheme, or a token that fails verification, ends the
// request with 401.
func (m *AuthMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			setIdentity(c, actorctx.Anonymous())
			c.Next()
			return
		}

		// the token is the second space-separated part, anything after it is ignored
		parts := strings.Split(authHeader, " ")
		if parts[0] != "Bearer" {
			abortUnauthorized(c, MsgMalformedHeader)
			return
		}

		raw := ""
		if len(parts) > 1 {
			raw = parts[1]
		}
		if raw == "" {
			setIdentity(c, actorctx.Anonymous())
			c.Next()
			return
		}

		claims, err := m.jwt.Verify(raw)
		if err != nil {
			if errors.Is(err, auth.ErrMalformedToken) {
				abortUnauthorized(c, MsgInvalidToken)
				return
			}
			abortUnauthorized(c, MsgExpiredToken)
			return
		}

		// a subject that no longer resolves still counts as authenticated
		id := actorctx.Identity{IsAuthenticated: true}

		u, err := m.users.GetByID(c.Request.Context(), claims.ID)
		switch {
		case err == nil:
			id.User = &u
		case errors.Is(err, user.ErrNotFound):
		default:
			AbortInternal(c, err)
			return
		}

		setIdentity(c, id)
		c.Next()
	}
}

func setIdentity(c *gin.Context, id actorctx.Identity) {
	c.Set(CtxIdentity, id)
	c.Request = c.Request.WithContext(actorctx.WithIdentity(c.Request.Context(), id))
}

// IdentityFromContext spares handlers from knowing the key. Requests that
// never passed Resolve are anonymous.
func IdentityFromContext(c *gin.Context) actorctx.Identity {
	v, ok := c.Get(CtxIdentity)
	if !ok {
		return actorctx.IdentityFrom(c.Request.Context())
	}
	id, ok := v.(actorctx.Identity)
	if !ok {
		return actorctx.Anonymous()
	}
	return id
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":   true,
		"message": message,
	})
}
