package actorctx

import (
	"context"

	"github.com/geocoder89/volcanoes/internal/domain/user"
)

type ctxKey string

const keyIdentity ctxKey = "identity"

// Identity is the per-request authentication state. User may be nil even
// when IsAuthenticated is true: a valid token whose subject no longer
// resolves still counts as authenticated.
type Identity struct {
	IsAuthenticated bool
	User            *user.User
}

func Anonymous() Identity {
	return Identity{}
}

// Owns reports whether the identity is authenticated as the given email.
func (i Identity) Owns(email string) bool {
	return i.IsAuthenticated && i.User != nil && i.User.Email == email
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, keyIdentity, id)
}

// IdentityFrom returns the attached identity; requests that never passed
// the resolver are anonymous.
func IdentityFrom(ctx context.Context) Identity {
	v, ok := ctx.Value(keyIdentity).(Identity)
	if !ok {
		return Anonymous()
	}
	return v
}
