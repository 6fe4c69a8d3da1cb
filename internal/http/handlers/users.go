package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/geocoder89/volcanoes/internal/domain/user"
	"github.com/geocoder89/volcanoes/internal/http/middlewares"
	"github.com/geocoder89/volcanoes/internal/profile"
	"github.com/geocoder89/volcanoes/internal/visibility"
	"github.com/gin-gonic/gin"
)

const (
	msgCredentialsRequired = "Request body incomplete, both email and password are required."
	msgUserExists          = "User already exists."
	msgUserCreated         = "User created."
	msgBadCredentials      = "Incorrect email or password."
	msgUserNotFound        = "User not found."
)

type UserReader interface {
	GetByEmail(ctx context.Context, email string) (user.User, error)
	GetByCredentials(ctx context.Context, email, password string) (user.User, error)
	Exists(ctx context.Context, email string) (bool, error)
}

type UserWriter interface {
	Create(ctx context.Context, email, password string) (user.User, error)
	UpdateProfile(ctx context.Context, email string, upd user.ProfileUpdate) (user.User, error)
}

type UserStore interface {
	UserReader
	UserWriter
}

type TokenIssuer interface {
	Issue(id int64, email string) (string, error)
	Lifetime() time.Duration
}

type UsersHandler struct {
	users UserStore
	jwt   TokenIssuer
	now   func() time.Time
}

func NewUsersHandler(users UserStore, jwt TokenIssuer) *UsersHandler {
	return &UsersHandler{
		users: users,
		jwt:   jwt,
		now:   time.Now,
	}
}

// Register checks for an existing email before inserting. The two steps are
// not atomic, so concurrent registrations of one email can both succeed.
func (h *UsersHandler) Register(ctx *gin.Context) {
	var req user.RegisterRequest

	if !Bind(ctx, &req, msgCredentialsRequired) {
		return
	}

	cctx := ctx.Request.Context()

	exists, err := h.users.Exists(cctx, req.Email)

	if err != nil {
		RespondInternal(ctx, err)
		return
	}

	if exists {
		RespondConflict(ctx, msgUserExists)
		return
	}

	_, err = h.users.Create(cctx, req.Email, req.Password)

	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			RespondConflict(ctx, msgUserExists)
			return
		}

		RespondInternal(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": msgUserCreated,
	})
}

func (h *UsersHandler) Login(ctx *gin.Context) {
	var req user.LoginRequest

	if !Bind(ctx, &req, msgCredentialsRequired) {
		return
	}

	foundUser, err := h.users.GetByCredentials(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondUnauthorized(ctx, msgBadCredentials)
			return
		}
		RespondInternal(ctx, err)
		return
	}

	token, err := h.jwt.Issue(foundUser.ID, foundUser.Email)

	if err != nil {
		RespondInternal(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"token":      token,
		"token_type": "Bearer",
		"expires_in": int64(h.jwt.Lifetime().Seconds()),
	})
}

// Profile shows dob and address only to the profile's owner.
func (h *UsersHandler) Profile(ctx *gin.Context) {
	email := ctx.Param("email")
	fields := visibility.ProfileFields(middlewares.IdentityFromContext(ctx), email)

	u, err := h.users.GetByEmail(ctx.Request.Context(), email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondNotFound(ctx, msgUserNotFound)
			return
		}
		RespondInternal(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, visibility.Profile(u, fields))
}

func (h *UsersHandler) UpdateProfile(ctx *gin.Context) {
	email := ctx.Param("email")
	id := middlewares.IdentityFromContext(ctx)

	// an unreadable body is treated as empty so auth failures still win
	var body map[string]any
	if err := ctx.ShouldBindJSON(&body); err != nil {
		body = nil
	}

	upd, err := profile.ValidateUpdate(id, email, body, h.now())
	if err != nil {
		RespondAppError(ctx, err)
		return
	}

	u, err := h.users.UpdateProfile(ctx.Request.Context(), email, upd)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondNotFound(ctx, msgUserNotFound)
			return
		}
		RespondInternal(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, visibility.Profile(u, visibility.ProfileFields(id, email)))
}
