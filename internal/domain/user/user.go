package user

import "errors"

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
)

// User mirrors a row of the users table. Profile fields stay nil until the
// owner sets them.
type User struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	Password  string  `json:"-"` // stored and compared as given
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	DOB       *string `json:"dob"`
	Address   *string `json:"address"`
}

type RegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// ProfileUpdate is the validated payload applied by a profile update.
type ProfileUpdate struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	DOB       string `json:"dob"`
	Address   string `json:"address"`
}
