package postgres

import (
	"context"
	"errors"

	"github.com/geocoder89/volcanoes/internal/domain/user"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, email, password, first_name, last_name, dob, address`

type UsersRepo struct {
	pool *pgxpool.Pool
	obs  Observer
}

func NewUsersRepo(pool *pgxpool.Pool, obs Observer) *UsersRepo {
	return &UsersRepo{pool: pool, obs: observerOrNoop(obs)}
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User

	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Password,
		&u.FirstName,
		&u.LastName,
		&u.DOB,
		&u.Address,
	)

	return u, err
}

func mapUserErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return user.ErrNotFound
	}
	return err
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (user.User, error) {
	var u user.User

	err := r.obs.ObserveDB("users.get_by_id", func() error {
		var err error
		u, err = scanUser(r.pool.QueryRow(ctx,
			`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
		return err
	})

	return u, mapUserErr(err)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	var u user.User

	err := r.obs.ObserveDB("users.get_by_email", func() error {
		var err error
		u, err = scanUser(r.pool.QueryRow(ctx,
			`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
		return err
	})

	return u, mapUserErr(err)
}

// GetByCredentials matches the stored password verbatim.
func (r *UsersRepo) GetByCredentials(ctx context.Context, email, password string) (user.User, error) {
	var u user.User

	err := r.obs.ObserveDB("users.get_by_credentials", func() error {
		var err error
		u, err = scanUser(r.pool.QueryRow(ctx,
			`SELECT `+userColumns+` FROM users WHERE email = $1 AND password = $2`, email, password))
		return err
	})

	return u, mapUserErr(err)
}

func (r *UsersRepo) Exists(ctx context.Context, email string) (bool, error) {
	var exists bool

	err := r.obs.ObserveDB("users.exists", func() error {
		return r.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	})

	return exists, err
}

// Create inserts a user with an empty profile. The users table carries no
// unique index on email; a violation is still mapped in case one is added.
func (r *UsersRepo) Create(ctx context.Context, email, password string) (user.User, error) {
	var u user.User

	err := r.obs.ObserveDB("users.create", func() error {
		var err error
		u, err = scanUser(r.pool.QueryRow(ctx,
			`INSERT INTO users (email, password) VALUES ($1, $2)
			RETURNING `+userColumns,
			email, password))
		return err
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrEmailTaken
		}
		return user.User{}, mapUserErr(err)
	}

	return u, nil
}

func (r *UsersRepo) UpdateProfile(ctx context.Context, email string, upd user.ProfileUpdate) (user.User, error) {
	var u user.User

	err := r.obs.ObserveDB("users.update_profile", func() error {
		var err error
		u, err = scanUser(r.pool.QueryRow(ctx,
			`UPDATE users
				SET first_name = $2,
						last_name = $3,
						dob = $4,
						address = $5
			WHERE email = $1
			RETURNING `+userColumns,
			email,
			upd.FirstName,
			upd.LastName,
			upd.DOB,
			upd.Address,
		))
		return err
	})

	return u, mapUserErr(err)
}
