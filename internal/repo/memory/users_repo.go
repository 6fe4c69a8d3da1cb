package memory

import (
	"context"
	"sync"

	"github.com/geocoder89/volcanoes/internal/domain/user"
)

type UsersRepo struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]user.User
}

func NewUsersRepo() *UsersRepo {
	return &UsersRepo{
		nextID: 1,
		items:  make(map[int64]user.User),
	}
}

func (r *UsersRepo) GetByID(_ context.Context, id int64) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *UsersRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.findByEmail(email)
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *UsersRepo) GetByCredentials(ctx context.Context, email, password string) (user.User, error) {
	u, err := r.GetByEmail(ctx, email)
	if err != nil {
		return user.User{}, err
	}
	if u.Password != password {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *UsersRepo) Exists(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.findByEmail(email)
	return ok, nil
}

func (r *UsersRepo) Create(_ context.Context, email, password string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := user.User{
		ID:       r.nextID,
		Email:    email,
		Password: password,
	}
	r.items[u.ID] = u
	r.nextID++

	return u, nil
}

func (r *UsersRepo) UpdateProfile(_ context.Context, email string, upd user.ProfileUpdate) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.findByEmail(email)
	if !ok {
		return user.User{}, user.ErrNotFound
	}

	u.FirstName = &upd.FirstName
	u.LastName = &upd.LastName
	u.DOB = &upd.DOB
	u.Address = &upd.Address
	r.items[u.ID] = u

	return u, nil
}

// caller holds the lock
func (r *UsersRepo) findByEmail(email string) (user.User, bool) {
	for _, u := range r.items {
		if u.Email == email {
			return u, true
		}
	}
	return user.User{}, false
}
