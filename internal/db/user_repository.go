package db

import (
	"context"
	"fmt"

	"webintake-backend-go/internal/models"
)

const usersCollection = "users"

// fileUserRepository implements UserRepository on top of the flat-file Store.
type fileUserRepository struct {
	store *Store
}

// NewFileUserRepository creates a UserRepository backed by the given Store.
func NewFileUserRepository(store *Store) UserRepository {
	return &fileUserRepository{store: store}
}

func (r *fileUserRepository) load() ([]*models.User, error) {
	var users []*models.User
	if err := r.store.Load(usersCollection, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *fileUserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("%w: user id %d", ErrNotFound, id)
}

func (r *fileUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, fmt.Errorf("%w: username %q", ErrNotFound, username)
}

func (r *fileUserRepository) CountByEmail(ctx context.Context, email string) (int, error) {
	users, err := r.load()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, u := range users {
		if u.Email == email {
			count++
		}
	}
	return count, nil
}

// Create appends the user with the next sequential ID. The whole cycle runs
// under the collection lock so two signups cannot race on the same ID.
func (r *fileUserRepository) Create(ctx context.Context, user *models.User) error {
	return r.store.WithLock(usersCollection, func() error {
		users, err := r.load()
		if err != nil {
			return err
		}
		for _, u := range users {
			if u.Username == user.Username {
				return fmt.Errorf("%w: username %q", ErrDuplicateID, user.Username)
			}
		}
		user.ID = len(users) + 1
		users = append(users, user)
		return r.store.Save(usersCollection, users)
	})
}

func (r *fileUserRepository) List(ctx context.Context) ([]*models.User, error) {
	return r.load()
}
