package memory

import (
	"context"
	"strings"

	"github.com/cmlabs-hris/hris-workflow-go/internal/domain/user"
)

type userRepository struct {
	s *Store
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == newUser.Username {
			return user.User{}, user.ErrUsernameExists
		}
		if strings.EqualFold(u.Email, newUser.Email) {
			return user.User{}, user.ErrEmailExists
		}
	}

	newUser.ID = newID()
	newUser.CreatedAt = r.s.Now()
	newUser.UpdatedAt = newUser.CreatedAt
	r.s.users[newUser.ID] = newUser
	return newUser, nil
}

func (r *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email *string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if username != nil && u.Username == *username {
			return true, nil
		}
		if email != nil && strings.EqualFold(u.Email, *email) {
			return true, nil
		}
	}
	return false, nil
}
