package repository

import (
	"context"
	"errors"
	"sync"
)

// MemoryRepository keeps users in process memory. Each method runs inside a
// single critical section, which gives the same per-call atomicity the
// postgres statements provide.
type MemoryRepository struct {
	mu         sync.Mutex
	users      map[string]*User
	byUsername map[string]string
	nextID     uint
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:      make(map[string]*User),
		byUsername: make(map[string]string),
	}
}

func (r *MemoryRepository) MigrateAndSeed(ctx context.Context, users ...User) error {
	for _, user := range users {
		if err := r.CreateUser(ctx, user); err != nil && !errors.Is(err, ErrUsernameTaken) {
			return err
		}
	}
	return nil
}

func (r *MemoryRepository) CreateUser(_ context.Context, user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUsername[user.Username]; ok {
		return ErrUsernameTaken
	}

	user.Sessions = nil
	r.users[user.ID] = &user
	r.byUsername[user.Username] = user.ID
	return nil
}

func (r *MemoryRepository) GetUserByUsername(_ context.Context, username string) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byUsername[username]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return r.snapshot(id)
}

func (r *MemoryRepository) GetUserByID(_ context.Context, userID string) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.snapshot(userID)
}

func (r *MemoryRepository) AddToken(_ context.Context, userID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return ErrUserNotFound
	}

	r.nextID++
	user.Sessions = append(user.Sessions, Session{
		ID:     r.nextID,
		UserID: userID,
		Token:  token,
	})
	return nil
}

func (r *MemoryRepository) RemoveToken(_ context.Context, userID, token string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return 0, nil
	}

	kept := user.Sessions[:0]
	var removed int64
	for _, s := range user.Sessions {
		if s.Token == token {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	user.Sessions = kept
	return removed, nil
}

func (r *MemoryRepository) ClearTokens(_ context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return 0, nil
	}

	removed := int64(len(user.Sessions))
	user.Sessions = nil
	return removed, nil
}

func (r *MemoryRepository) SetRole(_ context.Context, userID string, role Role) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok || user.Role == role {
		return 0, nil
	}

	user.Role = role
	return 1, nil
}

// snapshot copies the stored user so callers never share the session slice.
func (r *MemoryRepository) snapshot(userID string) (User, error) {
	user, ok := r.users[userID]
	if !ok {
		return User{}, ErrUserNotFound
	}

	cp := *user
	cp.Sessions = make([]Session, len(user.Sessions))
	copy(cp.Sessions, user.Sessions)
	return cp, nil
}
