package repository

import (
	"context"
	"errors"
	"fmt"
	"jekomo/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrUsernameTaken error = errors.New("username already exists")

const sessionsAssociation = "Sessions"

type UserRepository struct {
	db Storage
}

func NewUserRepository(db Storage) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// MigrateAndSeed creates the tables and inserts the given users, skipping any
// whose username is already taken.
func (r *UserRepository) MigrateAndSeed(ctx context.Context, users ...User) error {
	err := r.db.MigrateTable(&User{}, &Session{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	for _, user := range users {
		err = r.CreateUser(ctx, user)
		if errors.Is(err, ErrUsernameTaken) {
			continue
		}
		if err != nil {
			return fmt.Errorf("seed database: %w", err)
		}
	}

	return nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user User) error {
	user.Sessions = nil

	err := r.db.Insert(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	return r.getUserBy(ctx, "username", username)
}

func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (User, error) {
	return r.getUserBy(ctx, "id", userID)
}

func (r *UserRepository) getUserBy(ctx context.Context, column string, value string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, column, value, &user, sessionsAssociation)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by %s: %w", column, err)
	}

	return user, nil
}

func (r *UserRepository) AddToken(ctx context.Context, userID, token string) error {
	err := r.db.Insert(ctx, &Session{
		UserID: userID,
		Token:  token,
	})
	if err != nil {
		return fmt.Errorf("add token: %w", err)
	}

	return nil
}

// RemoveToken deletes every session of the user holding token and reports how
// many were removed.
func (r *UserRepository) RemoveToken(ctx context.Context, userID, token string) (int64, error) {
	removed, err := r.db.DeleteWhere(ctx, &Session{}, "user_id = ? AND token = ?", userID, token)
	if err != nil {
		return 0, fmt.Errorf("remove token: %w", err)
	}

	return removed, nil
}

func (r *UserRepository) ClearTokens(ctx context.Context, userID string) (int64, error) {
	removed, err := r.db.DeleteWhere(ctx, &Session{}, "user_id = ?", userID)
	if err != nil {
		return 0, fmt.Errorf("clear tokens: %w", err)
	}

	return removed, nil
}

// SetRole reports zero when the user does not exist or already holds role.
func (r *UserRepository) SetRole(ctx context.Context, userID string, role Role) (int64, error) {
	updated, err := r.db.UpdateWhere(ctx, &User{}, "role", string(role), "id = ? AND role <> ?", userID, string(role))
	if err != nil {
		return 0, fmt.Errorf("set role: %w", err)
	}

	return updated, nil
}
