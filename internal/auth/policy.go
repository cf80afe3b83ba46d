package auth

import (
	"context"
	"errors"
	"fmt"
	"jekomo/internal/repository"
	"slices"
	"strings"
)

var ErrUnauthorized error = errors.New("unauthorized")
var ErrForbidden error = errors.New("forbidden")

const bearerScheme = "Bearer"

type Policy struct {
	verifier TokenVerifier
	users    UserLookup
	rules    map[Operation][]repository.Role
}

func NewPolicy(verifier TokenVerifier, users UserLookup) *Policy {
	return &Policy{
		verifier: verifier,
		users:    users,
		rules:    Rules,
	}
}

// Protected reports whether op needs an authenticated caller.
func (p *Policy) Protected(op Operation) bool {
	_, ok := p.rules[op]
	return ok
}

// Authenticate resolves an Authorization header to the calling user. A
// correctly signed token is rejected unless it is still in the user's active
// set, which is what makes logout revoke access.
func (p *Policy) Authenticate(ctx context.Context, header string) (Identity, error) {
	token, err := bearerToken(header)
	if err != nil {
		return Identity{}, err
	}

	claims, err := p.verifier.Validate(token)
	if err != nil {
		return Identity{}, fmt.Errorf("validate token: %w: %w", err, ErrUnauthorized)
	}

	user, err := p.users.GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Identity{}, fmt.Errorf("token subject: %w", ErrUnauthorized)
		}
		return Identity{}, fmt.Errorf("get user by id: %w", err)
	}

	if !user.HasToken(token) {
		return Identity{}, fmt.Errorf("token not in active sessions: %w", ErrUnauthorized)
	}

	return Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		Token:    token,
	}, nil
}

func (p *Policy) Authorize(identity Identity, op Operation) error {
	roles, ok := p.rules[op]
	if !ok {
		return nil
	}

	if !slices.Contains(roles, identity.Role) {
		return fmt.Errorf("role %q may not %s: %w", identity.Role, op, ErrForbidden)
	}

	return nil
}

func bearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) {
		return "", fmt.Errorf("missing bearer token: %w", ErrUnauthorized)
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", fmt.Errorf("empty bearer token: %w", ErrUnauthorized)
	}

	return token, nil
}
