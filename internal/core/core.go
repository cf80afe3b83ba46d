package core

import (
	"context"
	"errors"
	"fmt"
	"jekomo/internal/auth"
	"jekomo/internal/repository"
	tokenIssuer "jekomo/pkg/jwt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Accounts implements registration, login, session revocation and role
// changes on top of the user repository.
type Accounts struct {
	logs     *zap.SugaredLogger
	repo     Repository
	jwt      JWTIssuer
	hasher   PasswordHasher
	tokenTTL time.Duration
}

func NewAccounts(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, hasher PasswordHasher, tokenTTL time.Duration) *Accounts {
	return &Accounts{
		logs:     logger,
		repo:     repo,
		jwt:      jwt,
		hasher:   hasher,
		tokenTTL: tokenTTL,
	}
}

// Register creates a user with the default role. The password is hashed
// before anything is written, so a hashing failure leaves no record behind.
func (a *Accounts) Register(ctx context.Context, msg AuthMessage) (Result[PublicView], error) {
	hash, err := a.hasher.Hash(msg.Password)
	if err != nil {
		return Result[PublicView]{}, fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		ID:           uuid.NewString(),
		Username:     msg.Username,
		PasswordHash: hash,
		Role:         repository.RoleUser,
	}

	err = a.repo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			a.logs.Warnw("attempt to register with an existing username", "username", msg.Username)
			return fail[PublicView](ReasonDuplicateUsername, MsgRegisterFailed), nil
		}
		return Result[PublicView]{}, fmt.Errorf("create user: %w", err)
	}

	a.logs.Infow("user registered", "user_id", user.ID, "username", user.Username)

	view := ToPublicView(user)
	return succeed(&view, MsgRegistered), nil
}

// Login verifies the credentials and opens a new session for the user.
func (a *Accounts) Login(ctx context.Context, msg AuthMessage) (Result[LoginView], error) {
	user, err := a.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return fail[LoginView](ReasonInvalidCredentials, MsgInvalidCredential), nil
		}
		return Result[LoginView]{}, fmt.Errorf("get user by username: %w", err)
	}

	if !a.hasher.Verify(msg.Password, user.PasswordHash) {
		return fail[LoginView](ReasonInvalidCredentials, MsgInvalidCredential), nil
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Expiration: a.tokenTTL,
	}
	token := a.jwt.Generate(tokenInfo)
	signed, err := a.jwt.Sign(token)
	if err != nil {
		return Result[LoginView]{}, fmt.Errorf("signing token: %w", err)
	}

	if err = a.repo.AddToken(ctx, user.ID, signed); err != nil {
		return Result[LoginView]{}, fmt.Errorf("add token: %w", err)
	}

	a.logs.Infow("user logged in",
		"user_id", user.ID,
		"username", user.Username,
		"role", user.Role)

	session := ToSessionView(user)
	session.Tokens = append(session.Tokens, signed)

	return succeed(&LoginView{User: session, Token: signed}, MsgLoggedIn), nil
}

// Logout removes a single session. The caller's identity takes precedence
// over the ids in msg.
func (a *Accounts) Logout(ctx context.Context, caller *auth.Identity, msg LogoutMessage) (Result[None], error) {
	userID, token := msg.ID, msg.Token
	if caller != nil {
		userID = firstNonEmpty(caller.UserID, msg.ID)
		token = firstNonEmpty(caller.Token, msg.Token)
	}

	if userID == "" || token == "" {
		return fail[None](ReasonNotModified, MsgLogoutFailed), nil
	}

	removed, err := a.repo.RemoveToken(ctx, userID, token)
	if err != nil {
		return Result[None]{}, fmt.Errorf("remove token: %w", err)
	}
	if removed == 0 {
		return fail[None](ReasonNotModified, MsgLogoutFailed), nil
	}

	a.logs.Infow("user logged out", "user_id", userID)
	return succeed[None](nil, MsgLoggedOut), nil
}

// LogoutAll removes every session of the target user.
func (a *Accounts) LogoutAll(ctx context.Context, caller *auth.Identity, msg LogoutMessage) (Result[None], error) {
	userID := msg.ID
	if caller != nil {
		userID = firstNonEmpty(caller.UserID, msg.ID)
	}

	if userID == "" {
		return fail[None](ReasonNotModified, MsgLogoutFailed), nil
	}

	removed, err := a.repo.ClearTokens(ctx, userID)
	if err != nil {
		return Result[None]{}, fmt.Errorf("clear tokens: %w", err)
	}
	if removed == 0 {
		return fail[None](ReasonNotModified, MsgLogoutFailed), nil
	}

	a.logs.Infow("user logged out from all sessions", "user_id", userID, "sessions", removed)
	return succeed[None](nil, MsgLoggedOutAll), nil
}

func (a *Accounts) GrantAdmin(ctx context.Context, caller *auth.Identity, msg RoleMessage) (Result[None], error) {
	return a.setRole(ctx, caller, msg, repository.RoleAdmin, MsgGrantedAdmin)
}

func (a *Accounts) RevokeAdmin(ctx context.Context, caller *auth.Identity, msg RoleMessage) (Result[None], error) {
	return a.setRole(ctx, caller, msg, repository.RoleUser, MsgGrantedUser)
}

// setRole targets the user named in msg, or the caller when msg names none.
func (a *Accounts) setRole(ctx context.Context, caller *auth.Identity, msg RoleMessage, role repository.Role, message string) (Result[None], error) {
	userID := msg.ID
	if userID == "" && caller != nil {
		userID = caller.UserID
	}

	if userID == "" {
		return fail[None](ReasonNotModified, MsgRoleChangeFailed), nil
	}

	updated, err := a.repo.SetRole(ctx, userID, role)
	if err != nil {
		return Result[None]{}, fmt.Errorf("set role: %w", err)
	}
	if updated == 0 {
		return fail[None](ReasonNotModified, MsgRoleChangeFailed), nil
	}

	var changedBy string
	if caller != nil {
		changedBy = caller.UserID
	}
	a.logs.Infow("user role changed", "user_id", userID, "role", role, "changed_by", changedBy)
	return succeed[None](nil, message), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
