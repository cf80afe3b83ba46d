package core

import "jekomo/internal/repository"

const (
	MsgRegistered        = "User created successfully"
	MsgRegisterFailed    = "Failed to create user"
	MsgLoggedIn          = "User logged in successfully"
	MsgInvalidCredential = "Invalid username or password"
	MsgLoggedOut         = "User logged out successfully"
	MsgLoggedOutAll      = "User logged out from all successfully"
	MsgLogoutFailed      = "Logout Failed"
	MsgGrantedAdmin      = "User role switched to admin successfully"
	MsgGrantedUser       = "User role switched to user successfully"
	MsgRoleChangeFailed  = "Failed to change role"
)

// Reason tells the transport why an operation did not succeed.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonDuplicateUsername
	ReasonInvalidCredentials
	ReasonNotModified
)

// Result is the outcome of an account operation. Expected business failures
// are results with Success false, never errors.
type Result[T any] struct {
	Data    *T
	Success bool
	Message string
	Reason  Reason
}

// None is the payload type of operations that never return data.
type None struct{}

func succeed[T any](data *T, message string) Result[T] {
	return Result[T]{
		Data:    data,
		Success: true,
		Message: message,
	}
}

func fail[T any](reason Reason, message string) Result[T] {
	return Result[T]{
		Message: message,
		Reason:  reason,
	}
}

type AuthMessage struct {
	Username string
	Password string
}

type LogoutMessage struct {
	ID    string
	Token string
}

type RoleMessage struct {
	ID string
}

type PublicView struct {
	Username string `json:"username"`
}

type SessionView struct {
	Username string          `json:"username"`
	Role     repository.Role `json:"role"`
	Tokens   []string        `json:"tokens"`
}

type LoginView struct {
	User  SessionView `json:"user"`
	Token string      `json:"token"`
}

func ToPublicView(user repository.User) PublicView {
	return PublicView{
		Username: user.Username,
	}
}

func ToSessionView(user repository.User) SessionView {
	return SessionView{
		Username: user.Username,
		Role:     user.Role,
		Tokens:   user.Tokens(),
	}
}
