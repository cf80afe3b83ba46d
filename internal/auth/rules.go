package auth

import "jekomo/internal/repository"

type Operation string

const (
	OpRegister    Operation = "register"
	OpLogin       Operation = "login"
	OpLogout      Operation = "logout"
	OpLogoutAll   Operation = "logoutAll"
	OpGrantAdmin  Operation = "grantAdmin"
	OpRevokeAdmin Operation = "grantUser"
)

// Rules lists the roles allowed to invoke each protected operation.
// Operations missing from the table are public.
var Rules = map[Operation][]repository.Role{
	OpLogout:      {repository.RoleUser, repository.RoleAdmin},
	OpLogoutAll:   {repository.RoleAdmin},
	OpGrantAdmin:  {repository.RoleAdmin},
	OpRevokeAdmin: {repository.RoleAdmin},
}
