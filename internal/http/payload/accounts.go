package payload

import (
	"fmt"
	"jekomo/internal/core"
	"regexp"

	"github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

var jwtPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]*$`)

// bcrypt refuses to hash anything longer.
const maxPasswordBytes = 72

type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a AuthRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required),
		validation.Field(&a.Password,
			validation.Required,
			validation.By(maxBytes(maxPasswordBytes))),
	)
}

func (a AuthRequest) ToMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: a.Username,
		Password: a.Password,
	}
}

// LogoutRequest names a session explicitly. Both fields are optional because
// an authenticated caller is resolved from its bearer token first.
type LogoutRequest struct {
	ID    string `json:"id,omitempty"`
	Token string `json:"token,omitempty"`
}

func (l LogoutRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.ID, is.UUID),
		validation.Field(&l.Token, validation.Match(jwtPattern).Error("must be a valid JWT")),
	)
}

func (l LogoutRequest) ToMessage() core.LogoutMessage {
	return core.LogoutMessage{
		ID:    l.ID,
		Token: l.Token,
	}
}

type ChangeRoleRequest struct {
	ID string `json:"id,omitempty"`
}

func (c ChangeRoleRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ID, is.UUID),
	)
}

func (c ChangeRoleRequest) ToMessage() core.RoleMessage {
	return core.RoleMessage{
		ID: c.ID,
	}
}

// maxBytes limits the encoded length, not the rune count validation.Length uses.
func maxBytes(limit int) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if len(s) > limit {
			return validation.NewError("validation_max_bytes", fmt.Sprintf("the length must be no more than %d bytes", limit))
		}
		return nil
	}
}
