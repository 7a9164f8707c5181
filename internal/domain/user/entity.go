package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID   uint64
	UUID = uuid.UUID
	User struct {
		UUID   UUID
		AuthID string
		Email  string
		Name   string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)

// DisplayName is what other users see as the owner of a shared file:
// the chosen name when set, the email otherwise.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
