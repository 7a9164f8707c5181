package user

import (
	"github.com/google/uuid"
)

type (
	User struct {
		UUID  uuid.UUID `json:"uuid"`
		Email string    `json:"email"`
		Name  string    `json:"name"`
	}
	RenameRequest struct {
		Name string `json:"name"`
	}
)
