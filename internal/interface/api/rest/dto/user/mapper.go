package user

import (
	"homedrive-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	var u = User{
		UUID:  uDomain.UUID,
		Email: uDomain.Email,
		Name:  uDomain.Name,
	}

	return u
}
