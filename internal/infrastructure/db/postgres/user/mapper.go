package user

import (
	domain "homedrive-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		UUID:   model.UUID,
		AuthID: model.AuthID,
		Email:  model.Email,
		Name:   model.Name,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return u
}
