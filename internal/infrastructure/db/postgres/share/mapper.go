package share

import (
	domain "homedrive-api/internal/domain/share"
)

func fromDBModel(model *Share) *domain.Share {
	var s = &domain.Share{
		UUID:          model.UUID,
		FileUUID:      model.FileUUID,
		RecipientUUID: model.RecipientUUID,

		CreatedAt: model.CreatedAt,
	}

	return s
}
