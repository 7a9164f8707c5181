package file

import (
	domain "homedrive-api/internal/domain/file"
)

func fromDBModel(model *File) *domain.File {
	owner := model.OwnerName
	if owner == "" {
		owner = model.OwnerMail
	}

	var f = &domain.File{
		UUID:      model.UUID,
		OwnerUUID: model.OwnerUUID,
		Owner:     owner,

		Name:       model.Name,
		Extension:  model.Extension,
		SizeBytes:  model.SizeBytes,
		Bucket:     model.Bucket,
		StorageKey: model.StorageKey,

		CreatedAt: model.CreatedAt,
	}

	return f
}

// FromDBModels is shared with the share repository, whose listing query
// returns file rows.
func FromDBModels(models *Files) domain.Files {
	fs := make(domain.Files, len(*models))
	for idx, f := range *models {
		fs[idx] = fromDBModel(f)
	}

	return fs
}
