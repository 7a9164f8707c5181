package file

import (
	"homedrive-api/internal/domain/file"
)

func ToResponseFile(fDomain file.File) File {
	var f = File{
		UUID:      fDomain.UUID,
		Name:      fDomain.Name,
		Extension: fDomain.Extension,
		SizeBytes: fDomain.SizeBytes,
		Owner:     fDomain.Owner,
		OwnerUUID: fDomain.OwnerUUID,
		CreatedAt: fDomain.CreatedAt,
	}

	return f
}

func ToResponseFiles(fsDomain file.Files) Files {
	fs := make(Files, len(fsDomain))
	for idx, f := range fsDomain {
		fs[idx] = ToResponseFile(*f)
	}

	return fs
}
