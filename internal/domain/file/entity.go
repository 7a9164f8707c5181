package file

import (
	"time"

	"github.com/google/uuid"

	"homedrive-api/internal/domain/user"
)

type (
	File struct {
		UUID      uuid.UUID
		OwnerUUID user.UUID
		// Owner is the owner's display name (name or email), filled by
		// listing queries for presentation.
		Owner string

		Name       string
		Extension  string
		SizeBytes  uint64
		Bucket     string
		StorageKey string

		CreatedAt time.Time
	}
	Files []*File
)

// FullName reassembles the stored base name and extension.
func (f *File) FullName() string {
	if f.Extension == "" {
		return f.Name
	}
	return f.Name + "." + f.Extension
}
