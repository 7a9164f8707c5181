package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		ID        uint64
		UUID      uuid.UUID
		OwnerUUID uuid.UUID
		OwnerName string
		OwnerMail string

		Name       string
		Extension  string
		SizeBytes  uint64
		Bucket     string
		StorageKey string

		CreatedAt time.Time
	}
	Files []*File
)
