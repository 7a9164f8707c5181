package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		UUID      uuid.UUID `json:"uuid"`
		Name      string    `json:"name"`
		Extension string    `json:"extension"`
		SizeBytes uint64    `json:"size_bytes"`
		Owner     string    `json:"owner"`
		OwnerUUID uuid.UUID `json:"owner_uuid"`
		CreatedAt time.Time `json:"created_at"`
	}
	Files        []File
	ResponseData struct {
		Data Files `json:"data"`
	}
)
