package share

import (
	"time"

	"github.com/google/uuid"
)

type (
	Share struct {
		ID            uint64
		UUID          uuid.UUID
		FileUUID      uuid.UUID
		RecipientUUID uuid.UUID

		CreatedAt time.Time
	}
	Shares []*Share
)
