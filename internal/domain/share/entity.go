package share

import (
	"time"

	"github.com/google/uuid"

	"homedrive-api/internal/domain/user"
)

type (
	Share struct {
		UUID          uuid.UUID
		FileUUID      uuid.UUID
		RecipientUUID user.UUID

		CreatedAt time.Time
	}
	Shares []*Share
)
