package share

import (
	"time"

	"github.com/google/uuid"

	"homedrive-api/internal/domain/share"
)

type (
	Request struct {
		FileID         string `json:"file_id"`
		RecipientEmail string `json:"recipient_email"`
	}
	Share struct {
		UUID          uuid.UUID `json:"uuid"`
		FileUUID      uuid.UUID `json:"file_uuid"`
		RecipientUUID uuid.UUID `json:"recipient_uuid"`
		CreatedAt     time.Time `json:"created_at"`
	}
)

func ToResponseShare(sDomain share.Share) Share {
	var s = Share{
		UUID:          sDomain.UUID,
		FileUUID:      sDomain.FileUUID,
		RecipientUUID: sDomain.RecipientUUID,
		CreatedAt:     sDomain.CreatedAt,
	}

	return s
}
