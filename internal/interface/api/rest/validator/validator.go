package validator

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"homedrive-api/internal/interface/api/rest/dto/share"
)

const maxNameLen = 64

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

func ValidateShare(r share.Request) map[string]string {
	errs := make(map[string]string)

	fileID := strings.TrimSpace(r.FileID)
	email := strings.ToLower(strings.TrimSpace(r.RecipientEmail))

	if fileID == "" {
		errs["file_id"] = "file_id is required"
	} else if _, err := uuid.Parse(fileID); err != nil {
		errs["file_id"] = "file_id must be a valid UUID"
	}

	if email == "" {
		errs["recipient_email"] = "recipient_email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["recipient_email"] = "invalid email format"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateName(name string) map[string]string {
	errs := make(map[string]string)

	name = strings.TrimSpace(name)
	if name == "" {
		errs["name"] = "name is required"
	} else if utf8.RuneCountInString(name) > maxNameLen {
		errs["name"] = "name length must be at most 64 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
