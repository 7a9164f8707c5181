package services

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrFileNotFound      = errors.New("file not found")
	ErrRecipientNotFound = errors.New("recipient not found")
	// ErrNotOwner: the caller is authenticated and everything exists, but
	// the file belongs to someone else.
	ErrNotOwner = errors.New("requesting user does not match file owner")
	// ErrNoAccess: read refused, the caller neither owns the file nor holds
	// a share grant for it.
	ErrNoAccess = errors.New("file is not owned by or shared with the requesting user")
)
