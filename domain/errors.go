package domain

import "errors"

var (
	// ErrEmptyMessage indicates the user tried to send an empty message.
	ErrEmptyMessage = errors.New("message cannot be empty")

	// ErrEmptyName indicates a guestbook message without a display name.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrMissingIdentity indicates a chatroom message without the full
	// name/age/location triple.
	ErrMissingIdentity = errors.New("name, age and location are required")
)
