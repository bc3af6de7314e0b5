package model

import "errors"

var (
	// ErrLinkNotFound is returned when no link matches the given title or ID.
	ErrLinkNotFound = errors.New("link not found")
	// ErrTitleConflict is returned when a rename targets a title held by another link.
	ErrTitleConflict = errors.New("title already used by another link")
	// ErrEmptyField is returned when a title or URL is empty.
	ErrEmptyField = errors.New("title and url must not be empty")
	// ErrInvalidOnionURL is returned in strict mode for URLs that are not v3 onion addresses.
	ErrInvalidOnionURL = errors.New("invalid .onion URL format")
)
