package repository

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("student already signed up for this activity")
	ErrNotSignedUp      = errors.New("student not signed up for this activity")
	ErrInvalidSeed      = errors.New("invalid catalog seed")
)
