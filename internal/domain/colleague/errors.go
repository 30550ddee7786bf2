package colleague

import "errors"

var (
	// ErrColleagueExists indicates the name is already on the list.
	ErrColleagueExists = errors.New("colleague already exists")
	// ErrColleagueNotFound indicates the name is not on the list.
	ErrColleagueNotFound = errors.New("colleague not found")
	// ErrMissingName indicates an empty colleague name.
	ErrMissingName = errors.New("colleague name is required")
)
