package contact

import "errors"

var (
	// ErrContactNotFound indicates the contact doesn't exist.
	ErrContactNotFound = errors.New("contact not found")
	// ErrMissingName indicates a person without a first or last name.
	ErrMissingName = errors.New("first and last name are required")
	// ErrMissingCompanyName indicates a company without a name.
	ErrMissingCompanyName = errors.New("company name is required")
	// ErrUnknownKind indicates a kind outside {person, company}.
	ErrUnknownKind = errors.New("unknown contact kind")
	// ErrInvalidInput indicates invalid input for contact operations.
	ErrInvalidInput = errors.New("invalid contact input")
)
