package project

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrMissingNumber indicates a project without a project number.
	ErrMissingNumber = errors.New("project number is required")
	// ErrNumberTaken indicates the project number already exists.
	ErrNumberTaken = errors.New("project number already exists")
	// ErrBadLinkedNumber indicates a linked number that doesn't resolve to
	// four digits.
	ErrBadLinkedNumber = errors.New("linked number must resolve to exactly four digits")
	// ErrUnknownBureau indicates a bureau outside the known set.
	ErrUnknownBureau = errors.New("unknown bureau")
	// ErrInvalidInput indicates invalid input for project operations.
	ErrInvalidInput = errors.New("invalid project input")
)
