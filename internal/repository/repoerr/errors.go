// Package repoerr holds the store sentinel errors in a leaf package so the
// domain services can match on them without importing the repository
// contract, which itself imports the domain packages.
package repoerr

import "errors"

var (
	// ErrNotFound is returned when a requested record doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a uniqueness constraint is violated
	ErrDuplicate = errors.New("duplicate record")
)
