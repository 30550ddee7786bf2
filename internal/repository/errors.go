package repository

import "github.com/delavector/officedb/internal/repository/repoerr"

var (
	// ErrNotFound is returned when a requested record doesn't exist
	ErrNotFound = repoerr.ErrNotFound

	// ErrDuplicate is returned when a uniqueness constraint is violated
	ErrDuplicate = repoerr.ErrDuplicate
)

// TimeLayout is the stamp written on every insert and update. Lexicographic
// order on this layout equals chronological order, which the backends rely
// on when ordering by modification time.
const TimeLayout = "2006-01-02 15:04:05"
