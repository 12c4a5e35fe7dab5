package snapshot

import "errors"

var (
	ErrNoSnapshot        = errors.New("no snapshot recorded")
	ErrDuplicateSnapshot = errors.New("snapshot already exists")
	ErrFailedSave        = errors.New("failed to save snapshot")
	ErrFailedLatest      = errors.New("failed to get latest snapshot")

	pgUniqueViolation = "23505"
)
