package handler

import "errors"

// Validation failures. Storage and translation failures are not wrapped;
// they reach the caller as returned by the AWS SDK.
var (
	ErrNoRecords       = errors.New("invalid event: no records found")
	ErrNotStorageEvent = errors.New("invalid event: not an S3 event")
	ErrInvalidJSON     = errors.New("invalid JSON format")

	// ErrMissingFields names every required key regardless of which ones are absent.
	ErrMissingFields = errors.New("input JSON is missing one or more required keys: 'source_language', 'target_language', 'text'")
)
