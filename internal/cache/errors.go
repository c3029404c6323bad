package cache

import "errors"

var (
	// ErrNotFound is returned by a Store when the key does not exist or has expired.
	ErrNotFound = errors.New("cache: key not found")

	// ErrInvalidTTL is returned by a Store asked to write with a non-positive TTL.
	ErrInvalidTTL = errors.New("cache: ttl must be positive")
)
