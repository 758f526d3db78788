package utils

import "github.com/google/uuid"

// NewID returns a fresh UUIDv4 string, used as the primary key for all
// records.
func NewID() string { return uuid.NewString() }
