package model

import "errors"

// ErrInvalidInput marks an offer request that fails validation before any
// pricing arithmetic runs. Callers wrap it with field context via fmt.Errorf.
var ErrInvalidInput = errors.New("invalid input")

// ErrQuoteNotFound is returned by repositories when no quote matches the
// given tenant and ID.
var ErrQuoteNotFound = errors.New("pricing quote not found")
