// Package apperrors defines the error taxonomy shared across tally.
package apperrors

import "errors"

// ErrValidation indicates malformed input to an add or update operation.
var ErrValidation = errors.New("validation error")

// ErrNotFound indicates that an operation referenced an id that does not exist.
var ErrNotFound = errors.New("not found")

// ErrTagInUse indicates that deleting a tag was refused because expenses
// still reference it.
var ErrTagInUse = errors.New("tag is in use by expenses")
