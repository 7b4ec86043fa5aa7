package repository

import "errors"

// ErrNotFound indicates no record matched the lookup.
var ErrNotFound = errors.New("repository: not found")

// ErrDuplicate indicates a unique-key collision on write.
var ErrDuplicate = errors.New("repository: duplicate key")
