package repository

import "errors"

// ErrNotFound is the store-level miss signal shared by every repository.
// Services translate it into the business error taxonomy; any other error is
// an unclassified store fault and propagates as-is.
var ErrNotFound = errors.New("not found")
