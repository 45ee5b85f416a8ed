package repository

import "errors"

// ErrNotFound is returned by Update methods when the target record is absent.
// Find methods return (nil, nil) instead, matching the lookup-then-decide
// style of the services.
var ErrNotFound = errors.New("record not found")
