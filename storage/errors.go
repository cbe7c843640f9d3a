package storage

import "errors"

// ErrFutureVersion is returned when a snapshot is requested for a version
// that has not been assigned yet.
var ErrFutureVersion = errors.New("version not yet written")
