package interfaces

import "errors"

// ErrStoreUnavailable marks failures caused by the document store handle never
// having initialized. Handlers translate it to 503 so callers can tell a
// service outage apart from a data error.
var ErrStoreUnavailable = errors.New("document store unavailable")
