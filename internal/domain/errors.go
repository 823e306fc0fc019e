package domain

import "errors"

// ErrNotFound marks lookups against entities that are absent from the
// graph (unknown resume id, unmatched skill or job title). Callers check
// it with errors.Is and turn it into an empty or not-found response,
// never a crash. Store connectivity failures are distinct and are always
// propagated as-is.
var ErrNotFound = errors.New("not found")
