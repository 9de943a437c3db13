package stores

import "errors"

// ErrNotFound is the only store-level error kind callers branch on; every
// other failure surfaces opaquely.
var ErrNotFound = errors.New("record not found")
