package domain

import "errors"

// ErrStorageUnavailable marks any persistence fault that is not a plain
// not-found. Read paths select the fallback catalog by matching it with
// errors.Is; write paths surface it as a 500.
var ErrStorageUnavailable = errors.New("storage unavailable")

// ErrDuplicateKey maps unique-constraint violations (email, sku, the
// user/product pair on cart items).
var ErrDuplicateKey = errors.New("duplicate key")
