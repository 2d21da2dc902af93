package emf

import "errors"

// ErrFileAccess is returned when the output file cannot be opened for
// writing. It wraps the underlying error via errors.Is/As-compatible
// wrapping at the call site (see Plot).
var ErrFileAccess = errors.New("emf: could not open output file")
