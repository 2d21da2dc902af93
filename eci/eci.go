// Package eci implements the Extended Channel Interpretation text
// transcoder: classifying an ECI identifier, estimating and performing
// the UTF-8 to target-encoding conversion it prescribes, and choosing the
// best ECI for a caller's message. Every function here is stateless and
// safe for concurrent use; the package keeps no mutable state of its own
// beyond the read-only dispatch table built in init.
package eci

import "errors"

// ErrInvalidData is returned on malformed UTF-8 input, a scalar outside
// the target ECI's repertoire, or a request for an ECI this package does
// not know how to dispatch. Every failure this package can hit collapses
// to this one sentinel, so callers never need to distinguish "bad input"
// from "unsupported ECI" to decide what to do next.
var ErrInvalidData = errors.New("eci: invalid data")

// ID identifies a registered ECI in [0, 899].
type ID int

const (
	// ISO8859_1 is ECI 3, the default character set; ECI 0 is an alias
	// for it (see Transcode).
	ISO8859_1 ID = 3
	// UTF8 is ECI 26: UTF-8 itself, never convertible by this package.
	UTF8 ID = 26
	// ASCIIInvariant is ECI 170, the archaic ASCII-Invariant subset.
	ASCIIInvariant ID = 170
)

// IsConvertible reports whether id addresses a character encoding this
// package can convert UTF-8 into — i.e. it is not UTF-8 itself (26), and
// not unassigned (above 35, except for 170 which this package treats
// specially as ASCII-Invariant). It checks only that range: IDs inside
// it with no codec here (such as 13, 14 or 19) still report true, and
// Transcode rejects them with ErrInvalidData.
func IsConvertible(id ID) bool {
	if id == UTF8 {
		return false
	}
	if id > 35 && id != ASCIIInvariant {
		return false
	}
	return true
}
