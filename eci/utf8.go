package eci

// The UTF-8 decoder is Bjoern Hoehrmann's branchless DFA
// (https://bjoern.hoehrmann.de/utf8/decoder/dfa/, public domain), the
// same one the original C source pumps a byte at a time. Design note §9
// requires preserving its two distinguished states exactly rather than
// collapsing them to a boolean, because callers must be able to tell
// "still mid-sequence" from "this sequence is malformed" while pumping
// bytes one at a time.
const (
	// Accept is the state after a complete, valid scalar has been decoded.
	Accept = 0
	// Reject is the state once a byte sequence is known to be malformed;
	// it never recovers without resetting state to Accept.
	Reject = 12
)

// utf8DFAClass maps each possible input byte to a character class.
var utf8DFAClass = [256]byte{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	8, 8, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	10, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 4, 3, 3,
	11, 6, 6, 6, 5, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8,
}

// utf8DFATransition maps (state, class) to the next state.
var utf8DFATransition = [108]byte{
	0, 12, 24, 36, 60, 96, 84, 12, 12, 12, 48, 72,
	12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
	12, 0, 12, 12, 12, 12, 12, 0, 12, 0, 12, 12,
	12, 24, 12, 12, 12, 12, 12, 24, 12, 24, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 24, 12, 12, 12, 12,
	12, 24, 12, 12, 12, 12, 12, 12, 12, 24, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 36, 12, 36, 12, 12,
	12, 36, 12, 12, 12, 12, 12, 36, 12, 36, 12, 12,
	12, 36, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
}

// decodeUTF8 advances state by one input byte, accumulating the scalar
// value into cp. Call it repeatedly until state is Accept (a complete
// scalar is now in cp) or Reject (the byte sequence is malformed).
func decodeUTF8(state *uint32, cp *uint32, b byte) {
	class := uint32(utf8DFAClass[b])
	if *state != Accept {
		*cp = (uint32(b) & 0x3f) | (*cp << 6)
	} else {
		*cp = uint32(0xff>>class) & uint32(b)
	}
	*state = uint32(utf8DFATransition[*state+class])
}

// IsValidUTF8 reports whether source is a complete, well-formed UTF-8
// byte string, using the same DFA as Transcode (so "valid" means exactly
// what Transcode will accept).
func IsValidUTF8(source []byte) bool {
	var state, cp uint32
	for _, b := range source {
		decodeUTF8(&state, &cp, b)
		if state == Reject {
			return false
		}
	}
	return state == Accept
}
