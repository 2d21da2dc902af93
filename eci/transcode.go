package eci

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Transcode converts UTF-8 source into the byte sequence id's character
// encoding prescribes. It fails with ErrInvalidData on malformed UTF-8,
// on a scalar outside id's repertoire, or on an unrecognized/reserved id.
func Transcode(id ID, source []byte) ([]byte, error) {
	switch {
	case id == 0 || id == ISO8859_1:
		return transcodeISO88591(source)
	case id == ASCIIInvariant:
		return transcodeScalarwise(source, encodeASCIIInvariant)
	case id == 27:
		return transcodeScalarwise(source, encodeASCII)
	}

	enc, ok := codecs[id]
	if !ok {
		return nil, ErrInvalidData
	}
	return transcodeScalarwise(source, encodeWith(enc))
}

// scalarEncoder converts one decoded Unicode scalar to its target-encoded
// bytes, appending them to dst, or reports failure.
type scalarEncoder func(dst []byte, cp rune) ([]byte, bool)

// transcodeScalarwise walks source with the UTF-8 DFA, handing each
// complete scalar to encode in turn.
func transcodeScalarwise(source []byte, encode scalarEncoder) ([]byte, error) {
	out := make([]byte, 0, len(source))
	var state, cp uint32
	i := 0
	for i < len(source) {
		state = Accept
		for {
			decodeUTF8(&state, &cp, source[i])
			i++
			if i >= len(source) || state == Accept || state == Reject {
				break
			}
		}
		if state != Accept {
			return nil, ErrInvalidData
		}
		var ok bool
		out, ok = encode(out, rune(cp))
		if !ok {
			return nil, ErrInvalidData
		}
	}
	return out, nil
}

// transcodeISO88591 implements the ECI 0/3 special case: ISO/IEC 8859-1
// is numerically the identity for 0x00-0xFF, but the C1 control area
// (0x80-0x9F) must be rejected rather than silently passed through — a
// carve-out no general-purpose ISO-8859-1 codec applies, since the
// charmap is otherwise a faithful 1:1 mapping there.
func transcodeISO88591(source []byte) ([]byte, error) {
	return transcodeScalarwise(source, func(dst []byte, cp rune) ([]byte, bool) {
		if cp >= 0x80 && (cp < 0x00a0 || cp >= 0x0100) {
			return dst, false
		}
		return append(dst, byte(cp)), true
	})
}

func encodeASCII(dst []byte, cp rune) ([]byte, bool) {
	if cp < 0x80 {
		return append(dst, byte(cp)), true
	}
	return dst, false
}

// encodeASCIIInvariant implements ECI 170 (ISO/IEC 646:1991 Invariant):
// the archaic ASCII subset with national-variant characters excluded.
func encodeASCIIInvariant(dst []byte, cp rune) ([]byte, bool) {
	if cp == 0x7f || (cp <= 'z' && cp != '#' && cp != '$' && cp != '@' && (cp <= 'Z' || cp == '_' || cp >= 'a')) {
		return append(dst, byte(cp)), true
	}
	return dst, false
}

// encodeWith adapts an x/text encoding.Encoding into a scalarEncoder.
// The candidate output is round-tripped through the same codec's decoder
// before being accepted: a handful of x/text's multi-byte codecs
// silently substitute a placeholder glyph for an unmappable rune instead
// of erroring, and the round trip turns that leniency into the
// ErrInvalidData this package's contract promises for every scalar
// outside the target repertoire.
func encodeWith(enc encoding.Encoding) scalarEncoder {
	return func(dst []byte, cp rune) ([]byte, bool) {
		raw := []byte(string(cp))
		encoded, _, err := transform.Bytes(enc.NewEncoder(), raw)
		if err != nil || len(encoded) == 0 {
			return dst, false
		}
		back, _, err := transform.Bytes(enc.NewDecoder(), encoded)
		if err != nil || !bytes.Equal(back, raw) {
			return dst, false
		}
		return append(dst, encoded...), true
	}
}
