package eci

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// shiftJIS is ECI 20, Shift JIS, given a name here since DetectID and
// DecodeToUTF8 both need to refer to it and the package otherwise only
// names the three ECIs every caller is expected to branch on directly
// (ISO8859_1, UTF8, ASCIIInvariant).
const shiftJIS ID = 20

// DetectID guesses which ECI identifies the encoding of data that
// arrives with no declared charset — text read from a file or argv
// before a caller has anything to put in a Segment's ECI field. hint, if
// already a registered ECI (nonzero), is trusted and returned unchanged.
//
// The scoring walks data once, tracking whether it remains a
// well-formed UTF8 byte stream, a well-formed Shift JIS byte stream, and
// a well-formed ISO8859_1 byte stream (ISO8859_1 rejects the same C1
// control range Transcode does), plus enough Shift JIS-specific state
// — longest run of katakana bytes, longest run of any double-byte
// character — to break a tie between Shift JIS and ISO8859_1, since a
// byte stream can stay well-formed under both (Shift JIS half-width
// katakana 0xA1-0xDF and lead bytes 0xE0-0xEF are ISO8859_1 bytes too). UTF8 is preferred whenever it's plausible and
// attested by at least one multi-byte sequence or a byte-order mark,
// since single-byte ASCII text is just as validly UTF8 as it is
// anything else in this table.
func DetectID(data []byte, hint ID) ID {
	if hint != 0 {
		return hint
	}

	if len(data) > 2 && data[0] == 0xFE && data[1] == 0xFF {
		return 25 // UTF-16BE, unmarked
	}
	if len(data) > 2 && data[0] == 0xFF && data[1] == 0xFE {
		return 33 // UTF-16LE, unmarked
	}

	length := len(data)
	canBeISO88591 := true
	canBeSJIS := true
	canBeUTF8 := true
	utf8BytesLeft := 0
	utf2ByteChars := 0
	utf3ByteChars := 0
	utf4ByteChars := 0
	sjisBytesLeft := 0
	sjisKatakanaChars := 0
	sjisRunKatakana := 0
	sjisRunDoubleByte := 0
	sjisMaxRunKatakana := 0
	sjisMaxRunDoubleByte := 0
	isoHighOther := 0

	hasUTF8BOM := len(data) > 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF

	for i := 0; i < length && (canBeISO88591 || canBeSJIS || canBeUTF8); i++ {
		b := data[i]

		if canBeUTF8 {
			switch {
			case utf8BytesLeft > 0:
				if b&0x80 == 0 {
					canBeUTF8 = false
				} else {
					utf8BytesLeft--
				}
			case b&0x80 != 0:
				switch {
				case b&0x40 == 0:
					canBeUTF8 = false
				case b&0x20 == 0:
					utf8BytesLeft++
					utf2ByteChars++
				case b&0x10 == 0:
					utf8BytesLeft += 2
					utf3ByteChars++
				case b&0x08 == 0:
					utf8BytesLeft += 3
					utf4ByteChars++
				default:
					canBeUTF8 = false
				}
			}
		}

		if canBeISO88591 {
			switch {
			case b > 0x7F && b < 0xA0:
				canBeISO88591 = false
			case b > 0x9F && (b < 0xC0 || b == 0xD7 || b == 0xF7):
				isoHighOther++
			}
		}

		if canBeSJIS {
			switch {
			case sjisBytesLeft > 0:
				if b < 0x40 || b == 0x7F || b > 0xFC {
					canBeSJIS = false
				} else {
					sjisBytesLeft--
				}
			case b == 0x80 || b == 0xA0 || b > 0xEF:
				canBeSJIS = false
			case b > 0xA0 && b < 0xE0:
				sjisKatakanaChars++
				sjisRunDoubleByte = 0
				sjisRunKatakana++
				if sjisRunKatakana > sjisMaxRunKatakana {
					sjisMaxRunKatakana = sjisRunKatakana
				}
			case b > 0x7F:
				sjisBytesLeft++
				sjisRunKatakana = 0
				sjisRunDoubleByte++
				if sjisRunDoubleByte > sjisMaxRunDoubleByte {
					sjisMaxRunDoubleByte = sjisRunDoubleByte
				}
			default:
				sjisRunKatakana = 0
				sjisRunDoubleByte = 0
			}
		}
	}

	if canBeUTF8 && utf8BytesLeft > 0 {
		canBeUTF8 = false
	}
	if canBeSJIS && sjisBytesLeft > 0 {
		canBeSJIS = false
	}

	switch {
	case canBeUTF8 && (hasUTF8BOM || utf2ByteChars+utf3ByteChars+utf4ByteChars > 0):
		return UTF8
	case canBeSJIS && (sjisMaxRunKatakana >= 3 || sjisMaxRunDoubleByte >= 3):
		return shiftJIS
	case canBeISO88591 && canBeSJIS:
		if (sjisMaxRunKatakana == 2 && sjisKatakanaChars == 2) || isoHighOther*10 >= length {
			return shiftJIS
		}
		return ISO8859_1
	case canBeISO88591:
		return ISO8859_1
	case canBeSJIS:
		return shiftJIS
	default:
		return UTF8
	}
}

// DecodeToUTF8 converts data, already encoded under id, into UTF-8. If id
// is 0 it is resolved via DetectID first. This is the inverse direction
// of Transcode, for ingesting raw text that arrives already encoded
// rather than producing encoded output from UTF-8 — it shares codecs
// with Transcode's own dispatch table so the two directions never drift
// out of sync on which library handles which ECI.
//
// Data identified as UTF8, ASCII (27) or ASCII-Invariant (170) is
// returned unchanged. ISO8859_1 data is re-encoded byte-for-byte rather
// than passed through raw, since an ISO8859_1 byte above 0x7F is not
// itself valid UTF8. An ECI this package has no
// decoder for is returned unchanged rather than erroring: an ingestion
// helper failing outright on unfamiliar input is worse than handing the
// caller back what it gave them.
func DecodeToUTF8(data []byte, id ID) []byte {
	resolved := DetectID(data, id)

	switch resolved {
	case UTF8, 27, ASCIIInvariant:
		return data
	case ISO8859_1, 0:
		return latin1ToUTF8(data)
	}

	enc, ok := codecs[resolved]
	if !ok {
		return data
	}
	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return data
	}
	return decoded
}

// latin1ToUTF8 re-encodes ISO8859_1 bytes as UTF8, where every byte's
// numeric value is the Unicode scalar to emit (ISO/IEC 8859-1 is
// Unicode-compatible code point for code point over its full range).
func latin1ToUTF8(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for _, b := range data {
		out = utf8.AppendRune(out, rune(b))
	}
	return out
}
