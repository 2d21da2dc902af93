package eci

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// codecs is the ECI dispatch table: a tagged variant implemented as a
// genuine map to a real encoding.Encoding, one per registered ECI. ECI 0
// and 3 (ISO/IEC 8859-1) and 170 (ASCII-Invariant) are handled directly
// in Transcode instead of through this table: the AIM ECI registry
// defines both as narrower than their nearest library codec (ISO-8859-1
// here excludes the C1 control range 0x80-0x9F that a general-purpose
// ISO-8859-1 charmap passes through, and ASCII-Invariant excludes the
// national-variant characters the plain ASCII repertoire includes), so
// neither maps onto an existing encoding.Encoding without a wrapper no
// simpler than the direct check already in Transcode. ECI 27 (US-ASCII)
// is also handled directly: it is a single boundary check with no
// encoding table to speak of, so reaching for a codec would be pure
// overhead.
//
// ECI 13 (ISO-8859-11, Thai) has no entry: golang.org/x/text/encoding's
// charmap package does not ship a Thai/TIS-620 codec, and no other
// example repo in the pack provides one either, so ECI 13 is left
// unconvertible (IsConvertible still reports true for it; Transcode
// returns ErrInvalidData) rather than approximated. ECI 29 (GB 2312) is
// served by the GBK codec, since GB 2312's repertoire is a strict subset
// of GBK's and x/text does not ship a bare GB 2312/EUC-CN encoder
// separate from GBK or the HZ transport encoding; a scalar outside GB
// 2312 proper but inside GBK will be accepted where strict zint would
// reject it.
var codecs = map[ID]encoding.Encoding{
	4:  charmap.ISO8859_2,
	5:  charmap.ISO8859_3,
	6:  charmap.ISO8859_4,
	7:  charmap.ISO8859_5,
	8:  charmap.ISO8859_6,
	9:  charmap.ISO8859_7,
	10: charmap.ISO8859_8,
	11: charmap.ISO8859_9,
	12: charmap.ISO8859_10,
	15: charmap.ISO8859_13,
	16: charmap.ISO8859_14,
	17: charmap.ISO8859_15,
	18: charmap.ISO8859_16,
	20: japanese.ShiftJIS,
	21: charmap.Windows1250,
	22: charmap.Windows1251,
	23: charmap.Windows1252,
	24: charmap.Windows1256,
	25: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	28: traditionalchinese.Big5,
	29: simplifiedchinese.GBK,
	30: korean.EUCKR,
	31: simplifiedchinese.GBK,
	32: simplifiedchinese.GB18030,
	33: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	34: utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),
	35: utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
}
