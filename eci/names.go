package eci

// names maps an ECI identifier to a Java-style charset name, for
// diagnostics. Several IDs share a name (0 and 2, 1 and 3, 27 and 170,
// and 29 and 32, both listed as "GB18030"); 31 has no name.
var names = map[ID]string{
	0:   "Cp437",
	2:   "Cp437",
	1:   "ISO8859_1",
	3:   "ISO8859_1",
	4:   "ISO8859_2",
	5:   "ISO8859_3",
	6:   "ISO8859_4",
	7:   "ISO8859_5",
	8:   "ISO8859_6",
	9:   "ISO8859_7",
	10:  "ISO8859_8",
	11:  "ISO8859_9",
	12:  "ISO8859_10",
	13:  "ISO8859_11",
	15:  "ISO8859_13",
	16:  "ISO8859_14",
	17:  "ISO8859_15",
	18:  "ISO8859_16",
	20:  "SJIS",
	21:  "Cp1250",
	22:  "Cp1251",
	23:  "Cp1252",
	24:  "Cp1256",
	25:  "UnicodeBigUnmarked",
	26:  "UTF8",
	27:  "ASCII",
	28:  "Big5",
	29:  "GB18030",
	30:  "EUC_KR",
	32:  "GB18030",
	33:  "UnicodeLittleUnmarked",
	34:  "UTF32BE",
	35:  "UTF32LE",
	170: "ASCII",
}

// byName is the inverse of names, with an explicit canonical ID chosen for
// the handful of names that more than one ID maps to (deriving this from
// a map iteration over names would be nondeterministic).
var byName = map[string]ID{
	"Cp437":                 0,
	"ISO8859_1":             3,
	"ISO8859_2":             4,
	"ISO8859_3":             5,
	"ISO8859_4":             6,
	"ISO8859_5":             7,
	"ISO8859_6":             8,
	"ISO8859_7":             9,
	"ISO8859_8":             10,
	"ISO8859_9":             11,
	"ISO8859_10":            12,
	"ISO8859_11":            13,
	"ISO8859_13":            15,
	"ISO8859_14":            16,
	"ISO8859_15":            17,
	"ISO8859_16":            18,
	"SJIS":                  20,
	"Cp1250":                21,
	"Cp1251":                22,
	"Cp1252":                23,
	"Cp1256":                24,
	"UnicodeBigUnmarked":    25,
	"UTF8":                  26,
	"ASCII":                 27,
	"Big5":                  28,
	"GB18030":               29,
	"EUC_KR":                30,
	"UnicodeLittleUnmarked": 33,
	"UTF32BE":               34,
	"UTF32LE":               35,
}

// Name returns the canonical name of id, or "" if id has no assigned name.
func Name(id ID) string {
	return names[id]
}

// ByName looks up an ECI by its canonical name, case-sensitively.
func ByName(name string) (ID, bool) {
	id, ok := byName[name]
	return id, ok
}
