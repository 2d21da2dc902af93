package eci

// candidateECIs is the search order BestECI walks: single-byte ECIs from
// 3 up to 24, skipping the two reserved gaps (14, 19) and ECI 20
// (Shift JIS, a double-byte encoding excluded from the single-byte
// search by design — see design note §9's open question about whether
// "lowest id" or "lowest safest" was intended; this keeps the original's
// literal "lowest id" behavior).
var candidateECIs = []ID{3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 15, 16, 17, 18, 21, 22, 23, 24}

// BestECI finds the lowest ECI under which every scalar in source
// converts, trying each of candidateECIs in order. It returns UTF8 (26)
// if none of them work but source is valid UTF-8, or 0 if source is not
// even valid UTF-8.
func BestECI(source []byte) ID {
	for _, id := range candidateECIs {
		if _, err := Transcode(id, source); err == nil {
			return id
		}
	}
	if !IsValidUTF8(source) {
		return 0
	}
	return UTF8
}

// BestECISegs resolves BestECI for every segment whose ECI is 0,
// mutating segs in place, and returns the first ECI it assigned (0 if it
// assigned none, or if any segment's text wasn't convertible to any
// candidate or valid UTF-8).
//
// A segment that resolves to defaultECI is only actually assigned that
// ECI if the previous segment carried a different, non-zero, non-default
// ECI — otherwise leaving it at 0 is equivalent (the renderer already
// treats "no explicit ECI" as defaultECI) and assigning it would only
// cost a gratuitous ECI-switch marker in the encoded payload.
func BestECISegs(defaultECI ID, segs []Segment) ID {
	var firstSet ID
	for i := range segs {
		if segs[i].ECI != 0 {
			continue
		}
		best := BestECI(segs[i].Text)
		if best == 0 {
			return 0
		}
		if best == defaultECI {
			if i != 0 && segs[i-1].ECI != 0 && segs[i-1].ECI != defaultECI {
				segs[i].ECI = best
				if firstSet == 0 {
					firstSet = best
				}
			}
			continue
		}
		segs[i].ECI = best
		if firstSet == 0 {
			firstSet = best
		}
	}
	return firstSet
}
