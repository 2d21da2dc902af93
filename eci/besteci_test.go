package eci

import "testing"

func TestBestECI(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ID
	}{
		{"ascii", "A", 3},
		{"latin1", "é", 3},
		{"cjk needs utf8", "中", 26},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := BestECI([]byte(tc.in)); got != tc.want {
				t.Fatalf("BestECI(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestBestECIInvalidUTF8(t *testing.T) {
	if got := BestECI([]byte{0xFF}); got != 0 {
		t.Fatalf("BestECI of invalid UTF-8 = %d, want 0", got)
	}
}

func TestBestECIIdempotentUnderReordering(t *testing.T) {
	// All scalars fit ISO-8859-1; the chosen ECI should not depend on order.
	a := BestECI([]byte("café"))
	b := BestECI([]byte("éfac"))
	if a != b {
		t.Fatalf("BestECI order-dependent: %d vs %d", a, b)
	}
}

func TestBestECISegs(t *testing.T) {
	segs := []Segment{
		{ECI: 0, Text: []byte("A")},
		{ECI: 0, Text: []byte("中")},
	}
	first := BestECISegs(3, segs)
	if first != 26 {
		t.Fatalf("first assigned ECI = %d, want 26", first)
	}
	if segs[0].ECI != 0 {
		t.Fatalf("segment 0 resolves to the default ECI (3) and should stay implicit, got %d", segs[0].ECI)
	}
	if segs[1].ECI != 26 {
		t.Fatalf("segment 1 ECI = %d, want 26", segs[1].ECI)
	}
}

func TestBestECISegsAssignsSwitchBackAfterNonDefault(t *testing.T) {
	segs := []Segment{
		{ECI: 9, Text: []byte("ascii after explicit eci")}, // explicit, non-default, non-zero
		{ECI: 0, Text: []byte("A")},                        // resolves to default (3); previous was non-default -> assign
	}
	BestECISegs(3, segs)
	if segs[1].ECI != 3 {
		t.Fatalf("segment 1 ECI = %d, want 3 (explicit switch back required after non-default segment)", segs[1].ECI)
	}
}
