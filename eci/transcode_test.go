package eci

import (
	"bytes"
	"testing"
)

func TestTranscodeISO88591(t *testing.T) {
	tests := []struct {
		name    string
		id      ID
		source  string
		want    []byte
		wantErr bool
	}{
		{"ascii A", 3, "A", []byte{0x41}, false},
		{"eacute", 3, "\xC3\xA9", []byte{0xE9}, false},
		{"eci0 aliases eci3", 0, "A", []byte{0x41}, false},
		{"c1 control rejected", 3, "\xC2\x80", nil, true},
		{"c1 boundary 0x9f rejected", 3, "\xC2\x9F", nil, true},
		{"0xa0 accepted", 3, "\xC2\xA0", []byte{0xA0}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Transcode(tc.id, []byte(tc.source))
			if tc.wantErr {
				if err != ErrInvalidData {
					t.Fatalf("got err=%v, want ErrInvalidData", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(got, tc.want) {
				t.Fatalf("got %x, want %x", got, tc.want)
			}
		})
	}
}

func TestTranscodeASCIIInvariant(t *testing.T) {
	if _, err := Transcode(ASCIIInvariant, []byte("A#")); err != ErrInvalidData {
		t.Fatalf("expected ErrInvalidData for '#', got %v", err)
	}
	got, err := Transcode(ASCIIInvariant, []byte("Az_"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, []byte("Az_")) {
		t.Fatalf("got %q", got)
	}
}

func TestTranscodeDoubleByte(t *testing.T) {
	// U+4E2D (中), Big5 = 0xA4A4.
	got, err := Transcode(28, []byte("\xE4\xB8\xAD"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, []byte{0xA4, 0xA4}) {
		t.Fatalf("got %x, want a4a4", got)
	}
}

func TestTranscodeEUCKR(t *testing.T) {
	// U+AC00 (가), KS X 1001 plane 0x3021, EUC-KR = plane bytes + 0x80 = 0xB0 0xA1.
	got, err := Transcode(30, []byte("\xEA\xB0\x80"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, []byte{0xB0, 0xA1}) {
		t.Fatalf("got %x, want b0a1", got)
	}
}

func TestTranscodeInvalidUTF8(t *testing.T) {
	if _, err := Transcode(3, []byte{0xFF}); err != ErrInvalidData {
		t.Fatalf("expected ErrInvalidData, got %v", err)
	}
}

func TestTranscodeUnknownECI(t *testing.T) {
	if _, err := Transcode(14, []byte("A")); err != ErrInvalidData {
		t.Fatalf("reserved ECI 14 should fail, got %v", err)
	}
	if _, err := Transcode(900, []byte("A")); err != ErrInvalidData {
		t.Fatalf("out of range ECI should fail, got %v", err)
	}
}

func TestTranscodeLengthWithinOutputLength(t *testing.T) {
	source := []byte("Hello, world! \\backslash")
	for _, id := range []ID{3, 20, 27} {
		if !IsConvertible(id) {
			continue
		}
		out, err := Transcode(id, source)
		if err != nil {
			continue
		}
		if len(out) > OutputLength(id, source) {
			t.Fatalf("eci %d: output length %d exceeds bound %d", id, len(out), OutputLength(id, source))
		}
	}
}
