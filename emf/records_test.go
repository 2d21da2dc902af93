package emf

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestRecordSizesMatchMSEMF(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want int
	}{
		{"header", header{}, headerSize},
		{"setMapMode", setMapMode{}, setMapModeSize},
		{"setWorldTransform", setWorldTransform{}, setWorldTransformSize},
		{"createBrushIndirect", createBrushIndirect{}, createBrushIndirectSize},
		{"selectObject", selectObject{}, selectObjectSize},
		{"createPen", createPen{}, createPenSize},
		{"rectangleRecord", rectangleRecord{}, rectangleSize},
		{"polygonRecord", polygonRecord{}, polygonSize},
		{"extCreateFontIndirectW", extCreateFontIndirectW{}, extCreateFontIndirectWSize},
		{"setTextAlign", setTextAlign{}, setTextAlignSize},
		{"setTextColor", setTextColor{}, setTextColorSize},
		{"extTextOutWHeader", extTextOutWHeader{}, extTextOutWHeaderSize},
		{"eofRecord", eofRecord{}, eofSize},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := binary.Size(tc.v); got != tc.want {
				t.Fatalf("binary.Size(%s) = %d, want %d", tc.name, got, tc.want)
			}
		})
	}
}

func TestWriteSelectObjectLayout(t *testing.T) {
	var buf bytes.Buffer
	bw := newBinWriter(&buf)
	bw.writeSelectObject(10)
	if bw.err != nil {
		t.Fatalf("unexpected error: %v", bw.err)
	}
	if bw.n != selectObjectSize || bw.records != 1 {
		t.Fatalf("n=%d records=%d", bw.n, bw.records)
	}
	want := []byte{
		0x25, 0x00, 0x00, 0x00, // type
		0x0c, 0x00, 0x00, 0x00, // size
		0x0a, 0x00, 0x00, 0x00, // ih_object
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % x, want % x", buf.Bytes(), want)
	}
}

func TestWriteRectangleLayout(t *testing.T) {
	var buf bytes.Buffer
	bw := newBinWriter(&buf)
	bw.writeRectangle(typeRectangle, rect32{Left: 1, Top: 2, Right: 3, Bottom: 4})
	want := []byte{
		0x2b, 0x00, 0x00, 0x00, // EMR_RECTANGLE
		0x18, 0x00, 0x00, 0x00, // size 24
		0x01, 0x00, 0x00, 0x00, // left
		0x02, 0x00, 0x00, 0x00, // top
		0x03, 0x00, 0x00, 0x00, // right
		0x04, 0x00, 0x00, 0x00, // bottom
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % x, want % x", buf.Bytes(), want)
	}
}

func TestBinWriterStickyError(t *testing.T) {
	bw := newBinWriter(&failingWriter{})
	bw.writeSelectObject(1)
	if bw.err == nil {
		t.Fatal("expected error from failing writer")
	}
	n := bw.n
	bw.writeSelectObject(2)
	if bw.n != n {
		t.Fatalf("write after error should be a no-op, n changed from %d to %d", n, bw.n)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, bytes.ErrTooLarge }
