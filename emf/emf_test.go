package emf

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/zintgo/zint"
)

// parseRecordTypes walks a raw EMR stream and returns each record's type
// code plus the total byte count consumed, without interpreting payloads.
func parseRecordTypes(t *testing.T, data []byte) (types []uint32, total int) {
	t.Helper()
	for len(data) > 0 {
		if len(data) < 8 {
			t.Fatalf("truncated record header, %d bytes left", len(data))
		}
		typ := binary.LittleEndian.Uint32(data[0:4])
		size := binary.LittleEndian.Uint32(data[4:8])
		if int(size) > len(data) {
			t.Fatalf("record type %#x declares size %d, only %d bytes left", typ, size, len(data))
		}
		types = append(types, typ)
		data = data[size:]
		total += int(size)
	}
	return types, total
}

func baseSymbol() *zint.Symbol {
	return &zint.Symbol{
		Symbology: zint.SymbologyCode128,
		FgColour:  zint.Color{},
		BgColour:  zint.Color{R: 0xff, G: 0xff, B: 0xff},
		Vector:    &zint.VectorGraph{Width: 100, Height: 50},
	}
}

func TestPlotRectangleGridHeaderMatchesStream(t *testing.T) {
	sym := baseSymbol()
	for _, pos := range [][2]float64{{0, 0}, {10, 0}, {0, 10}, {10, 10}} {
		sym.Vector.Rectangles = append(sym.Vector.Rectangles, zint.VectorRect{
			X: pos[0], Y: pos[1], Width: 5, Height: 5,
		})
	}

	var buf bytes.Buffer
	if err := plotTo(&buf, sym, 0); err != nil {
		t.Fatalf("plotTo: %v", err)
	}

	data := buf.Bytes()
	var h header
	if err := binary.Read(bytes.NewReader(data[:headerSize]), binary.LittleEndian, &h); err != nil {
		t.Fatalf("read header: %v", err)
	}

	types, total := parseRecordTypes(t, data)
	if total != len(data) {
		t.Fatalf("parsed %d bytes, buffer has %d", total, len(data))
	}
	if h.Bytes != uint32(len(data)) {
		t.Fatalf("header.Bytes = %d, want %d", h.Bytes, len(data))
	}
	if h.Records != uint32(len(types)) {
		t.Fatalf("header.Records = %d, want %d", h.Records, len(types))
	}
	if types[len(types)-1] != typeEOF {
		t.Fatalf("last record type = %#x, want EMR_EOF", types[len(types)-1])
	}

	rectCount := 0
	for _, typ := range types {
		if typ == typeRectangle {
			rectCount++
		}
	}
	// 4 rectangles plus the opaque background rectangle.
	if rectCount != 5 {
		t.Fatalf("rectangle record count = %d, want 5", rectCount)
	}
}

func TestPlotRotation90SwapsBoundsAndSetsTransform(t *testing.T) {
	sym := baseSymbol()
	sym.Vector.Rectangles = []zint.VectorRect{{X: 0, Y: 0, Width: 10, Height: 10}}

	var buf bytes.Buffer
	if err := plotTo(&buf, sym, 90); err != nil {
		t.Fatalf("plotTo: %v", err)
	}

	data := buf.Bytes()
	var h header
	if err := binary.Read(bytes.NewReader(data[:headerSize]), binary.LittleEndian, &h); err != nil {
		t.Fatalf("read header: %v", err)
	}
	// width=100 height=50 -> bounds swap to right=50, bottom=100.
	if h.Bounds.Right != 50 || h.Bounds.Bottom != 100 {
		t.Fatalf("bounds = %+v, want right=50 bottom=100", h.Bounds)
	}

	var wt setWorldTransform
	if err := binary.Read(bytes.NewReader(data[headerSize+setMapModeSize:headerSize+setMapModeSize+setWorldTransformSize]),
		binary.LittleEndian, &wt); err != nil {
		t.Fatalf("read world transform: %v", err)
	}
	if wt.Type != typeSetWorldTransform {
		t.Fatalf("expected EMR_SETWORLDTRANSFORM right after EMR_SETMAPMODE, got type %#x", wt.Type)
	}
	if wt.M11 != 0 || wt.M12 != 1 || wt.M21 != -1 || wt.M22 != 0 {
		t.Fatalf("matrix = %+v, want m11=0 m12=1 m21=-1 m22=0", wt)
	}
	if wt.Dx != 50 || wt.Dy != 0 {
		t.Fatalf("translation = (%v,%v), want (height=50, 0)", wt.Dx, wt.Dy)
	}
}

func TestMaxicodeBullseyeInterleaveOrder(t *testing.T) {
	sym := baseSymbol()
	sym.Symbology = zint.SymbologyMaxicode
	sym.Vector.Circles = []zint.VectorCircle{
		{X: 50, Y: 50, Diameter: 30},
		{X: 50, Y: 50, Diameter: 20},
		{X: 50, Y: 50, Diameter: 10},
	}

	b := newBuilder(sym, 0)
	b.collect()
	b.plan() // populates bytecount/recordcount; not asserted here, see doc comment on the +5 constant

	var buf bytes.Buffer
	bw := newBinWriter(&buf)
	b.write(bw)
	if bw.err != nil {
		t.Fatalf("write: %v", bw.err)
	}

	types, _ := parseRecordTypes(t, buf.Bytes())
	var circleSeq []uint32
	seen := false
	for _, typ := range types {
		if typ == typeEllipse {
			seen = true
		}
		if seen && (typ == typeEllipse || typ == typeSelectObject) {
			circleSeq = append(circleSeq, typ)
		}
		if seen && typ != typeEllipse && typ != typeSelectObject {
			break
		}
	}
	want := []uint32{typeEllipse, typeSelectObject, typeEllipse, typeSelectObject, typeEllipse}
	if len(circleSeq) != len(want) {
		t.Fatalf("circle/select sequence = %#x, want %#x", circleSeq, want)
	}
	for i := range want {
		if circleSeq[i] != want[i] {
			t.Fatalf("circle/select sequence = %#x, want %#x", circleSeq, want)
		}
	}
}
