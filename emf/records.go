package emf

import (
	"encoding/binary"
	"io"
)

// Record type identifiers from [MS-EMF] section 2.1.1.
const (
	typeHeader                 uint32 = 0x00000001
	typePolygon                uint32 = 0x00000003
	typeEOF                    uint32 = 0x0000000e
	typeSetMapMode             uint32 = 0x00000011
	typeSetTextAlign           uint32 = 0x00000016
	typeSetTextColor           uint32 = 0x00000018
	typeSetWorldTransform      uint32 = 0x00000023
	typeSelectObject           uint32 = 0x00000025
	typeCreatePen              uint32 = 0x00000026
	typeCreateBrushIndirect    uint32 = 0x00000027
	typeEllipse                uint32 = 0x0000002a
	typeRectangle              uint32 = 0x0000002b
	typeExtCreateFontIndirectW uint32 = 0x00000052
	typeExtTextOutW            uint32 = 0x00000054
)

const enhmetaSignature uint32 = 0x464d4520

type rect32 struct{ Left, Top, Right, Bottom int32 }

type point32 struct{ X, Y int32 }

type size32 struct{ CX, CY int32 }

type colorRef struct{ Red, Green, Blue, Reserved uint8 }

// binWriter writes a sequence of fixed-size little-endian records and
// remembers the first error encountered, so callers can chain writes
// without checking err after every call.
type binWriter struct {
	w       io.Writer
	n       int
	records int
	err     error
}

func newBinWriter(w io.Writer) *binWriter {
	return &binWriter{w: w}
}

func (bw *binWriter) write(v any, size int) {
	if bw.err != nil {
		return
	}
	bw.err = binary.Write(bw.w, binary.LittleEndian, v)
	if bw.err == nil {
		bw.n += size
	}
}

// record writes a fixed-size record and, unlike write, counts it as one
// logical EMR record toward bw.records.
func (bw *binWriter) record(v any, size int) {
	bw.write(v, size)
	if bw.err == nil {
		bw.records++
	}
}

type header struct {
	Type             uint32
	Size             uint32
	Bounds           rect32
	Frame            rect32
	RecordSignature  uint32
	Version          uint32
	Bytes            uint32
	Records          uint32
	Handles          uint16
	Reserved         uint16
	NDescription     uint32
	OffDescription   uint32
	NPalEntries      uint32
	Device           size32
	Millimeters      size32
	CbPixelFormat    uint32
	OffPixelFormat   uint32
	BOpenGL          uint32
	Micrometers      size32
}

const headerSize = 108

func (bw *binWriter) writeHeader(h header) { bw.record(h, headerSize) }

type setMapMode struct {
	Type    uint32
	Size    uint32
	MapMode uint32
}

const setMapModeSize = 12

func (bw *binWriter) writeSetMapMode() {
	bw.record(setMapMode{Type: typeSetMapMode, Size: setMapModeSize, MapMode: 0x01}, setMapModeSize)
}

type setWorldTransform struct {
	Type                   uint32
	Size                   uint32
	M11, M12, M21, M22     float32
	Dx, Dy                 float32
}

const setWorldTransformSize = 32

func (bw *binWriter) writeSetWorldTransform(m11, m12, m21, m22, dx, dy float32) {
	bw.record(setWorldTransform{
		Type: typeSetWorldTransform, Size: setWorldTransformSize,
		M11: m11, M12: m12, M21: m21, M22: m22, Dx: dx, Dy: dy,
	}, setWorldTransformSize)
}

type createBrushIndirect struct {
	Type        uint32
	Size        uint32
	IhBrush     uint32
	BrushStyle  uint32
	Color       colorRef
	BrushHatch  uint32
}

const createBrushIndirectSize = 24

func (bw *binWriter) writeCreateBrushIndirect(ihBrush uint32, c colorRef) {
	bw.record(createBrushIndirect{
		Type: typeCreateBrushIndirect, Size: createBrushIndirectSize,
		IhBrush: ihBrush, BrushStyle: 0x0000, Color: c, BrushHatch: 0x0006,
	}, createBrushIndirectSize)
}

type selectObject struct {
	Type      uint32
	Size      uint32
	IhObject  uint32
}

const selectObjectSize = 12

func (bw *binWriter) writeSelectObject(ihObject uint32) {
	bw.record(selectObject{Type: typeSelectObject, Size: selectObjectSize, IhObject: ihObject}, selectObjectSize)
}

type createPen struct {
	Type            uint32
	Size            uint32
	IhPen           uint32
	PenStyle        uint32
	WidthX, WidthY  int32
	Color           colorRef
}

const createPenSize = 28

func (bw *binWriter) writeCreatePen(ihPen uint32) {
	bw.record(createPen{
		Type: typeCreatePen, Size: createPenSize, IhPen: ihPen,
		PenStyle: 0x00000005, WidthX: 1, WidthY: 0,
	}, createPenSize)
}

type rectangleRecord struct {
	Type uint32
	Size uint32
	Box  rect32
}

const rectangleSize = 24

func (bw *binWriter) writeRectangle(recordType uint32, box rect32) {
	bw.record(rectangleRecord{Type: recordType, Size: rectangleSize, Box: box}, rectangleSize)
}

type polygonRecord struct {
	Type   uint32
	Size   uint32
	Bounds rect32
	Count  uint32
	Points [6]point32
}

const polygonSize = 76

func (bw *binWriter) writePolygon(bounds rect32, points [6]point32) {
	bw.record(polygonRecord{
		Type: typePolygon, Size: polygonSize, Bounds: bounds, Count: 6, Points: points,
	}, polygonSize)
}

type extCreateFontIndirectW struct {
	Type             uint32
	Size             uint32
	IhFonts          uint32
	Height           int32
	Width            int32
	Escapement       int32
	Orientation      int32
	Weight           int32
	Italic           uint8
	Underline        uint8
	StrikeOut        uint8
	CharSet          uint8
	OutPrecision     uint8
	ClipPrecision    uint8
	Quality          uint8
	PitchAndFamily   uint8
	FaceName         [64]byte
}

const extCreateFontIndirectWSize = 104

func (bw *binWriter) writeExtCreateFontIndirectW(ihFonts uint32, height int32, bold bool) {
	weight := int32(400)
	if bold {
		weight = 700
	}
	var faceName [64]byte
	copy(faceName[:], utf16leFromUTF8([]byte("sans-serif")))
	bw.record(extCreateFontIndirectW{
		Type: typeExtCreateFontIndirectW, Size: extCreateFontIndirectWSize,
		IhFonts: ihFonts, Height: height, Weight: weight,
		CharSet: 0x00, OutPrecision: 0x00, ClipPrecision: 0x00,
		PitchAndFamily: 0x02 | (0x02 << 6),
		FaceName:       faceName,
	}, extCreateFontIndirectWSize)
}

type setTextAlign struct {
	Type              uint32
	Size              uint32
	TextAlignmentMode uint32
}

const setTextAlignSize = 12

const (
	taCenterBaseline = 0x0006 | 0x0018
	taLeftBaseline   = 0x0000 | 0x0018
	taRightBaseline  = 0x0002 | 0x0018
)

func (bw *binWriter) writeSetTextAlign(mode uint32) {
	bw.record(setTextAlign{Type: typeSetTextAlign, Size: setTextAlignSize, TextAlignmentMode: mode}, setTextAlignSize)
}

type setTextColor struct {
	Type  uint32
	Size  uint32
	Color colorRef
}

const setTextColorSize = 12

func (bw *binWriter) writeSetTextColor(c colorRef) {
	bw.record(setTextColor{Type: typeSetTextColor, Size: setTextColorSize, Color: c}, setTextColorSize)
}

type extTextOutWHeader struct {
	Type          uint32
	Size          uint32
	Bounds        rect32
	IGraphicsMode uint32
	ExScale       float32
	EyScale       float32
	ReferenceX    int32
	ReferenceY    int32
	Chars         uint32
	OffString     uint32
	Options       uint32
	Rectangle     rect32
	OffDx         uint32
}

const extTextOutWHeaderSize = 76

func (bw *binWriter) writeExtTextOutW(x, y int32, chars uint32, payload []byte) {
	bw.record(extTextOutWHeader{
		Type: typeExtTextOutW, Size: uint32(extTextOutWHeaderSize + len(payload)),
		Bounds:        rect32{0, 0, -1, -1},
		IGraphicsMode: 0x00000002,
		ExScale:       1.0, EyScale: 1.0,
		ReferenceX: x, ReferenceY: y,
		Chars:     chars,
		OffString: extTextOutWHeaderSize,
		Rectangle: rect32{0, 0, -1, -1},
	}, extTextOutWHeaderSize)
	bw.write(payload, len(payload))
}

type eofRecord struct {
	Type           uint32
	Size           uint32
	NPalEntries    uint32
	OffPalEntries  uint32
	SizeLast       uint32
}

const eofSize = 20

func (bw *binWriter) writeEOF() {
	bw.record(eofRecord{Type: typeEOF, Size: eofSize, SizeLast: eofSize}, eofSize)
}
