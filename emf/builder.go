package emf

import (
	"math"

	"github.com/zintgo/zint"
)

// ultraPalette is zint's fixed 8-entry palette for SymbologyUltra's
// colour-indexed rectangles (colour 1..8). Reconstructed from the
// upstream get_colour() table; not present in the excerpted reference
// source this package was otherwise built against.
var ultraPalette = [9]colorRef{
	1: {0, 255, 255, 0},   // Cyan
	2: {0, 0, 255, 0},     // Blue
	3: {255, 0, 255, 0},   // Magenta
	4: {255, 0, 0, 0},     // Red
	5: {255, 255, 0, 0},   // Yellow
	6: {0, 255, 0, 0},     // Green
	7: {0, 0, 0, 0},       // Black
	8: {255, 255, 255, 0}, // White
}

func colorRefFrom(c zint.Color) colorRef {
	return colorRef{Red: c.R, Green: c.G, Blue: c.B}
}

// plannedText mirrors one queued EMR_EXTTEXTOUTW record: the bytes have
// already been computed so the planning pass can size the header before
// any record is written.
type plannedText struct {
	x, y     int32
	fsize    int
	halign   zint.HAlign
	chars    uint32
	payload  []byte
}

// builder assembles one EMF document from a resolved Symbol, following
// zint's own two-pass shape: a planning pass that tallies bytecount and
// recordcount for the header, then a writing pass that emits the records
// in the exact order counted.
type builder struct {
	sym         *zint.Symbol
	rotateAngle int

	width, height int32
	drawBg        bool
	isUltra       bool
	isMaxicode    bool

	rectByColour [9][]rect32 // index 1..8, Ultra only
	coloursUsed  int

	rectangles []rect32
	circles    []rect32 // ellipse bounding boxes
	hexPoints  [][6]point32
	hexBounds  []rect32

	fsize, fsize2   int
	halign1, halign2 bool
	texts           []plannedText

	bytecount   uint32
	recordcount uint32
}

func newBuilder(sym *zint.Symbol, rotateAngle int) *builder {
	b := &builder{sym: sym, rotateAngle: rotateAngle}
	b.isUltra = sym.Symbology == zint.SymbologyUltra
	b.isMaxicode = sym.Symbology == zint.SymbologyMaxicode
	b.drawBg = !sym.BgColour.Transparent()
	b.width = int32(math.Ceil(sym.Vector.Width))
	b.height = int32(math.Ceil(sym.Vector.Height))
	return b
}

func (b *builder) collect() {
	v := b.sym.Vector

	for _, r := range v.Rectangles {
		box := rect32{
			Left: int32(r.X), Top: int32(r.Y),
			Right: int32(r.X + r.Width), Bottom: int32(r.Y + r.Height),
		}
		b.rectangles = append(b.rectangles, box)
		if b.isUltra {
			if len(b.rectByColour[r.Colour]) == 0 {
				b.coloursUsed++
			}
			b.rectByColour[r.Colour] = append(b.rectByColour[r.Colour], box)
		}
	}

	for _, c := range v.Circles {
		radius := c.Diameter / 2.0
		b.circles = append(b.circles, rect32{
			Left: int32(c.X - radius), Top: int32(c.Y - radius),
			Right: int32(c.X + radius), Bottom: int32(c.Y + radius),
		})
	}

	for _, h := range v.Hexagons {
		pts, bounds := hexagonVertices(h.X, h.Y, h.Diameter, h.Rotation)
		b.hexPoints = append(b.hexPoints, pts)
		b.hexBounds = append(b.hexBounds, bounds)
	}

	// String metadata: up to two font sizes and three haligns, mirroring
	// count_strings' running accumulation over the insertion-order list.
	for _, s := range v.Strings {
		sz := int(s.FSize)
		if b.fsize == 0 {
			b.fsize = sz
		} else if sz != b.fsize && b.fsize2 == 0 {
			b.fsize2 = sz
		}
		switch s.HAlign {
		case zint.AlignLeft:
			b.halign1 = true
		case zint.AlignRight:
			b.halign2 = true
		}
	}
}

func (b *builder) bold() bool {
	opts := b.sym.OutputOptions
	return opts.Has(zint.BoldText) && (!b.sym.Symbology.Extendable() || opts.Has(zint.SmallText))
}

// plan tallies bytecount/recordcount for the header, following the exact
// record order and grouping the writing pass will use.
func (b *builder) plan() {
	b.bytecount = headerSize
	b.recordcount = 1

	b.bytecount += setMapModeSize
	b.recordcount++

	if b.rotateAngle != 0 {
		b.bytecount += setWorldTransformSize
		b.recordcount++
	}

	b.bytecount += createBrushIndirectSize // background brush
	b.recordcount++

	if b.isUltra {
		b.bytecount += uint32(b.coloursUsed) * createBrushIndirectSize
		b.recordcount += uint32(b.coloursUsed)
	} else {
		b.bytecount += createBrushIndirectSize // foreground brush
		b.recordcount++
	}

	b.bytecount += selectObjectSize // bg brush select
	b.recordcount++

	if b.isUltra {
		b.bytecount += uint32(b.coloursUsed) * selectObjectSize
		b.recordcount += uint32(b.coloursUsed)
	} else {
		b.bytecount += selectObjectSize // fg brush select
		b.recordcount++
	}

	b.bytecount += createPenSize
	b.recordcount++
	b.bytecount += selectObjectSize // pen select
	b.recordcount++

	if b.drawBg {
		b.bytecount += rectangleSize
		b.recordcount++
	}

	b.bytecount += uint32(len(b.rectangles)) * rectangleSize
	b.recordcount += uint32(len(b.rectangles))

	b.bytecount += uint32(len(b.circles)) * rectangleSize // ellipse record is same size as rectangle
	b.recordcount += uint32(len(b.circles))

	b.bytecount += uint32(len(b.hexPoints)) * polygonSize
	b.recordcount += uint32(len(b.hexPoints))

	if len(b.sym.Vector.Strings) > 0 {
		b.bytecount += extCreateFontIndirectWSize
		b.recordcount++
		b.bytecount += selectObjectSize // font select
		b.recordcount++
		if b.fsize2 != 0 {
			b.bytecount += extCreateFontIndirectWSize
			b.recordcount++
			b.bytecount += selectObjectSize // font2 select
			b.recordcount++
		}
		b.bytecount += setTextColorSize
		b.recordcount++
	}

	b.planText()

	b.bytecount += eofSize
	b.recordcount++

	if b.isMaxicode {
		// Hardcoded rather than derived from len(b.circles)-1: a real
		// bullseye always has 6 concentric rings, so 5 interleaved
		// SELECTOBJECTs. Kept as the fixed constant rather than computed,
		// matching the original bookkeeping; a bullseye built with a
		// different ring count will fail plotTo's byte/record postcondition.
		b.bytecount += 5 * selectObjectSize
		b.recordcount += 5
	}
}

// planText walks the strings grouped by font size, exactly as
// count_strings/the text-counting loop in emf_plot does: the halign
// tracker resets to "unset" at the start of each font-size group, so the
// first string of each group always emits an alignment record. The
// writing pass resets its tracker at the same group boundary, so both
// passes count the same records.
func (b *builder) planText() {
	v := b.sym.Vector
	for _, current := range b.fontSizeGroups() {
		currentHalign := zint.HAlign(-1)
		for _, s := range v.Strings {
			if int(s.FSize) != current {
				continue
			}
			if s.HAlign != currentHalign {
				currentHalign = s.HAlign
				b.bytecount += setTextAlignSize
				b.recordcount++
			}
			utfLen := utf16Length([]byte(s.Text))
			bumped := bumpUp(utfLen) * 2
			size := extTextOutWHeaderSize + bumped
			b.bytecount += uint32(size)
			b.recordcount++
			b.texts = append(b.texts, plannedText{
				x: int32(s.X), y: int32(s.Y), fsize: current, halign: s.HAlign,
				chars:   uint32(utfLen),
				payload: padPayload(utf16leFromUTF8([]byte(s.Text)), bumped),
			})
		}
	}
}

func padPayload(raw []byte, bumpedLen int) []byte {
	if len(raw) >= bumpedLen {
		return raw
	}
	out := make([]byte, bumpedLen)
	copy(out, raw)
	return out
}

func (b *builder) fontSizeGroups() []int {
	if b.fsize == 0 {
		return nil
	}
	if b.fsize2 == 0 {
		return []int{b.fsize}
	}
	return []int{b.fsize, b.fsize2}
}

// write emits every planned record in order, patching the header's byte
// and record counts computed by plan.
func (b *builder) write(bw *binWriter) {
	sym := b.sym
	fg := colorRefFrom(sym.FgColour)
	bg := colorRefFrom(sym.BgColour)

	boundsRight, boundsBottom := b.width, b.height
	if b.rotateAngle == 90 || b.rotateAngle == 270 {
		boundsRight, boundsBottom = b.height, b.width
	}

	handles := uint16(4)
	if b.isUltra {
		handles = 11
	} else if b.fsize2 != 0 {
		handles = 5
	}

	bw.writeHeader(header{
		Type: typeHeader, Size: headerSize,
		Bounds:          rect32{0, 0, boundsRight, boundsBottom},
		Frame:           rect32{0, 0, boundsRight * 30, boundsBottom * 30},
		RecordSignature: enhmetaSignature,
		Version:         0x00010000,
		Bytes:           b.bytecount,
		Records:         b.recordcount,
		Handles:         handles,
		Device:          size32{1000, 1000},
		Millimeters:     size32{300, 300},
	})

	bw.writeSetMapMode()

	if b.rotateAngle != 0 {
		var m11, m12, m21, m22, dx, dy float32
		switch b.rotateAngle {
		case 90:
			m11, m12, m21, m22 = 0, 1, -1, 0
			dx, dy = float32(b.height), 0
		case 180:
			m11, m12, m21, m22 = -1, 0, 0, -1
			dx, dy = float32(b.width), float32(b.height)
		case 270:
			m11, m12, m21, m22 = 0, -1, 1, 0
			dx, dy = 0, float32(b.width)
		}
		bw.writeSetWorldTransform(m11, m12, m21, m22, dx, dy)
	}

	bw.writeCreateBrushIndirect(1, bg)

	if b.isUltra {
		for i := 1; i <= 8; i++ {
			if len(b.rectByColour[i]) > 0 {
				bw.writeCreateBrushIndirect(uint32(1+i), ultraPalette[i])
			}
		}
	} else {
		bw.writeCreateBrushIndirect(2, fg)
	}

	bw.writeCreatePen(10)

	if sym.Vector != nil && len(sym.Vector.Strings) > 0 {
		bw.writeExtCreateFontIndirectW(11, int32(b.fsize), b.bold())
		if b.fsize2 != 0 {
			bw.writeExtCreateFontIndirectW(12, int32(b.fsize2), b.bold())
		}
	}

	bw.writeSelectObject(1)  // bg brush
	bw.writeSelectObject(10) // pen

	if b.drawBg {
		bw.writeRectangle(typeRectangle, rect32{0, 0, boundsRight, boundsBottom})
	}

	if b.isUltra {
		for i := 1; i <= 8; i++ {
			boxes := b.rectByColour[i]
			if len(boxes) == 0 {
				continue
			}
			bw.writeSelectObject(uint32(1 + i))
			for _, box := range boxes {
				bw.writeRectangle(typeRectangle, box)
			}
		}
	} else {
		bw.writeSelectObject(2) // fg brush
		for _, box := range b.rectangles {
			bw.writeRectangle(typeRectangle, box)
		}
	}

	for i, pts := range b.hexPoints {
		bw.writePolygon(b.hexBounds[i], pts)
	}

	if b.isMaxicode {
		// Bullseye interleave: alternates starting with the foreground
		// brush after the first ring.
		for i, box := range b.circles {
			bw.writeRectangle(typeEllipse, box)
			if i < len(b.circles)-1 {
				if i%2 == 0 {
					bw.writeSelectObject(2) // fg brush
				} else {
					bw.writeSelectObject(1) // bg brush
				}
			}
		}
	} else {
		for _, box := range b.circles {
			bw.writeRectangle(typeEllipse, box)
		}
	}

	if len(b.texts) > 0 {
		bw.writeSelectObject(11) // font
		bw.writeSetTextColor(fg)
	}

	currentFsize := b.fsize
	currentHalign := zint.HAlign(-1)
	for _, t := range b.texts {
		if t.fsize != currentFsize {
			currentFsize = t.fsize
			currentHalign = zint.HAlign(-1)
			bw.writeSelectObject(12) // font2
		}
		if t.halign != currentHalign {
			currentHalign = t.halign
			switch currentHalign {
			case zint.AlignCenter:
				bw.writeSetTextAlign(taCenterBaseline)
			case zint.AlignLeft:
				bw.writeSetTextAlign(taLeftBaseline)
			default:
				bw.writeSetTextAlign(taRightBaseline)
			}
		}
		bw.writeExtTextOutW(t.x, t.y, t.chars, t.payload)
	}

	bw.writeEOF()
}
