// Package emf serializes a resolved vector barcode into a Microsoft
// Enhanced Metafile, following [MS-EMF] v20160714.
package emf

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/zintgo/zint"
)

func init() {
	zint.RegisterBackend("EMF", Plot)
}

// Plot renders sym as an EMF document, writing it to sym.OutFile unless
// zint.BarcodeStdout is set in sym.OutputOptions, in which case it writes
// to standard output. rotateAngle must be one of 0, 90, 180, 270.
func Plot(sym *zint.Symbol, rotateAngle int) error {
	var w io.Writer
	if sym.OutputOptions.Has(zint.BarcodeStdout) {
		bw := bufio.NewWriter(os.Stdout)
		w = bw
		defer bw.Flush()
	} else {
		f, err := os.Create(sym.OutFile)
		if err != nil {
			sym.SetError(640, "Could not open output file")
			return fmt.Errorf("%w: %w", ErrFileAccess, err)
		}
		defer f.Close()
		w = f
	}
	return plotTo(w, sym, rotateAngle)
}

// plotTo performs the actual record planning and serialization against an
// arbitrary writer, independent of file I/O, so tests can target a
// bytes.Buffer directly.
func plotTo(w io.Writer, sym *zint.Symbol, rotateAngle int) error {
	b := newBuilder(sym, rotateAngle)
	b.collect()
	b.plan()

	bw := newBinWriter(w)
	b.write(bw)
	if bw.err != nil {
		return fmt.Errorf("emf: write record stream: %w", bw.err)
	}
	if uint32(bw.n) != b.bytecount {
		return fmt.Errorf("emf: wrote %d bytes, header declares %d", bw.n, b.bytecount)
	}
	if uint32(bw.records) != b.recordcount {
		return fmt.Errorf("emf: wrote %d records, header declares %d", bw.records, b.recordcount)
	}
	return nil
}
