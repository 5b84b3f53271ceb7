package printer

import (
	"bytes"
	"fmt"
	"strings"
)

// Label builds a TSPL command stream for garment-tag label printers
// (TSC TL240 class). Coordinates are in dots at 203 dpi (8 dots/mm).
type Label struct {
	buf bytes.Buffer
}

// NewLabel starts a label of the given size in millimetres with the given
// inter-label gap.
func NewLabel(widthMM, heightMM, gapMM int) *Label {
	l := &Label{}
	l.cmdf("SIZE %d mm,%d mm", widthMM, heightMM)
	l.cmdf("GAP %d mm,0 mm", gapMM)
	l.cmd("DIRECTION 1")
	l.cmd("CLS")
	return l
}

// Text places a line of text at (x, y) using the built-in font with the
// given magnification. TSPL treats double quotes as string delimiters, so
// they are stripped from the content.
func (l *Label) Text(x, y int, font string, mul int, content string) *Label {
	l.cmdf(`TEXT %d,%d,"%s",0,%d,%d,"%s"`, x, y, font, mul, mul, sanitizeTSPL(content))
	return l
}

// Barcode places a CODE39 barcode at (x, y) with readable text below.
func (l *Label) Barcode(x, y, height int, content string) *Label {
	l.cmdf(`BARCODE %d,%d,"39",%d,1,0,2,2,"%s"`, x, y, height, sanitizeTSPL(content))
	return l
}

// Box draws a rectangle from (x, y) to (xEnd, yEnd) with the given line
// thickness in dots.
func (l *Label) Box(x, y, xEnd, yEnd, thickness int) *Label {
	l.cmdf("BOX %d,%d,%d,%d,%d", x, y, xEnd, yEnd, thickness)
	return l
}

// Bar draws a filled rectangle, used for the inverted wash-type band.
func (l *Label) Bar(x, y, width, height int) *Label {
	l.cmdf("BAR %d,%d,%d,%d", x, y, width, height)
	return l
}

// Print emits the PRINT command for n copies and returns the command stream.
func (l *Label) Print(copies int) []byte {
	if copies < 1 {
		copies = 1
	}
	l.cmdf("PRINT %d", copies)
	return l.buf.Bytes()
}

func (l *Label) cmd(s string) {
	l.buf.WriteString(s)
	l.buf.WriteString("\r\n")
}

func (l *Label) cmdf(format string, args ...interface{}) {
	l.cmd(fmt.Sprintf(format, args...))
}

func sanitizeTSPL(s string) string {
	return strings.ReplaceAll(s, `"`, "'")
}
