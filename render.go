package ticketqr

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Rect is a filled square covering one dark module, in output pixels.
type Rect struct {
	X, Y, W, H float64
}

// Rects returns one rectangle per dark module, row by row, for a drawing
// outputSize pixels wide. Each module is outputSize/Size pixels square.
func (qr *QRCode) Rects(outputSize float64) []Rect {
	scale := outputSize / float64(qr.Size)
	var rects []Rect
	for r := 0; r < qr.Size; r++ {
		for c := 0; c < qr.Size; c++ {
			if qr.Modules[r][c] {
				rects = append(rects, Rect{
					X: float64(c) * scale,
					Y: float64(r) * scale,
					W: scale,
					H: scale,
				})
			}
		}
	}
	return rects
}

// SVGPath returns SVG path data drawing every dark module as a closed
// square subpath.
func (qr *QRCode) SVGPath(outputSize float64) string {
	var sb strings.Builder
	for i, rect := range qr.Rects(outputSize) {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('M')
		sb.WriteString(formatFloat(rect.X))
		sb.WriteByte(',')
		sb.WriteString(formatFloat(rect.Y))
		sb.WriteByte('h')
		sb.WriteString(formatFloat(rect.W))
		sb.WriteByte('v')
		sb.WriteString(formatFloat(rect.H))
		sb.WriteByte('h')
		sb.WriteString(formatFloat(-rect.W))
		sb.WriteByte('z')
	}
	return sb.String()
}

// WriteSVG writes a size x size pixel SVG image of the symbol: a white
// background with the dark modules drawn as a single black path.
func (qr *QRCode) WriteSVG(w io.Writer, size int) error {
	if size < qr.Size {
		size = qr.Size
	}
	_, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%[1]d" height="%[1]d" viewBox="0 0 %[1]d %[1]d" role="img" aria-label="QR code">`+
			`<rect width="%[1]d" height="%[1]d" fill="#fff"/>`+
			`<path d="%[2]s" fill="#000"/></svg>`+"\n",
		size, qr.SVGPath(float64(size)))
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
