package ticketqr

import (
	"image/color"
	"io"

	"github.com/fogleman/gg"
)

// quietZone is the light border, in modules, around raster output.
const quietZone = 4

// WritePNG writes the QR code to the given writer as a PNG.
// scale is the number of pixels per module.
func (qr *QRCode) WritePNG(w io.Writer, scale int) error {
	if scale < 1 {
		scale = 1
	}

	offset := float64(quietZone * scale)
	dim := (qr.Size + 2*quietZone) * scale

	dc := gg.NewContext(dim, dim)
	dc.SetColor(color.White)
	dc.Clear()

	dc.SetColor(color.Black)
	for _, rect := range qr.Rects(float64(qr.Size * scale)) {
		dc.DrawRectangle(rect.X+offset, rect.Y+offset, rect.W, rect.H)
	}
	dc.Fill()

	return dc.EncodePNG(w)
}
