package ticketqr

import "strings"

const (
	blockFull  = "█"
	blockUpper = "▀"
	blockLower = "▄"
	blockEmpty = " "

	terminalBorder = 2
)

// String renders the symbol for a terminal with a light background.
func (qr *QRCode) String() string {
	return qr.ToSmallString(false)
}

// ToSmallString renders the symbol with half-block characters, two module
// rows per text line, surrounded by a light border. With inverse set, dark
// modules are printed as spaces, for terminals with a dark background.
func (qr *QRCode) ToSmallString(inverse bool) string {
	dark := func(r, c int) bool {
		return qr.IsDark(r-terminalBorder, c-terminalBorder) != inverse
	}
	n := qr.Size + 2*terminalBorder

	var sb strings.Builder
	for y := 0; y < n; y += 2 {
		for x := 0; x < n; x++ {
			top := dark(y, x)
			bottom := y+1 < n && dark(y+1, x)
			if y+1 >= n && inverse {
				// The missing row below the last line counts as light.
				bottom = true
			}
			switch {
			case top && bottom:
				sb.WriteString(blockFull)
			case top:
				sb.WriteString(blockUpper)
			case bottom:
				sb.WriteString(blockLower)
			default:
				sb.WriteString(blockEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
