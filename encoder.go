package ticketqr

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// ModeByte is the 4-bit mode indicator for 8-bit byte data.
const ModeByte = 4

// Symbol layout. One size and one single-block error correction level are
// supported: a 25x25 grid (version 2) carrying 44 codewords, 28 of them data.
const (
	Size           = 25
	TotalCodewords = 44
	ECCodewords    = 16
	DataCodewords  = TotalCodewords - ECCodewords

	modeBits     = 4
	countBits    = 8
	timingColumn = 6

	// MaxPayloadLen is the longest byte-mode payload that fits the data codewords.
	MaxPayloadLen = (DataCodewords*8 - modeBits - countBits) / 8
)

var (
	// ErrTooLong is returned when the content does not fit the data codewords.
	ErrTooLong = errors.New("ticketqr: content too long")
	// ErrUnencodable is returned when the content has characters outside
	// ISO-8859-1 and so has no 8-bit byte-mode representation.
	ErrUnencodable = errors.New("ticketqr: content not representable in byte mode")
)

type layout struct {
	size           int
	totalCodewords int
	ecCodewords    int
	timingColumn   int
}

var symbolLayout = layout{
	size:           Size,
	totalCodewords: TotalCodewords,
	ecCodewords:    ECCodewords,
	timingColumn:   timingColumn,
}

func init() {
	if err := symbolLayout.validate(); err != nil {
		panic(err)
	}
}

func (l layout) dataCodewords() int {
	return l.totalCodewords - l.ecCodewords
}

func (l layout) maxPayloadLen() int {
	return (l.dataCodewords()*8 - modeBits - countBits) / 8
}

// validate checks that the layout's grid can hold its codewords.
func (l layout) validate() error {
	switch {
	case l.size < 16:
		return fmt.Errorf("ticketqr: size %d cannot hold three finder patterns", l.size)
	case l.timingColumn < 0 || l.timingColumn >= l.size:
		return fmt.Errorf("ticketqr: timing column %d outside %dx%d grid", l.timingColumn, l.size, l.size)
	case l.ecCodewords < 1 || l.ecCodewords > 254:
		return fmt.Errorf("ticketqr: %d correction codewords out of range", l.ecCodewords)
	case l.dataCodewords() < 2:
		return fmt.Errorf("ticketqr: %d data codewords cannot hold a byte-mode header", l.dataCodewords())
	case l.maxPayloadLen() > 1<<countBits-1:
		return fmt.Errorf("ticketqr: capacity %d overflows the %d-bit length field", l.maxPayloadLen(), countBits)
	}

	m := newMatrix(l.size, l.timingColumn)
	m.stampFunctionPatterns()
	if avail := m.available(); avail < l.totalCodewords*8 {
		return fmt.Errorf("ticketqr: %d codewords need %d modules, grid has %d", l.totalCodewords, l.totalCodewords*8, avail)
	}
	return nil
}

// QRCode is a finished symbol. Modules[row][col] is true for dark modules.
type QRCode struct {
	Size      int
	Modules   [][]bool
	Codewords []byte
}

// NewQRCode encodes content in byte mode into a fixed-size symbol.
func NewQRCode(content string) (*QRCode, error) {
	data, err := encodeData(content)
	if err != nil {
		return nil, err
	}
	cw := codewords(data)

	m := newMatrix(symbolLayout.size, symbolLayout.timingColumn)
	m.stampFunctionPatterns()
	m.placeData(cw)

	return &QRCode{
		Size:      m.size,
		Modules:   m.bools(),
		Codewords: cw,
	}, nil
}

// IsDark reports whether the module at row, col is dark. Coordinates outside
// the symbol are light.
func (qr *QRCode) IsDark(row, col int) bool {
	if row < 0 || row >= qr.Size || col < 0 || col >= qr.Size {
		return false
	}
	return qr.Modules[row][col]
}

// DarkCount returns the number of dark modules.
func (qr *QRCode) DarkCount() int {
	n := 0
	for _, row := range qr.Modules {
		for _, dark := range row {
			if dark {
				n++
			}
		}
	}
	return n
}

// encodeData returns the DataCodewords data codewords for content.
func encodeData(content string) ([]byte, error) {
	payload, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnencodable, err)
	}
	return encodeSegments(symbolLayout, payload)
}

func encodeSegments(l layout, segments ...[]byte) ([]byte, error) {
	dataCapacityBits := l.dataCodewords() * 8

	need := 0
	for _, seg := range segments {
		if len(seg) > 1<<countBits-1 {
			return nil, fmt.Errorf("%w: segment of %d bytes overflows the length field", ErrTooLong, len(seg))
		}
		need += modeBits + countBits + len(seg)*8
	}
	if need > dataCapacityBits {
		return nil, fmt.Errorf("%w: %d bits, capacity %d bits (%d bytes max)", ErrTooLong, need, dataCapacityBits, l.maxPayloadLen())
	}

	bitBuffer := NewBitBuffer()
	for _, seg := range segments {
		bitBuffer.Put(ModeByte, modeBits)
		bitBuffer.Put(len(seg), countBits)
		for _, b := range seg {
			bitBuffer.Put(int(b), 8)
		}
	}

	// Terminator, only if it fits whole.
	if bitBuffer.Len()+4 <= dataCapacityBits {
		bitBuffer.Put(0, 4)
	}

	// Byte alignment
	for bitBuffer.Len()%8 != 0 {
		bitBuffer.PutBit(false)
	}

	// Pad bytes
	padBytes := [2]int{0xEC, 0x11}
	for i := 0; bitBuffer.Len() < dataCapacityBits; i++ {
		bitBuffer.Put(padBytes[i%2], 8)
	}

	return bitBuffer.Bytes(), nil
}
