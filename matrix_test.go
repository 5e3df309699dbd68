package ticketqr

import (
	"bytes"
	"testing"

	qt "github.com/frankban/quicktest"
)

func stampedMatrix() *matrix {
	m := newMatrix(Size, timingColumn)
	m.stampFunctionPatterns()
	return m
}

func TestMatrixStamping(t *testing.T) {
	c := qt.New(t)
	m := stampedMatrix()

	// Three 8x8 finder regions (pattern plus separator) and the nine free
	// cells of the timing column.
	c.Assert(m.available(), qt.Equals, Size*Size-3*64-9)

	for row := 0; row < Size; row++ {
		c.Assert(m.cells[row][timingColumn].reserved(), qt.IsTrue, qt.Commentf("row %d", row))
	}
	for row := 8; row < Size-8; row++ {
		c.Assert(m.cells[row][timingColumn], qt.Equals, moduleReservedLight)
	}

	// Separators.
	for i := 0; i < 8; i++ {
		c.Assert(m.cells[7][i], qt.Equals, moduleReservedLight)
		c.Assert(m.cells[i][Size-8], qt.Equals, moduleReservedLight)
		c.Assert(m.cells[Size-8][i], qt.Equals, moduleReservedLight)
	}
	c.Assert(m.cells[8][8], qt.Equals, moduleUnset)
}

func TestMatrixPlacementComplete(t *testing.T) {
	c := qt.New(t)
	m := stampedMatrix()
	eligible := m.available()

	before := make([][]module, Size)
	for r := range m.cells {
		before[r] = append([]module(nil), m.cells[r]...)
	}

	m.placeData(make([]byte, TotalCodewords))

	// Each visit turns one unset cell into a data cell, so equal counts mean
	// every eligible cell was visited exactly once.
	c.Assert(m.visits, qt.Equals, eligible)
	c.Assert(m.available(), qt.Equals, 0)

	for r := range m.cells {
		for col, cell := range m.cells[r] {
			if before[r][col].reserved() {
				c.Assert(cell, qt.Equals, before[r][col], qt.Commentf("reserved (%d,%d) overwritten", r, col))
			} else {
				c.Assert(cell == moduleLight || cell == moduleDark, qt.IsTrue)
			}
		}
	}
}

func TestMatrixSurplusCellsLight(t *testing.T) {
	c := qt.New(t)
	m := stampedMatrix()
	m.placeData(bytes.Repeat([]byte{0xff}, TotalCodewords))

	dark := 0
	for _, row := range m.cells {
		for _, cell := range row {
			if cell == moduleDark {
				dark++
			}
		}
	}
	c.Assert(dark, qt.Equals, TotalCodewords*8)
}

func TestMatrixPlacementOrder(t *testing.T) {
	c := qt.New(t)
	m := stampedMatrix()

	// First byte 0b10100000: the walk starts at the bottom-right corner,
	// right column before left, then moves up.
	data := make([]byte, TotalCodewords)
	data[0] = 0xa0
	m.placeData(data)

	c.Assert(m.cells[Size-1][Size-1], qt.Equals, moduleDark)
	c.Assert(m.cells[Size-1][Size-2], qt.Equals, moduleLight)
	c.Assert(m.cells[Size-2][Size-1], qt.Equals, moduleDark)
	c.Assert(m.cells[Size-2][Size-2], qt.Equals, moduleLight)
}

func TestMatrixPlacementReversesDirection(t *testing.T) {
	c := qt.New(t)
	m := stampedMatrix()

	// Columns 24/23 take 34 bits going up through rows 24..8 (rows 0..7
	// belong to the top-right finder), then the walk turns and comes down
	// columns 22/21 starting at row 8.
	data := make([]byte, TotalCodewords)
	bit := 2 * (Size - 8)
	data[bit/8] = 0x80 >> (bit % 8)
	m.placeData(data)

	c.Assert(m.cells[8][Size-1], qt.Equals, moduleLight)
	c.Assert(m.cells[8][Size-3], qt.Equals, moduleDark)
	c.Assert(m.cells[8][Size-4], qt.Equals, moduleLight)
	c.Assert(m.cells[9][Size-3], qt.Equals, moduleLight)
}

func TestMatrixBoolsLeavesUnsetLight(t *testing.T) {
	c := qt.New(t)
	m := newMatrix(Size, timingColumn)
	m.cells[3][3] = moduleDark
	out := m.bools()
	c.Assert(out[3][3], qt.IsTrue)
	c.Assert(out[4][4], qt.IsFalse)
}
