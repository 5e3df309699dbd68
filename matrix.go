package ticketqr

// module is the state of one grid cell while a symbol is being built.
type module uint8

const (
	moduleUnset module = iota
	moduleReservedLight
	moduleReservedDark
	moduleLight
	moduleDark
)

func (m module) reserved() bool {
	return m == moduleReservedLight || m == moduleReservedDark
}

func (m module) dark() bool {
	return m == moduleReservedDark || m == moduleDark
}

type matrix struct {
	size         int
	timingColumn int
	cells        [][]module

	// visits counts cells written by placeData. Tests compare it with
	// available() to check that every data-eligible cell is placed once.
	visits int
}

func newMatrix(size, timingColumn int) *matrix {
	m := &matrix{
		size:         size,
		timingColumn: timingColumn,
		cells:        make([][]module, size),
	}
	for i := range m.cells {
		m.cells[i] = make([]module, size)
	}
	return m
}

// stampFunctionPatterns reserves the three finder patterns with their
// separators and the timing column.
func (m *matrix) stampFunctionPatterns() {
	m.addFinderPattern(0, 0)
	m.addFinderPattern(0, m.size-7)
	m.addFinderPattern(m.size-7, 0)
	m.reserveTimingColumn()
}

// addFinderPattern stamps the 7x7 finder with its top-left corner at (r, c)
// plus the one-module light separator around it, clipped to the grid.
func (m *matrix) addFinderPattern(r, c int) {
	for i := -1; i <= 7; i++ {
		for j := -1; j <= 7; j++ {
			row, col := r+i, c+j
			if row < 0 || row >= m.size || col < 0 || col >= m.size {
				continue
			}
			inside := i >= 0 && i <= 6 && j >= 0 && j <= 6
			ring := i == 0 || i == 6 || j == 0 || j == 6
			core := i >= 2 && i <= 4 && j >= 2 && j <= 4
			if inside && (ring || core) {
				m.cells[row][col] = moduleReservedDark
			} else {
				m.cells[row][col] = moduleReservedLight
			}
		}
	}
}

// reserveTimingColumn keeps the column the placement walk skips light. No
// timing pattern is drawn in it.
func (m *matrix) reserveTimingColumn() {
	for row := 0; row < m.size; row++ {
		if m.cells[row][m.timingColumn] == moduleUnset {
			m.cells[row][m.timingColumn] = moduleReservedLight
		}
	}
}

// available returns the number of unset cells.
func (m *matrix) available() int {
	n := 0
	for _, row := range m.cells {
		for _, cell := range row {
			if cell == moduleUnset {
				n++
			}
		}
	}
	return n
}

// placeData fills every unset cell with the codeword bits, most significant
// bit first, walking two-column strips from the right edge leftwards in an
// alternating upward/downward sweep. Cells past the end of the data are light.
func (m *matrix) placeData(data []byte) {
	totalBits := len(data) * 8
	idx := 0

	inc := -1
	row := m.size - 1
	for col := m.size - 1; col > 0; col -= 2 {
		if col == m.timingColumn {
			col--
		}
		for {
			for c := col; c > col-2; c-- {
				if m.cells[row][c] != moduleUnset {
					continue
				}
				bit := false
				if idx < totalBits {
					bit = (data[idx/8]>>(7-idx%8))&1 == 1
				}
				if bit {
					m.cells[row][c] = moduleDark
				} else {
					m.cells[row][c] = moduleLight
				}
				idx++
				m.visits++
			}
			row += inc
			if row < 0 || row >= m.size {
				row -= inc
				inc = -inc
				break
			}
		}
	}
}

// bools collapses the grid to dark/light. Cells left unset are light.
func (m *matrix) bools() [][]bool {
	out := make([][]bool, m.size)
	for r, row := range m.cells {
		out[r] = make([]bool, m.size)
		for c, cell := range row {
			out[r][c] = cell.dark()
		}
	}
	return out
}
