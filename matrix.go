// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package paver

import (
	"fmt"
	"math/bits"
	"strings"
)

// Matrix is a bit-packed rectangular boolean grid. Each row is stored in
// ⌈width/64⌉ consecutive words of data, with the leftmost cell of the row in
// the most significant bit of the first word. Bits beyond column width-1 in
// the last word of a row are always zero, and rows never share a word.
type Matrix struct {
	width    int
	height   int
	rowWords int      // words per row
	data     []uint64 // rowWords * height words
}

// NewMatrix returns an all-zero matrix of the given dimensions. Negative
// dimensions are treated as zero.
func NewMatrix(width, height int) *Matrix {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	rw := rowwords(width)
	return &Matrix{
		width:    width,
		height:   height,
		rowWords: rw,
		data:     make([]uint64, rw*height),
	}
}

// ParseMatrix reads a grid from its ASCII form: newline-separated lines,
// blank lines skipped, a terminal newline optional. Every non-blank line
// must have the same length (otherwise ErrInconsistentLineLength) and every
// character must be one of the two configured glyphs (otherwise
// ErrUnexpectedCharacter).
func ParseMatrix(s string, options ...func(*configs)) (*Matrix, error) {
	c := makeconfigs(options...)
	var lines []string
	for _, l := range strings.Split(s, "\n") {
		if len(l) != 0 {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return NewMatrix(0, 0), nil
	}
	width := len(lines[0])
	for i, l := range lines {
		if len(l) != width {
			return nil, fmt.Errorf("%w: line %d has %d characters, expected %d", ErrInconsistentLineLength, i, len(l), width)
		}
	}
	m := NewMatrix(width, len(lines))
	w := m.Writer(0, 0)
	for i, l := range lines {
		for j := 0; j < len(l); j++ {
			switch l[j] {
			case c.one:
				w.Write(true)
			case c.zero:
				w.Write(false)
			default:
				return nil, fmt.Errorf("%w %q at line %d, column %d", ErrUnexpectedCharacter, l[j], i, j)
			}
		}
	}
	w.Flush()
	return m, nil
}

// Width returns the number of columns of the matrix.
func (m *Matrix) Width() int { return m.width }

// Height returns the number of rows of the matrix.
func (m *Matrix) Height() int { return m.height }

// index returns the position of the word holding cell (x,y).
func (m *Matrix) index(x, y int) int {
	return y*m.rowWords + (x >> log2WordSize)
}

// mask returns the bit selecting cell x inside its word.
func mask(x int) uint64 {
	return msbMask >> uint(x&(wordSize-1))
}

// Get returns the value of cell (x,y). It panics when the cell is outside
// the grid.
func (m *Matrix) Get(x, y int) bool {
	m.checkbounds(x, y)
	return m.data[m.index(x, y)]&mask(x) != 0
}

// Set gives cell (x,y) the value v. It panics when the cell is outside the
// grid.
func (m *Matrix) Set(x, y int, v bool) {
	m.checkbounds(x, y)
	if v {
		m.data[m.index(x, y)] |= mask(x)
		return
	}
	m.data[m.index(x, y)] &^= mask(x)
}

func (m *Matrix) checkbounds(x, y int) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		panic(fmt.Sprintf("cell (%d, %d) outside %d x %d matrix", x, y, m.width, m.height))
	}
}

// Count returns the number of set cells.
func (m *Matrix) Count() int {
	res := 0
	for _, w := range m.data {
		res += bits.OnesCount64(w)
	}
	return res
}

// Equal reports whether the two matrices have the same dimensions and the
// same content. Padding bits are always zero, so words can be compared
// directly.
func (m *Matrix) Equal(other *Matrix) bool {
	if m.width != other.width || m.height != other.height {
		return false
	}
	for i, w := range m.data {
		if w != other.data[i] {
			return false
		}
	}
	return true
}

// Trim returns a new matrix with the given number of rows and columns
// removed from each border. It returns ErrTrimTooLarge when the removal
// exceeds the dimensions of the matrix (negative counts are rejected the
// same way).
func (m *Matrix) Trim(rowsStart, rowsEnd, colsStart, colsEnd int) (*Matrix, error) {
	if rowsStart < 0 || rowsEnd < 0 || colsStart < 0 || colsEnd < 0 ||
		rowsStart+rowsEnd > m.height || colsStart+colsEnd > m.width {
		return nil, fmt.Errorf("%w: cannot remove %d+%d rows and %d+%d columns from %d x %d",
			ErrTrimTooLarge, rowsStart, rowsEnd, colsStart, colsEnd, m.width, m.height)
	}
	res := NewMatrix(m.width-colsStart-colsEnd, m.height-rowsStart-rowsEnd)
	for y := 0; y < res.height; y++ {
		for x := 0; x < res.width; x++ {
			if m.Get(x+colsStart, y+rowsStart) {
				res.Set(x, y, true)
			}
		}
	}
	return res, nil
}

// TrimSpace returns a new matrix with every all-zero border row and column
// removed, so that each border of the result contains at least one set cell.
// The result is a 0 x 0 matrix when the whole grid is zero.
func (m *Matrix) TrimSpace() *Matrix {
	top := 0
	for top < m.height && m.rowEmpty(top) {
		top++
	}
	if top == m.height {
		return NewMatrix(0, 0)
	}
	bottom := m.height - 1
	for m.rowEmpty(bottom) {
		bottom--
	}
	// fold all surviving rows together to locate the leftmost and rightmost
	// set columns with word operations
	agg := make([]uint64, m.rowWords)
	for y := top; y <= bottom; y++ {
		for i := 0; i < m.rowWords; i++ {
			agg[i] |= m.data[y*m.rowWords+i]
		}
	}
	left, right := 0, 0
	for i, w := range agg {
		if w != 0 {
			left = i*wordSize + bits.LeadingZeros64(w)
			break
		}
	}
	for i := len(agg) - 1; i >= 0; i-- {
		if agg[i] != 0 {
			right = i*wordSize + (wordSize - 1 - bits.TrailingZeros64(agg[i]))
			break
		}
	}
	res, err := m.Trim(top, m.height-1-bottom, left, m.width-1-right)
	if err != nil {
		// unreachable: the bounds above are inside the matrix
		panic(err)
	}
	return res
}

func (m *Matrix) rowEmpty(y int) bool {
	for i := 0; i < m.rowWords; i++ {
		if m.data[y*m.rowWords+i] != 0 {
			return false
		}
	}
	return true
}
