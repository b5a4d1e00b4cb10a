// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package paver

// Board is the mutable surface pieces are placed on. Two representations of
// the same bits coexist: bitField is the row-major Matrix used for I/O, and
// current is the hot-path store, a column-major word layout in which
// current[c*height+r] holds cells (c*64+k, r) for k in [0..64), leftmost
// cell in the most significant bit. The words of one column span are
// consecutive, so placing a piece of height h writes h consecutive words.
// current carries wordSize words of trailing padding, which keeps vector
// loads of a full column span safe at any valid row index.
type Board struct {
	width   int
	height  int
	spans   int // number of column spans, ⌈width/64⌉
	current []uint64
	bit     *Matrix // row-major view, refreshed by Sync
}

// NewBoard returns an empty board of the given dimensions.
func NewBoard(width, height int) *Board {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	spans := rowwords(width)
	return &Board{
		width:   width,
		height:  height,
		spans:   spans,
		current: make([]uint64, spans*height+wordSize),
		bit:     NewMatrix(width, height),
	}
}

// ParseBoard reads a board from its ASCII form, which is the same as the one
// of ParseMatrix.
func ParseBoard(s string, options ...func(*configs)) (*Board, error) {
	m, err := ParseMatrix(s, options...)
	if err != nil {
		return nil, err
	}
	b := NewBoard(m.width, m.height)
	b.bit = m
	for c := 0; c < b.spans; c++ {
		for r := 0; r < b.height; r++ {
			b.current[c*b.height+r] = m.data[r*m.rowWords+c]
		}
	}
	return b, nil
}

// Width returns the number of columns of the board.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows of the board.
func (b *Board) Height() int { return b.height }

// Sync rewrites the row-major view of the board from the column-major store
// and returns it. The result is owned by the board and is only valid until
// the next placement.
func (b *Board) Sync() *Matrix {
	for c := 0; c < b.spans; c++ {
		for r := 0; r < b.height; r++ {
			b.bit.data[r*b.bit.rowWords+c] = b.current[c*b.height+r]
		}
	}
	return b.bit
}

// Equal reports whether two boards have the same dimensions and occupancy.
func (b *Board) Equal(other *Board) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for i, w := range b.current {
		if w != other.current[i] {
			return false
		}
	}
	return true
}

// Insert places p with its top-left corner on cell (x,y), or-ing its cells
// into the board. It returns ErrWidthAndHeightOverflow, ErrWidthOverflow or
// ErrHeightOverflow when the piece extends past the borders, and
// ErrInsertCollision when one of the written cells is already occupied. On
// error the board is unchanged.
func (b *Board) Insert(p *Piece, x, y int) error {
	return b.place(p, x, y, false)
}

// Remove is the inverse of Insert: it clears the cells of p placed at (x,y).
// It returns the overflow errors of Insert and ErrRemoveMismatch when one of
// the cells the piece covers is not currently set. On error the board is
// unchanged.
func (b *Board) Remove(p *Piece, x, y int) error {
	return b.place(p, x, y, true)
}

// place carries both operations: insertion and removal only differ in the
// conflict predicate, the write itself is an exclusive-or either way, which
// also makes the rollback of partially applied placements symmetric.
func (b *Board) place(p *Piece, x, y int, removing bool) error {
	wover := x < 0 || x+p.width > b.width
	hover := y < 0 || y+p.height > b.height
	switch {
	case wover && hover:
		return ErrWidthAndHeightOverflow
	case wover:
		return ErrWidthOverflow
	case hover:
		return ErrHeightOverflow
	}
	if p.width == 0 {
		return nil
	}
	span := x >> log2WordSize
	shift := uint(x & (wordSize - 1))
	left := span*b.height + y
	if shift+uint(p.width) <= wordSize {
		// piece rows fall inside a single column span
		for r := 0; r < p.height; r++ {
			w := p.store.data[r] >> shift
			cur := b.current[left+r]
			if conflict(cur, w, removing) {
				for r--; r >= 0; r-- {
					b.current[left+r] ^= p.store.data[r] >> shift
				}
				return placeErr(removing)
			}
			b.current[left+r] = cur ^ w
		}
		return nil
	}
	// the piece straddles two column spans; both words of a row are checked
	// before either is written, so the rollback stays row-granular
	lshift := wordSize - shift
	right := (span+1)*b.height + y
	for r := 0; r < p.height; r++ {
		wl := p.store.data[r] >> shift
		wr := p.store.data[r] << lshift
		cl, cr := b.current[left+r], b.current[right+r]
		if conflict(cl, wl, removing) || conflict(cr, wr, removing) {
			for r--; r >= 0; r-- {
				b.current[left+r] ^= p.store.data[r] >> shift
				b.current[right+r] ^= p.store.data[r] << lshift
			}
			return placeErr(removing)
		}
		b.current[left+r] = cl ^ wl
		b.current[right+r] = cr ^ wr
	}
	return nil
}

// conflict reports whether a piece row word cannot be applied to the current
// board word: for an insertion some piece cell is already occupied, for a
// removal some piece cell is not on the board.
func conflict(cur, w uint64, removing bool) bool {
	if removing {
		return cur&w != w
	}
	return cur&w != 0
}

func placeErr(removing bool) error {
	if removing {
		return ErrRemoveMismatch
	}
	return ErrInsertCollision
}
