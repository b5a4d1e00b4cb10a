// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package paver

import "fmt"

// Piece is one oriented polyomino. ParsePiece trims its store to the
// bounding box of the silhouette, so every border row and column contains at
// least one set cell; NewPiece keeps the matrix it is given as it is. A piece
// is never wider than one machine word; the solver relies
// on each row of the store being a single word.
type Piece struct {
	store  *Matrix
	width  int
	height int
	area   int
}

// ParsePiece reads a silhouette from its ASCII form, trims it to its
// bounding box and returns the resulting piece. It returns ErrTooWide when
// the trimmed silhouette is wider than one machine word, besides the errors
// of ParseMatrix. An all-zero silhouette gives a 0 x 0 piece of area 0.
func ParsePiece(s string, options ...func(*configs)) (*Piece, error) {
	m, err := ParseMatrix(s, options...)
	if err != nil {
		return nil, err
	}
	return NewPiece(m.TrimSpace())
}

// NewPiece returns a piece over an existing matrix. The matrix is used as
// is, without trimming, and the piece takes ownership of it. It returns
// ErrTooWide when the matrix is wider than one machine word.
func NewPiece(m *Matrix) (*Piece, error) {
	if m.width > wordSize {
		return nil, fmt.Errorf("%w: width %d", ErrTooWide, m.width)
	}
	return &Piece{store: m, width: m.width, height: m.height, area: m.Count()}, nil
}

// Width returns the width of the bounding box of the piece.
func (p *Piece) Width() int { return p.width }

// Height returns the height of the bounding box of the piece.
func (p *Piece) Height() int { return p.height }

// Area returns the number of cells covered by the piece.
func (p *Piece) Area() int { return p.area }

// Equal reports whether two pieces have exactly the same silhouette,
// including matching dimensions.
func (p *Piece) Equal(q *Piece) bool {
	return p.store.Equal(q.store)
}

// Rotate returns the piece turned a quarter turn clockwise: cell (x,y) of
// the original lands on cell (height-1-y, x) of the result. The dimensions
// are swapped, and the area is preserved. Note that rotating a piece taller
// than one machine word produces one that is too wide to be placed;
// NewPieceSet rejects such pieces.
func (p *Piece) Rotate() *Piece {
	res := NewMatrix(p.height, p.width)
	rd := p.store.Reader()
	for x, y, v, ok := rd.Next(); ok; x, y, v, ok = rd.Next() {
		if v {
			res.Set(p.height-1-y, x, true)
		}
	}
	return &Piece{store: res, width: res.width, height: res.height, area: p.area}
}
