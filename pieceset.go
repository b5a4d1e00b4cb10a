// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package paver

import "fmt"

// PieceInput pairs the ASCII silhouette of a piece with the number of copies
// of it appearing in the puzzle.
type PieceInput struct {
	Ascii string
	Mult  int
}

// PieceType groups the distinct rotations of one polyomino with its
// multiplicity. Rotations are listed in the order produced by repeatedly
// turning the first one; a fully symmetric piece has a single entry, a
// piece with a half-turn symmetry has two, and an asymmetric piece has four.
type PieceType struct {
	rotations []*Piece
	mult      int
}

// Rotations returns the distinct rotations of the type.
func (t *PieceType) Rotations() []*Piece { return t.rotations }

// Mult returns the number of copies of the type in the puzzle.
func (t *PieceType) Mult() int { return t.mult }

// PieceSet is an ordered list of piece types. No two types of a set share a
// rotation, so type indices identify polyominoes independently of how the
// inputs were written.
type PieceSet struct {
	types []*PieceType
}

// Types returns the piece types of the set.
func (s *PieceSet) Types() []*PieceType { return s.types }

// Count returns the total number of pieces, all multiplicities summed.
func (s *PieceSet) Count() int {
	res := 0
	for _, t := range s.types {
		res += t.mult
	}
	return res
}

// NewPieceSet builds a piece set from a list of silhouettes. Inputs whose
// silhouettes are equal up to rotation are merged into a single type whose
// multiplicity is the sum of their multiplicities. It returns
// ErrMultiplicityZero when an input declares less than one copy, ErrTooWide
// when any rotation of a piece is wider than one machine word, and the
// errors of ParsePiece.
func NewPieceSet(inputs []PieceInput, options ...func(*configs)) (*PieceSet, error) {
	s := &PieceSet{}
	for i, in := range inputs {
		if in.Mult < 1 {
			return nil, fmt.Errorf("%w: input %d declares %d copies", ErrMultiplicityZero, i, in.Mult)
		}
		p, err := ParsePiece(in.Ascii, options...)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		rots, err := rotations(p)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		if t := s.lookup(rots); t != nil {
			t.mult += in.Mult
			continue
		}
		s.types = append(s.types, &PieceType{rotations: rots, mult: in.Mult})
	}
	return s, nil
}

// rotations returns the rotation class of p: the original followed by up to
// three quarter turns, stopping as soon as a turn reproduces the original.
func rotations(p *Piece) ([]*Piece, error) {
	rots := []*Piece{p}
	q := p.Rotate()
	for i := 0; i < 3 && !q.Equal(p); i++ {
		rots = append(rots, q)
		q = q.Rotate()
	}
	for _, r := range rots {
		if r.width > wordSize {
			return nil, fmt.Errorf("%w: rotation is %d cells wide", ErrTooWide, r.width)
		}
	}
	return rots, nil
}

// lookup returns the existing type sharing a rotation with the given
// rotation class, if any.
func (s *PieceSet) lookup(rots []*Piece) *PieceType {
	for _, t := range s.types {
		for _, r := range t.rotations {
			for _, q := range rots {
				if r.Equal(q) {
					return t
				}
			}
		}
	}
	return nil
}
