// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package paver

import (
	"errors"
	"fmt"
)

// Placement records one placed piece: the index of its type in the set, the
// index of the rotation used, the index of this copy among the copies of the
// same type (starting at 0), and the position of the top-left corner of the
// rotation's bounding box.
type Placement struct {
	Index    int
	Rotation int
	Ordinal  int
	X, Y     int
}

func (pl Placement) String() string {
	return fmt.Sprintf("type %d[%d] #%d at (%d,%d)", pl.Index, pl.Rotation, pl.Ordinal, pl.X, pl.Y)
}

// Solution is one complete, overlap-free placement of every piece of the
// set, listed in the order the pieces were placed. Two solutions are
// distinct exactly when their placement sequences differ.
type Solution []Placement

// Solver enumerates the placements of a piece set on a board of fixed
// dimensions. It owns the board and a preallocated placement stack; nothing
// is allocated per placement attempt, only the copy of the stack made for
// each emitted solution.
type Solver struct {
	set   *PieceSet
	board *Board
	total int // number of pieces across the set
	stack []Placement

	// next candidate placement
	nextIndex    int
	nextRotation int
	nTypePlaced  int
	nextX, nextY int

	// search statistics
	attempts   uint64
	backtracks uint64
	found      uint64
}

// state of the search automaton. Backtracking through an explicit automaton
// instead of recursion keeps each step O(1) and allocation free.
type state int

const (
	tryPlacement state = iota
	acceptPiece
	saveSolution
	moveX
	moveNextRow
	nextRotation
	backtrack
	halted
)

// NewSolver returns a solver for the given piece set over an empty board of
// the given dimensions.
func NewSolver(set *PieceSet, width, height int) *Solver {
	total := set.Count()
	return &Solver{
		set:   set,
		board: NewBoard(width, height),
		total: total,
		stack: make([]Placement, 0, total),
	}
}

// Board returns the board owned by the solver.
func (s *Solver) Board() *Board {
	return s.board
}

// Solve runs the search to completion and returns every distinct solution.
// Copies of the same piece type are placed in strictly increasing row-major
// order of their positions, so permutations of identical pieces are never
// enumerated twice. Each copy starts its scan with the first rotation of its
// type and only moves to the next rotation once the scan has run past the
// bottom of the board; the position is not rewound for it. The result
// may be empty. Solve restarts the enumeration from scratch each time it is
// called; it is not safe for concurrent use.
func (s *Solver) Solve() []Solution {
	if len(s.set.types) == 0 {
		return nil
	}
	s.reset()
	var solutions []Solution
	st := tryPlacement
	for st != halted {
		switch st {
		case tryPlacement:
			s.attempts++
			t := s.set.types[s.nextIndex]
			err := s.board.Insert(t.rotations[s.nextRotation], s.nextX, s.nextY)
			switch {
			case err == nil:
				st = acceptPiece
			case errors.Is(err, ErrInsertCollision):
				st = moveX
			case errors.Is(err, ErrWidthOverflow):
				st = moveNextRow
			default:
				// height exhausted for this rotation: y is never rewound, so
				// no further scanning can help
				st = nextRotation
			}
		case acceptPiece:
			s.stack = append(s.stack, Placement{
				Index:    s.nextIndex,
				Rotation: s.nextRotation,
				Ordinal:  s.nTypePlaced,
				X:        s.nextX,
				Y:        s.nextY,
			})
			s.nTypePlaced++
			st = s.loadNextPiece()
		case saveSolution:
			s.found++
			sol := make(Solution, len(s.stack))
			copy(sol, s.stack)
			solutions = append(solutions, sol)
			st = backtrack
		case moveX:
			s.nextX++
			st = tryPlacement
		case moveNextRow:
			s.nextX = 0
			s.nextY++
			st = tryPlacement
		case nextRotation:
			s.nextRotation++
			if s.nextRotation >= len(s.set.types[s.nextIndex].rotations) {
				st = backtrack
			} else {
				st = tryPlacement
			}
		case backtrack:
			if len(s.stack) == 0 {
				st = halted
				break
			}
			s.backtracks++
			pl := s.stack[len(s.stack)-1]
			s.stack = s.stack[:len(s.stack)-1]
			s.nextIndex = pl.Index
			s.nextRotation = pl.Rotation
			s.nTypePlaced = pl.Ordinal
			s.nextX, s.nextY = pl.X, pl.Y
			p := s.set.types[pl.Index].rotations[pl.Rotation]
			if err := s.board.Remove(p, pl.X, pl.Y); err != nil {
				// the stack and the board disagree, which cannot happen
				// unless the board was mutated behind the solver's back
				panic(fmt.Sprintf("corrupt search state: %s", err))
			}
			st = moveX
		}
	}
	return solutions
}

// loadNextPiece selects the piece the next placement attempt will use. While
// copies of the current type remain, the next copy is forced to start
// strictly after the previous one in row-major order, starting again from
// the first rotation; this is the tie-break that keeps permutations of identical
// pieces out of the enumeration. Once the whole set is placed the automaton
// moves to saveSolution.
func (s *Solver) loadNextPiece() state {
	if s.nTypePlaced < s.set.types[s.nextIndex].mult {
		prev := s.stack[len(s.stack)-1]
		s.nextX, s.nextY = prev.X+1, prev.Y
		s.nextRotation = 0
		return tryPlacement
	}
	if len(s.stack) == s.total {
		return saveSolution
	}
	s.nextIndex++
	s.nextRotation = 0
	s.nTypePlaced = 0
	s.nextX, s.nextY = 0, 0
	return tryPlacement
}

// reset restores the solver to its initial configuration: empty board,
// empty stack, cursor on the first rotation of the first type at (0,0).
func (s *Solver) reset() {
	for i := range s.board.current {
		s.board.current[i] = 0
	}
	s.stack = s.stack[:0]
	s.nextIndex = 0
	s.nextRotation = 0
	s.nTypePlaced = 0
	s.nextX, s.nextY = 0, 0
	s.attempts, s.backtracks, s.found = 0, 0, 0
}
