// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package paver

import (
	"fmt"
	"log"
)

const _DEBUG bool = false
const _LOGLEVEL int = 0

// ******************************************************************************************************

// check verifies that the board contents equal the union of the placements
// currently on the stack, replayed on an empty board, and that copies of a
// type appear in strictly increasing row-major order. It is used in tests
// and after the fact when chasing a corruption.
func (s *Solver) check() error {
	fresh := NewBoard(s.board.width, s.board.height)
	for i, pl := range s.stack {
		p := s.set.types[pl.Index].rotations[pl.Rotation]
		if err := fresh.Insert(p, pl.X, pl.Y); err != nil {
			return fmt.Errorf("stack entry %d (%s) cannot be replayed: %w", i, pl, err)
		}
		if pl.Ordinal > 0 {
			prev := s.stack[i-1]
			if prev.Index != pl.Index || prev.Ordinal != pl.Ordinal-1 {
				return fmt.Errorf("stack entry %d (%s) does not follow copy #%d", i, pl, pl.Ordinal-1)
			}
			if prev.Y > pl.Y || (prev.Y == pl.Y && prev.X >= pl.X) {
				return fmt.Errorf("stack entry %d (%s) not after (%d,%d)", i, pl, prev.X, prev.Y)
			}
		}
	}
	if !fresh.Equal(s.board) {
		if _LOGLEVEL > 0 {
			log.Printf("board:\n%s\nreplayed:\n%s\n", s.board, fresh)
		}
		return fmt.Errorf("board does not match the %d placements on the stack", len(s.stack))
	}
	return nil
}
