// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package paver

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// Format writes the ASCII form of the matrix: Height lines of Width
// characters separated by '\n', without a trailing newline. The output of
// Format round-trips through ParseMatrix.
func (m *Matrix) Format(w io.Writer, options ...func(*configs)) error {
	c := makeconfigs(options...)
	buf := bufio.NewWriter(w)
	rd := m.Reader()
	row := 0
	for _, y, v, ok := rd.Next(); ok; _, y, v, ok = rd.Next() {
		if y != row {
			buf.WriteByte('\n')
			row = y
		}
		if v {
			buf.WriteByte(c.one)
		} else {
			buf.WriteByte(c.zero)
		}
	}
	return buf.Flush()
}

func (m *Matrix) String() string {
	var sb strings.Builder
	m.Format(&sb)
	return sb.String()
}

// Format writes the ASCII form of the board, in the same format as
// Matrix.Format.
func (b *Board) Format(w io.Writer, options ...func(*configs)) error {
	return b.Sync().Format(w, options...)
}

func (b *Board) String() string {
	var sb strings.Builder
	b.Format(&sb)
	return sb.String()
}

// ******************************************************************************************************

// letters label the successive placements of a rendered solution.
const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// FPrintSolution renders a solution as a board where the cells of the k-th
// placement are drawn with the k-th letter and free cells with a dot.
func (s *Solver) FPrintSolution(w io.Writer, sol Solution) error {
	grid := make([][]byte, s.board.height)
	for i := range grid {
		grid[i] = make([]byte, s.board.width)
		for j := range grid[i] {
			grid[i][j] = '.'
		}
	}
	for k, pl := range sol {
		p := s.set.types[pl.Index].rotations[pl.Rotation]
		rd := p.store.Reader()
		for x, y, v, ok := rd.Next(); ok; x, y, v, ok = rd.Next() {
			if v {
				grid[pl.Y+y][pl.X+x] = letters[k%len(letters)]
			}
		}
	}
	buf := bufio.NewWriter(w)
	for i, line := range grid {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(line)
	}
	return buf.Flush()
}

// PrintSolution renders a solution on the standard output.
func (s *Solver) PrintSolution(sol Solution) {
	s.FPrintSolution(os.Stdout, sol)
	fmt.Println()
}

// FPrintPlacements writes one line per placement of a solution, in the order
// the pieces were placed.
func (s *Solver) FPrintPlacements(w io.Writer, sol Solution) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for k, pl := range sol {
		fmt.Fprintf(tw, "%c\ttype %d\t[%d]\t#%d\tat (%d,%d)\n", letters[k%len(letters)], pl.Index, pl.Rotation, pl.Ordinal, pl.X, pl.Y)
	}
	return tw.Flush()
}

// ******************************************************************************************************

// stats returns information about the last search.
func (s *Solver) stats() string {
	res := fmt.Sprintf("Board:      %d x %d\n", s.board.width, s.board.height)
	res += fmt.Sprintf("Types:      %d\n", len(s.set.types))
	res += fmt.Sprintf("Pieces:     %d\n", s.total)
	res += fmt.Sprintf("Attempts:   %d\n", s.attempts)
	res += fmt.Sprintf("Backtracks: %d\n", s.backtracks)
	res += fmt.Sprintf("Solutions:  %d", s.found)
	return res
}

// Stats returns a textual description of the solver together with counters
// from its last search: placement attempts, backtracks and solutions found.
func (s *Solver) Stats() string {
	return s.stats()
}

// PrintStats outputs the solver statistics on the standard output.
func (s *Solver) PrintStats() {
	fmt.Println("==============")
	fmt.Println(s.stats())
	fmt.Println("==============")
}
