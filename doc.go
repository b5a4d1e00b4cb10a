// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package paver enumerates the tilings of a rectangular grid by a fixed
multiset of polyomino pieces: every piece must be placed, and no two pieces
may overlap. It is an exact enumeration library, not a heuristic one; the
result of a search is the complete list of distinct solutions.

Basics

Pieces are described by their ASCII silhouette, using one character for empty
cells and one for filled cells ('0' and '1' unless changed with the Chars
option). The silhouette is trimmed to its bounding box, so leading and
trailing blank rows and columns are not significant. A PieceSet groups the
silhouettes of a puzzle together with their multiplicities; silhouettes that
are equal up to rotation are merged into a single piece type whose
multiplicity is the sum of the inputs. A Solver owns a Board of the requested
dimensions and enumerates every distinct placement of the whole set with an
iterative depth-first search.

Board layout

All grids are bit-packed. A Matrix stores each row in ⌈W/64⌉ machine words
with the leftmost cell in the most significant bit, so parsing and formatting
are symmetric. The Board keeps a second, column-major copy of the same bits
in which the words of one 64-cell column span are consecutive; placing a
piece of height h is then h word operations per column span, independent of
the piece area. Pieces wider than a machine word are rejected when a set is
built, but boards of any width are supported; a placement that straddles two
column spans is carried out on both words of each row.

Memory management

The library is written in pure Go without dependencies. The solver
preallocates its placement stack and mutates a single board in place; the
only allocation performed during a search is the copy of the stack made for
each emitted solution. Backtracking reverses placements with the same
exclusive-or writes used to apply them, so a failed operation always leaves
the board unchanged.
*/
package paver
