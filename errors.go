// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package paver

import "errors"

// Errors reported while building matrices, pieces and piece sets. They are
// all recoverable; the caller decides whether to retry with fixed input.
var (
	// ErrMultiplicityZero is returned by NewPieceSet when an input declares
	// zero copies of a piece.
	ErrMultiplicityZero = errors.New("piece multiplicity must be positive")

	// ErrInconsistentLineLength is returned when the non-blank lines of an
	// ASCII grid do not all have the same length.
	ErrInconsistentLineLength = errors.New("inconsistent line length")

	// ErrUnexpectedCharacter is returned when an ASCII grid contains a
	// character that is neither of the two configured glyphs.
	ErrUnexpectedCharacter = errors.New("unexpected character")

	// ErrTooWide is returned when a piece silhouette is wider than one
	// machine word.
	ErrTooWide = errors.New("piece wider than one machine word")

	// ErrTrimTooLarge is returned by Trim when the requested removal exceeds
	// the dimensions of the matrix.
	ErrTrimTooLarge = errors.New("trim larger than matrix")
)

// Placement signals returned by the Board. They drive the solver state
// machine and never escape Solve. An operation returning one of these leaves
// the board unchanged.
var (
	// ErrWidthOverflow reports a placement extending past the right border.
	ErrWidthOverflow = errors.New("placement overflows board width")

	// ErrHeightOverflow reports a placement extending past the bottom border.
	ErrHeightOverflow = errors.New("placement overflows board height")

	// ErrWidthAndHeightOverflow reports a placement extending past both the
	// right and the bottom border.
	ErrWidthAndHeightOverflow = errors.New("placement overflows board width and height")

	// ErrInsertCollision reports an insertion over an already occupied cell.
	ErrInsertCollision = errors.New("placement collides with occupied cell")

	// ErrRemoveMismatch reports a removal of a piece that is not on the
	// board at the given position.
	ErrRemoveMismatch = errors.New("removal does not match board content")
)
