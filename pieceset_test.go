// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package paver

import (
	"errors"
	"testing"
)

//********************************************************************************************

func TestRotationClasses(t *testing.T) {
	var classTests = []struct {
		s        string
		expected int
	}{
		{"11\n11", 1}, // full symmetry
		{"1", 1},
		{"11", 2}, // half-turn symmetry
		{"011\n110", 2},
		{"010\n111", 4},
		{"10\n11", 4},
		{"100\n111", 4},
	}
	for _, tt := range classTests {
		set, err := NewPieceSet([]PieceInput{{Ascii: tt.s, Mult: 1}})
		if err != nil {
			t.Fatalf("NewPieceSet(%q): unexpected error %s", tt.s, err)
		}
		actual := len(set.Types()[0].Rotations())
		if actual != tt.expected {
			t.Errorf("rotations of %q: expected %d, actual %d", tt.s, tt.expected, actual)
		}
	}
}

//********************************************************************************************

func TestMergeRotations(t *testing.T) {
	// the same L tromino written in two orientations merges into one type
	set, err := NewPieceSet([]PieceInput{
		{Ascii: "10\n11", Mult: 2},
		{Ascii: "11\n10", Mult: 3},
	})
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if len(set.Types()) != 1 {
		t.Fatalf("types: expected 1, actual %d", len(set.Types()))
	}
	if actual := set.Types()[0].Mult(); actual != 5 {
		t.Errorf("merged multiplicity: expected 5, actual %d", actual)
	}
	if actual := set.Count(); actual != 5 {
		t.Errorf("count: expected 5, actual %d", actual)
	}
}

func TestDistinctTypes(t *testing.T) {
	// the two chiralities of the S tetromino do not merge: rotation never
	// mirrors a piece
	set, err := NewPieceSet([]PieceInput{
		{Ascii: "011\n110", Mult: 1},
		{Ascii: "110\n011", Mult: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if len(set.Types()) != 2 {
		t.Errorf("types: expected 2, actual %d", len(set.Types()))
	}
	if actual := set.Count(); actual != 2 {
		t.Errorf("count: expected 2, actual %d", actual)
	}
}

//********************************************************************************************

func TestMultiplicityZero(t *testing.T) {
	if _, err := NewPieceSet([]PieceInput{{Ascii: "1", Mult: 0}}); !errors.Is(err, ErrMultiplicityZero) {
		t.Errorf("mult 0: expected ErrMultiplicityZero, actual %v", err)
	}
	if _, err := NewPieceSet([]PieceInput{{Ascii: "1", Mult: -1}}); !errors.Is(err, ErrMultiplicityZero) {
		t.Errorf("mult -1: expected ErrMultiplicityZero, actual %v", err)
	}
}

func TestPieceSetParseErrors(t *testing.T) {
	if _, err := NewPieceSet([]PieceInput{{Ascii: "10\n100", Mult: 1}}); !errors.Is(err, ErrInconsistentLineLength) {
		t.Errorf("ragged silhouette: expected ErrInconsistentLineLength, actual %v", err)
	}
	if _, err := NewPieceSet([]PieceInput{{Ascii: "1x", Mult: 1}}); !errors.Is(err, ErrUnexpectedCharacter) {
		t.Errorf("bad glyph: expected ErrUnexpectedCharacter, actual %v", err)
	}
}
