// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package paver

import (
	"errors"
	"strings"
	"testing"
)

//********************************************************************************************

func TestParsePiece(t *testing.T) {
	var pieceTests = []struct {
		s                   string
		width, height, area int
	}{
		{"010\n111", 3, 2, 4},
		{"0000\n0110\n0110\n0000", 2, 2, 4},
		{"1", 1, 1, 1},
		{"11111", 5, 1, 5},
		{"00\n00", 0, 0, 0},
	}
	for _, tt := range pieceTests {
		p, err := ParsePiece(tt.s)
		if err != nil {
			t.Fatalf("ParsePiece(%q): unexpected error %s", tt.s, err)
		}
		if p.Width() != tt.width || p.Height() != tt.height || p.Area() != tt.area {
			t.Errorf("ParsePiece(%q): expected %d x %d area %d, actual %d x %d area %d",
				tt.s, tt.width, tt.height, tt.area, p.Width(), p.Height(), p.Area())
		}
	}
}

func TestParsePieceTooWide(t *testing.T) {
	if _, err := ParsePiece(strings.Repeat("1", wordSize+1)); !errors.Is(err, ErrTooWide) {
		t.Errorf("piece of width %d: expected ErrTooWide, actual %v", wordSize+1, err)
	}
	if _, err := ParsePiece(strings.Repeat("1", wordSize)); err != nil {
		t.Errorf("piece of width %d: unexpected error %v", wordSize, err)
	}
}

//********************************************************************************************

func TestRotate(t *testing.T) {
	p, err := ParsePiece("100\n111")
	if err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	q := p.Rotate()
	if actual := q.store.String(); actual != "11\n10\n10" {
		t.Errorf("rotate: expected %q, actual %q", "11\n10\n10", actual)
	}
}

func TestRotateProperties(t *testing.T) {
	var rotateTests = []string{
		"010\n111",
		"100\n111",
		"11111",
		"011\n110",
		"11\n11",
		"1",
	}
	for _, tt := range rotateTests {
		p, err := ParsePiece(tt)
		if err != nil {
			t.Fatalf("ParsePiece(%q): unexpected error %s", tt, err)
		}
		q := p.Rotate()
		if q.Width() != p.Height() || q.Height() != p.Width() {
			t.Errorf("rotate(%q): expected %d x %d, actual %d x %d", tt, p.Height(), p.Width(), q.Width(), q.Height())
		}
		if q.Area() != p.Area() {
			t.Errorf("rotate(%q): expected area %d, actual %d", tt, p.Area(), q.Area())
		}
		if full := q.Rotate().Rotate().Rotate(); !full.Equal(p) {
			t.Errorf("rotate⁴(%q): expected the original piece, actual %q", tt, full.store.String())
		}
	}
}

//********************************************************************************************

func TestPieceEqual(t *testing.T) {
	a, _ := ParsePiece("010\n111")
	b, _ := ParsePiece("\n010\n111\n")
	c, _ := ParsePiece("111\n010")
	if !a.Equal(b) {
		t.Errorf("same silhouette: expected equal")
	}
	if a.Equal(c) {
		t.Errorf("flipped silhouette: expected not equal")
	}
}
