// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package paver

// configs stores the values of the configurable parameters used when reading
// and writing ASCII grids.
type configs struct {
	zero byte // glyph for an empty cell
	one  byte // glyph for a filled cell
}

func makeconfigs(options ...func(*configs)) *configs {
	c := &configs{zero: '0', one: '1'}
	for _, f := range options {
		f(c)
	}
	return c
}

// Chars is a configuration option (function). Used as a parameter in the
// parsing and formatting functions it sets the pair of characters standing
// for empty and filled cells. The default pair is '0' and '1'. The option is
// ignored when the two characters are equal, since parsing would then be
// ambiguous.
func Chars(zero, one byte) func(*configs) {
	return func(c *configs) {
		if zero != one {
			c.zero, c.one = zero, one
		}
	}
}
