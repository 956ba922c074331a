package parse

import "tlog.app/go/errors"

// Spaces is a set of bytes below 64 treated as token separators.
type Spaces uint64

// SpaceAll is skipped before every token: space, tab, CR and LF.
// Any other byte, \v and \f included, is significant.
var SpaceAll = NewSpaces(' ', '\t', '\r', '\n')

func NewSpaces(set ...byte) Spaces {
	var s Spaces

	for _, c := range set {
		if c >= 64 {
			panic(errors.New("space byte out of range: %q", c))
		}

		s |= 1 << c
	}

	return s
}

func (s Spaces) Has(c byte) bool {
	return c < 64 && s&(1<<c) != 0
}

// Skip returns the first offset at or after st holding a byte not in s.
func (s Spaces) Skip(b []byte, st int) int {
	for st < len(b) && s.Has(b[st]) {
		st++
	}

	return st
}
