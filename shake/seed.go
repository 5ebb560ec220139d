// SPDX-License-Identifier: MIT

package shake

import (
	"fmt"
)

// Seed is an endless stream of decimal digits that cycles over its source
// string. It is not safe for concurrent use.
type Seed struct {
	digits []int
	pos    int
}

// NewSeed validates s and returns a stream positioned at its first digit.
func NewSeed(s string) (*Seed, error) {
	if s == "" {
		return nil, fmt.Errorf("%s: %w", methodNewSeed, ErrEmptySeed)
	}
	digits := make([]int, len(s))
	for i, r := range []byte(s) {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%s: %q at %d: %w", methodNewSeed, r, i, ErrBadSeedDigit)
		}
		digits[i] = int(r - '0')
	}
	return &Seed{digits: digits}, nil
}

// Next returns the current digit and advances, wrapping at the end.
func (s *Seed) Next() int {
	d := s.digits[s.pos]
	s.pos++
	if s.pos == len(s.digits) {
		s.pos = 0
	}
	return d
}

// Signed consumes two digits: the first gives the magnitude (halved), the
// parity of the second gives the sign. Results lie in [-4, 4].
func (s *Seed) Signed() int {
	mag := s.Next() / 2
	if s.Next()%2 == 1 {
		return -mag
	}
	return mag
}

// Reset rewinds the stream to the first digit.
func (s *Seed) Reset() { s.pos = 0 }
