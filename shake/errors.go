// SPDX-License-Identifier: MIT

package shake

import "errors"

var (
	// ErrEmptySeed is returned when a seed string has no digits.
	ErrEmptySeed = errors.New("shake: seed is empty")

	// ErrBadSeedDigit is returned when a seed string contains a non-digit.
	ErrBadSeedDigit = errors.New("shake: seed must contain only decimal digits")

	// ErrBadStrength is returned for a negative maximum strength.
	ErrBadStrength = errors.New("shake: max strength must be non-negative")

	// ErrUnknownKind is returned by ParseKind.
	ErrUnknownKind = errors.New("shake: unknown kind")
)

const (
	methodNewSeed   = "NewSeed"
	methodNew       = "New"
	methodParseKind = "ParseKind"
)
