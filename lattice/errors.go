// SPDX-License-Identifier: MIT

package lattice

import "errors"

// Sentinel errors returned by Build. Callers branch with errors.Is; the
// returned errors carry the method and parameter context via %w.
var (
	// ErrBadDimension indicates a non-positive width or height.
	ErrBadDimension = errors.New("lattice: dimension must be positive")

	// ErrBadDensity indicates a non-positive point spacing.
	ErrBadDensity = errors.New("lattice: density must be positive")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("lattice: invalid option supplied")

	// ErrUnknownLayout indicates a layout name that ParseLayout does not know.
	ErrUnknownLayout = errors.New("lattice: unknown layout")
)

// method names used as error prefixes
const (
	methodBuild       = "Build"
	methodParseLayout = "ParseLayout"
)
