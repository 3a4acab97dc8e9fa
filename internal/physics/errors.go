package physics

import "errors"

// Domain errors for calculator inputs.
var (
	// ErrNonPositiveMass indicates a mass that is zero, negative or non-finite.
	ErrNonPositiveMass = errors.New("physics: mass must be positive and finite")

	// ErrNonPositiveRadius indicates a radius that is zero, negative or
	// non-finite. Zero is the point-mass singularity of g(r) = GM/r^2.
	ErrNonPositiveRadius = errors.New("physics: radius must be positive and finite")

	// ErrNonPositiveHeight indicates a body height that is zero, negative or
	// non-finite.
	ErrNonPositiveHeight = errors.New("physics: height must be positive and finite")

	// ErrNegativeRatio indicates a tidal ratio below zero, which cannot arise
	// from the tidal formula itself.
	ErrNegativeRatio = errors.New("physics: tidal ratio must be non-negative")
)
