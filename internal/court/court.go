// Package court maps taps on a half-court diagram to normalized court
// coordinates and shot zones.
//
// Normalized coordinates run 0..100 on both axes in the attacking half court
// with the basket at the top: y = 0 is the baseline. Zone geometry is
// evaluated in feet on a 50 x 47 ft half court.
package court

import (
	"fmt"
	"math"
)

// Perspective is which team the court diagram shows attacking upward
type Perspective string

const (
	PerspectiveTeamAAttacksUp Perspective = "teamA_attacks_up"
	PerspectiveTeamBAttacksUp Perspective = "teamB_attacks_up"
)

// Valid returns true for a known perspective
func (p Perspective) Valid() bool {
	return p == PerspectiveTeamAAttacksUp || p == PerspectiveTeamBAttacksUp
}

// CourtError is a custom error type for shot mapping errors
type CourtError string

// Error implements the error interface
func (e CourtError) Error() string {
	return string(e)
}

const (
	ErrInvalidContainer   CourtError = "invalid court container"
	ErrInvalidPerspective CourtError = "invalid court perspective"
	ErrInvalidTap         CourtError = "invalid tap position"
)

// Location is a shot position in normalized coordinates with its zone
type Location struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Zone Zone    `json:"zone"`
}

// Points returns the value of a made shot from this location
func (l Location) Points() int {
	if l.Zone.IsThree() {
		return 3
	}
	return 2
}

// Reflect returns the location as seen from the opposite perspective.
// The zone is unchanged.
func (l Location) Reflect() Location {
	return Location{X: 100 - l.X, Y: 100 - l.Y, Zone: l.Zone}
}

// MapTap converts a tap inside a width x height container into a canonical
// court location. Taps outside the container are clamped to its edges.
func MapTap(pixelX, pixelY, width, height float64, perspective Perspective) (Location, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return Location{}, fmt.Errorf("%w: %vx%v", ErrInvalidContainer, width, height)
	}
	if !perspective.Valid() {
		return Location{}, fmt.Errorf("%w: %q", ErrInvalidPerspective, perspective)
	}
	if math.IsNaN(pixelX) || math.IsNaN(pixelY) {
		return Location{}, ErrInvalidTap
	}

	px := clamp(pixelX, width)
	py := clamp(pixelY, height)

	// reflect in pixel space so both perspectives produce identical floats
	if perspective == PerspectiveTeamBAttacksUp {
		px = width - px
		py = height - py
	}

	x := px / width * 100
	y := py / height * 100

	return Location{X: x, Y: y, Zone: Classify(x, y)}, nil
}

func clamp(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
