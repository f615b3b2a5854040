package court

import "math"

// Zone is a named court region
type Zone string

const (
	ZonePaint            Zone = "paint"
	ZoneMidRangeLeft     Zone = "mid_range_left"
	ZoneMidRangeCenter   Zone = "mid_range_center"
	ZoneMidRangeRight    Zone = "mid_range_right"
	ZoneCornerThreeLeft  Zone = "corner_three_left"
	ZoneCornerThreeRight Zone = "corner_three_right"
	ZoneWingThreeLeft    Zone = "wing_three_left"
	ZoneWingThreeRight   Zone = "wing_three_right"
	ZoneTopThree         Zone = "top_three"
)

// IsThree returns true for zones behind the three-point line
func (z Zone) IsThree() bool {
	switch z {
	case ZoneCornerThreeLeft, ZoneCornerThreeRight, ZoneWingThreeLeft, ZoneWingThreeRight, ZoneTopThree:
		return true
	default:
		return false
	}
}

// Valid returns true for a known zone
func (z Zone) Valid() bool {
	switch z {
	case ZonePaint, ZoneMidRangeLeft, ZoneMidRangeCenter, ZoneMidRangeRight:
		return true
	default:
		return z.IsThree()
	}
}

// Half court geometry in feet
const (
	courtWidthFt = 50.0

	// normalized units to feet
	feetPerUnitX = 0.5
	feetPerUnitY = 0.47

	basketX = 25.0
	basketY = 5.25

	arcRadius = 23.75

	cornerLineX    = 3.0
	laneLeftX      = 17.0
	laneRightX     = 33.0
	paintDepthFeet = 19.0
)

// cornerMaxY is the depth at which the arc meets the corner lines
var cornerMaxY = basketY + math.Sqrt(arcRadius*arcRadius-(basketX-cornerLineX)*(basketX-cornerLineX))

// Classify returns the zone of a normalized canonical point.
// Boundary points belong to the three-point side of the arc and to the
// lane on their right.
func Classify(x, y float64) Zone {
	return classifyFeet(x*feetPerUnitX, y*feetPerUnitY)
}

func classifyFeet(fx, fy float64) Zone {
	corner := fy <= cornerMaxY && (fx <= cornerLineX || fx >= courtWidthFt-cornerLineX)
	if corner {
		if fx <= cornerLineX {
			return ZoneCornerThreeLeft
		}
		return ZoneCornerThreeRight
	}

	if math.Hypot(fx-basketX, fy-basketY) >= arcRadius {
		switch lane(fx) {
		case laneLeft:
			return ZoneWingThreeLeft
		case laneRight:
			return ZoneWingThreeRight
		default:
			return ZoneTopThree
		}
	}

	switch lane(fx) {
	case laneLeft:
		return ZoneMidRangeLeft
	case laneRight:
		return ZoneMidRangeRight
	}
	if fy < paintDepthFeet {
		return ZonePaint
	}
	return ZoneMidRangeCenter
}

type laneSide int

const (
	laneLeft laneSide = iota
	laneCenter
	laneRight
)

func lane(fx float64) laneSide {
	switch {
	case fx < laneLeftX:
		return laneLeft
	case fx < laneRightX:
		return laneCenter
	default:
		return laneRight
	}
}
