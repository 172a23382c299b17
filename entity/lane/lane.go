// Package lane models the grid's 52 lanes: the 8 input and 10 output
// boundary lanes that connect the 4x4 intersection grid to the outside
// world, and the 34 internal lanes that connect one intersection to
// another.
package lane

import "fmt"

// Category distinguishes how a lane connects to the grid.
type Category int

const (
	// InputBoundary lanes carry vehicles from outside the grid onto
	// intersection EndIntersection (StartIntersection is 0).
	InputBoundary Category = iota
	// OutputBoundary lanes carry vehicles off intersection
	// StartIntersection and out of the grid.
	OutputBoundary
	// Internal lanes connect two intersections within the grid.
	Internal
)

func (c Category) String() string {
	switch c {
	case InputBoundary:
		return "InputBoundary"
	case OutputBoundary:
		return "OutputBoundary"
	case Internal:
		return "Internal"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Lane is one directed segment of the grid. For an Internal lane,
// StartIntersection and EndIntersection are both grid junctions
// (1..16). For an InputBoundary lane, StartIntersection is 0 (outside
// the grid) and EndIntersection is the junction it feeds. For an
// OutputBoundary lane, StartIntersection is the junction it drains and
// EndIntersection is 0.
type Lane struct {
	ID                int32
	StartIntersection int32
	EndIntersection   int32
	Length            float64
	Category          Category
}

// HasLight reports whether a traffic light governs entry onto this
// lane's destination junction. Only lanes that terminate inside the
// grid (Internal and InputBoundary) are controlled; a lane that exits
// the grid has nothing at its end to gate.
func (l Lane) HasLight() bool {
	return l.EndIntersection != 0
}
