// Package junction models the grid's 16 intersections: which lanes
// feed each one and how those lanes are clustered into the phase
// groups the traffic light controller cycles through.
package junction

import "github.com/fib-lab/gridtraffic-sim/entity/lane"

// Junction is one of the grid's 16 intersections, holding every lane
// that terminates there and the phase groups those lanes are
// clustered into.
type Junction struct {
	ID     int32
	Lanes  []lane.Lane
	Groups [][]int32 // lane IDs, one slice per phase group
}

// newJunction builds a Junction from the lanes ending at id, grouping
// them by approach direction.
func newJunction(id int32, lanes []lane.Lane) *Junction {
	return &Junction{
		ID:     id,
		Lanes:  lanes,
		Groups: groupLanesByDirection(lanes),
	}
}
