package junction

import (
	"math"
	"sort"

	"github.com/fib-lab/gridtraffic-sim/entity/lane"
)

// gridSide is the grid's row/column size; intersection IDs 1..16
// are laid out row-major over a gridSide x gridSide square.
const gridSide = 4

// groupAngleThreshold is the maximum separation, in degrees, between a
// lane's approach angle and a group's running average angle for the
// lane to join that group rather than start a new one.
const groupAngleThreshold = 20.0

// intersectionCoords maps a junction ID (1..16) to its (row, col)
// position in the 4x4 grid.
func intersectionCoords(inter int32) (float64, float64) {
	row := float64((inter - 1) / gridSide)
	col := float64((inter - 1) % gridSide)
	return row, col
}

// approachAngle computes the angle, in degrees [0, 360), at which l
// approaches its destination junction. Internal lanes derive the angle
// from the start and end junctions' grid coordinates. Boundary lanes
// have no start junction, so they default to an angle based on which
// edge of the grid they enter from.
func approachAngle(l lane.Lane) float64 {
	if l.StartIntersection != 0 {
		sx, sy := intersectionCoords(l.StartIntersection)
		ex, ey := intersectionCoords(l.EndIntersection)
		angle := math.Atan2(ey-sy, ex-sx) * 180 / math.Pi
		if angle < 0 {
			angle += 360
		}
		return angle
	}
	row, col := intersectionCoords(l.EndIntersection)
	switch {
	case row == 0:
		return 90 // top row: entering from the north
	case row == gridSide-1:
		return 270 // bottom row: entering from the south
	case col == 0:
		return 0 // left column: entering from the west
	case col == gridSide-1:
		return 180 // right column: entering from the east
	default:
		return 90
	}
}

// groupLanesByDirection clusters lanes approaching the same junction
// into phase groups. Lanes whose approach angle falls within
// groupAngleThreshold degrees of a group's running average join that
// group; anything else starts a new one. Groups are returned ordered
// by average angle, giving a stable, reproducible phase cycle order.
func groupLanesByDirection(lanes []lane.Lane) [][]int32 {
	type group struct {
		avgAngle float64
		laneIDs  []int32
	}
	var groups []*group

	for _, l := range lanes {
		angle := approachAngle(l)
		placed := false
		for _, g := range groups {
			if math.Abs(angle-g.avgAngle) <= groupAngleThreshold {
				n := float64(len(g.laneIDs))
				g.avgAngle = (g.avgAngle*n + angle) / (n + 1)
				g.laneIDs = append(g.laneIDs, l.ID)
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, &group{avgAngle: angle, laneIDs: []int32{l.ID}})
		}
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].avgAngle < groups[j].avgAngle })

	out := make([][]int32, len(groups))
	for i, g := range groups {
		out[i] = g.laneIDs
	}
	return out
}
