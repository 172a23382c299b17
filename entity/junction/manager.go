package junction

import (
	"fmt"

	"github.com/fib-lab/gridtraffic-sim/entity/lane"
	"github.com/samber/lo"
)

// gridJunctionCount is the number of intersections in the 4x4 grid.
const gridJunctionCount = gridSide * gridSide

// Manager holds every junction in the grid, built from a lane table.
type Manager struct {
	data map[int32]*Junction
}

// NewManager builds a Junction for each of the grid's 16
// intersections that at least one lane ends at, grouping the lanes
// that lane manager reports as ending there. Intersections with no
// incoming lane get no Junction.
func NewManager(laneManager *lane.Manager) *Manager {
	m := &Manager{data: make(map[int32]*Junction, gridJunctionCount)}
	for id := int32(1); id <= gridJunctionCount; id++ {
		lanes := laneManager.LanesEndingAt(id)
		if len(lanes) == 0 {
			continue
		}
		m.data[id] = newJunction(id, lanes)
	}
	log.Infof("built %d junctions from lane table", len(m.data))
	return m
}

// Get returns the junction with id, panicking if it does not exist.
func (m *Manager) Get(id int32) *Junction {
	j, ok := m.data[id]
	if !ok {
		log.Panicf("no id %d in junction data", id)
	}
	return j
}

// GetOrError returns the junction with id, or an error if it does not
// exist.
func (m *Manager) GetOrError(id int32) (*Junction, error) {
	j, ok := m.data[id]
	if !ok {
		return nil, fmt.Errorf("no id %d in junction data", id)
	}
	return j, nil
}

// All returns every junction in the grid.
func (m *Manager) All() []*Junction {
	return lo.Values(m.data)
}
