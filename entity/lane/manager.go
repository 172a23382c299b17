package lane

import (
	"fmt"

	"github.com/samber/lo"
)

// Manager indexes a lane table by ID and by category, the way the
// grid's services need to look lanes up: the vehicle spawner needs the
// boundary lanes, the route planner needs the internal ones, the
// junction grouping needs the lanes ending at each junction, and every
// service needs ID lookup.
type Manager struct {
	byID                map[int32]Lane
	all                 []Lane
	inputBoundaryLanes  []Lane
	outputBoundaryLanes []Lane
	internalLanes       []Lane
}

// NewManager builds a Manager over table, categorizing every lane once
// up front so later lookups are plain slice/map reads.
func NewManager(table []Lane) *Manager {
	m := &Manager{
		all: table,
		byID: lo.SliceToMap(table, func(l Lane) (int32, Lane) {
			return l.ID, l
		}),
		inputBoundaryLanes:  lo.Filter(table, func(l Lane, _ int) bool { return l.Category == InputBoundary }),
		outputBoundaryLanes: lo.Filter(table, func(l Lane, _ int) bool { return l.Category == OutputBoundary }),
		internalLanes:       lo.Filter(table, func(l Lane, _ int) bool { return l.Category == Internal }),
	}
	log.Infof("loaded lane table: %d lanes (%d input boundary, %d output boundary, %d internal)",
		len(m.all), len(m.inputBoundaryLanes), len(m.outputBoundaryLanes), len(m.internalLanes))
	return m
}

// Get returns the lane with id, panicking if it is not in the table.
func (m *Manager) Get(id int32) Lane {
	l, ok := m.byID[id]
	if !ok {
		log.Panicf("no id %d in lane table", id)
	}
	return l
}

// GetOrError returns the lane with id, or an error if it is not in the
// table.
func (m *Manager) GetOrError(id int32) (Lane, error) {
	l, ok := m.byID[id]
	if !ok {
		return Lane{}, fmt.Errorf("no id %d in lane table", id)
	}
	return l, nil
}

// All returns every lane in the table.
func (m *Manager) All() []Lane { return m.all }

// InputBoundaryLanes returns the lanes vehicles may enter the grid on.
func (m *Manager) InputBoundaryLanes() []Lane { return m.inputBoundaryLanes }

// OutputBoundaryLanes returns the lanes vehicles may leave the grid on.
func (m *Manager) OutputBoundaryLanes() []Lane { return m.outputBoundaryLanes }

// InternalLanes returns the lanes connecting one junction to another,
// the graph the route planner runs Dijkstra over.
func (m *Manager) InternalLanes() []Lane { return m.internalLanes }

// LanesEndingAt returns every lane (boundary or internal) whose
// EndIntersection is junction, i.e. every lane a traffic light at that
// junction must arbitrate.
func (m *Manager) LanesEndingAt(junction int32) []Lane {
	return lo.Filter(m.all, func(l Lane, _ int) bool { return l.EndIntersection == junction })
}
