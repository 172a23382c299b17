package routing

import (
	"testing"

	"github.com/fib-lab/gridtraffic-sim/entity/lane"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlanner() *Planner {
	m := lane.NewManager(lane.DefaultTable)
	return NewPlanner(m.InternalLanes())
}

func TestFindRouteSameJunction(t *testing.T) {
	p := newTestPlanner()
	route, err := p.FindRoute(5, 5)
	require.NoError(t, err)
	assert.Empty(t, route)
}

func TestFindRouteConnected(t *testing.T) {
	p := newTestPlanner()
	route, err := p.FindRoute(1, 16)
	require.NoError(t, err)
	require.NotEmpty(t, route)

	cur := int32(1)
	var total float64
	for _, l := range route {
		require.Equalf(t, cur, l.StartIntersection, "route is not contiguous: expected lane starting at %d, got lane %+v", cur, l)
		cur = l.EndIntersection
		total += l.Length
	}
	assert.Equal(t, int32(16), cur)
	// The shortest path 1->2->6->7->8->12->16 costs 1500, well under
	// this naive upper bound; Dijkstra must not return a longer detour.
	assert.LessOrEqualf(t, total, 2000.0, "route length %v looks too long for a shortest path", total)
}

func TestFindRouteKnownShortestDistance(t *testing.T) {
	p := newTestPlanner()
	// 1 -> 2 is a direct internal lane of length 300; Dijkstra must
	// never find anything shorter than the direct edge.
	route, err := p.FindRoute(1, 2)
	require.NoError(t, err)
	require.Len(t, route, 1)
	assert.Equal(t, 300.0, route[0].Length)
}
