// Package routing computes shortest paths through the grid's internal
// lane graph for vehicle agents to follow.
package routing

import (
	"fmt"
	"math"

	"github.com/fib-lab/gridtraffic-sim/entity/lane"
	"github.com/fib-lab/gridtraffic-sim/utils/container"
)

// Planner finds least-length lane routes between intersections, using
// only internal lanes (boundary lanes are handled separately by the
// vehicle agent that enters and exits the grid on them).
type Planner struct {
	// adjacency maps a junction to the internal lanes departing it.
	adjacency map[int32][]lane.Lane
	junctions []int32
}

// NewPlanner builds a Planner over internalLanes, indexing them by
// their start junction for Dijkstra's relaxation step.
func NewPlanner(internalLanes []lane.Lane) *Planner {
	p := &Planner{adjacency: make(map[int32][]lane.Lane)}
	seen := make(map[int32]bool)
	for _, l := range internalLanes {
		p.adjacency[l.StartIntersection] = append(p.adjacency[l.StartIntersection], l)
		if !seen[l.StartIntersection] {
			seen[l.StartIntersection] = true
			p.junctions = append(p.junctions, l.StartIntersection)
		}
		if !seen[l.EndIntersection] {
			seen[l.EndIntersection] = true
			p.junctions = append(p.junctions, l.EndIntersection)
		}
	}
	return p
}

// FindRoute runs Dijkstra's algorithm from start to end over the
// internal lane graph and returns the ordered lanes to traverse. If
// start equals end the route is empty. Returns an error if end is
// unreachable from start.
func (p *Planner) FindRoute(start, end int32) ([]lane.Lane, error) {
	if start == end {
		return nil, nil
	}

	dist := make(map[int32]float64, len(p.junctions))
	prevLane := make(map[int32]lane.Lane)
	prevJunction := make(map[int32]int32)
	for _, j := range p.junctions {
		dist[j] = math.Inf(1)
	}
	dist[start] = 0

	pq := container.NewPriorityQueue[int32]()
	pq.HeapPush(start, 0)
	visited := make(map[int32]bool)

	for pq.Len() > 0 {
		cur, cost := pq.HeapPop()
		if cur == end {
			break
		}
		if visited[cur] {
			continue
		}
		visited[cur] = true
		if cost > dist[cur] {
			continue
		}
		for _, l := range p.adjacency[cur] {
			next := l.EndIntersection
			nextCost := cost + l.Length
			if nextCost < dist[next] {
				dist[next] = nextCost
				prevLane[next] = l
				prevJunction[next] = cur
				pq.HeapPush(next, nextCost)
			}
		}
	}

	if math.IsInf(dist[end], 1) {
		return nil, fmt.Errorf("no route from junction %d to junction %d", start, end)
	}

	var route []lane.Lane
	for cur := end; cur != start; {
		l, ok := prevLane[cur]
		if !ok {
			return nil, fmt.Errorf("no route from junction %d to junction %d", start, end)
		}
		route = append(route, l)
		cur = prevJunction[cur]
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route, nil
}
