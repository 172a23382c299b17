package person

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fib-lab/gridtraffic-sim/bus"
	"github.com/fib-lab/gridtraffic-sim/clock"
	"github.com/fib-lab/gridtraffic-sim/entity/lane"
	"github.com/fib-lab/gridtraffic-sim/model"
	"github.com/fib-lab/gridtraffic-sim/routing"
	"github.com/fib-lab/gridtraffic-sim/utils/randengine"
	"github.com/samber/lo"
)

// occupancy is the shared per-lane vehicle count every vehicle agent
// atomically updates on entering and leaving a lane.
type occupancy struct {
	counts sync.Map // lane id (int32) -> *int32
}

func (o *occupancy) slot(laneID int32) *int32 {
	v, _ := o.counts.LoadOrStore(laneID, new(int32))
	return v.(*int32)
}

func (o *occupancy) enter(laneID int32) uint32 {
	return uint32(atomic.AddInt32(o.slot(laneID), 1))
}

func (o *occupancy) leave(laneID int32) uint32 {
	return uint32(atomic.AddInt32(o.slot(laneID), -1))
}

// lightCache is a vehicle's local view of every lane's light color,
// kept current by draining the light_status subscription. It mirrors
// the original prototype's per-consumer LightStatusMap: each vehicle
// tracks light colors independently rather than sharing a map with the
// controller, since in a multi-process deployment there is no shared
// memory to read.
type lightCache struct {
	mu     sync.Mutex
	colors map[int32]string
}

func newLightCache() *lightCache {
	return &lightCache{colors: make(map[int32]string)}
}

func (c *lightCache) run(ctx context.Context, statuses <-chan []byte) {
	for {
		select {
		case <-ctx.Done():
			return
		case data, ok := <-statuses:
			if !ok {
				return
			}
			var status model.LightStatus
			if err := json.Unmarshal(data, &status); err != nil {
				continue
			}
			c.mu.Lock()
			c.colors[status.LaneID] = status.Status
			c.mu.Unlock()
		}
	}
}

func (c *lightCache) color(laneID int32) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if color, ok := c.colors[laneID]; ok {
		return color
	}
	return model.StatusRed
}

// Vehicle is one simulated car: a fixed speed, an entry and exit
// boundary lane chosen at spawn, and the internal-lane route between
// them.
type Vehicle struct {
	CarID      int32
	SpeedMPS   float64
	EntryLane  lane.Lane
	ExitLane   lane.Lane
	Route      []lane.Lane
	pollPeriod time.Duration
}

// selectVehicle picks a vehicle's speed and boundary lanes using a
// PRNG seeded deterministically from carID, and routes it across the
// grid's internal lanes between those boundaries.
func selectVehicle(carID int32, lm *lane.Manager, planner *routing.Planner, minSpeed, maxSpeed float64, pollPeriod time.Duration) (*Vehicle, error) {
	rng := randengine.New(42 + uint64(carID))
	speed := rng.Float64RangeSafe(minSpeed, maxSpeed)

	entries := lm.InputBoundaryLanes()
	exits := lm.OutputBoundaryLanes()
	entry := entries[rng.IntnSafe(len(entries))]
	exit := exits[rng.IntnSafe(len(exits))]
	for exit.ID == entry.ID {
		exit = exits[rng.IntnSafe(len(exits))]
	}

	route, err := planner.FindRoute(entry.EndIntersection, exit.StartIntersection)
	if err != nil {
		return nil, fmt.Errorf("car %d: %w", carID, err)
	}

	return &Vehicle{
		CarID:      carID,
		SpeedMPS:   speed,
		EntryLane:  entry,
		ExitLane:   exit,
		Route:      route,
		pollPeriod: pollPeriod,
	}, nil
}

// drive runs the vehicle's full journey: the entry lane, each lane of
// its route gated by that lane's light, then the exit lane. It
// publishes a LogEvent at spawn and completion and a TrafficUpdate on
// every lane enter/leave.
func (v *Vehicle) drive(ctx context.Context, b bus.Bus, occ *occupancy, lights *lightCache) {
	source := fmt.Sprintf("Car-%d", v.CarID)

	routeIDs := lo.Map(v.Route, func(l lane.Lane, _ int) int32 { return l.ID })
	v.publishLog(b, source, fmt.Sprintf(
		"Generated vehicle with speed %.2f m/s; Entry Lane %d (Inter. %d), Exit Lane %d (Inter. %d); Lane Route: %v",
		v.SpeedMPS, v.EntryLane.ID, v.EntryLane.EndIntersection, v.ExitLane.ID, v.ExitLane.StartIntersection, routeIDs))

	start := time.Now()
	var waitTime, driveTime float64

	if !v.sleepSeconds(ctx, v.EntryLane.Length/v.SpeedMPS) {
		return
	}
	driveTime += v.EntryLane.Length / v.SpeedMPS

	for _, l := range v.Route {
		count := occ.enter(l.ID)
		v.publishUpdate(b, l.ID, count)

		waitStart := time.Now()
		for lights.color(l.ID) != model.StatusGreen {
			if !v.sleepDuration(ctx, v.pollPeriod) {
				return
			}
		}
		waitTime += time.Since(waitStart).Seconds()

		segTime := l.Length / v.SpeedMPS
		if !v.sleepSeconds(ctx, segTime) {
			return
		}
		driveTime += segTime

		count = occ.leave(l.ID)
		v.publishUpdate(b, l.ID, count)
	}

	exitTime := v.ExitLane.Length / v.SpeedMPS
	if !v.sleepSeconds(ctx, exitTime) {
		return
	}
	driveTime += exitTime

	total := time.Since(start).Seconds()
	v.publishLog(b, source, fmt.Sprintf("Completed journey: Wait=%.2fs, Drive=%.2fs, Total=%.2fs", waitTime, driveTime, total))
}

func (v *Vehicle) sleepSeconds(ctx context.Context, seconds float64) bool {
	return v.sleepDuration(ctx, time.Duration(seconds*float64(time.Second)))
}

func (v *Vehicle) sleepDuration(ctx context.Context, d time.Duration) bool {
	select {
	case <-time.After(d):
		return true
	case <-ctx.Done():
		return false
	}
}

func (v *Vehicle) publishUpdate(b bus.Bus, laneID int32, count uint32) {
	if err := b.Publish(model.ExchangeTrafficUpdates, model.TrafficUpdate{
		LaneID:        laneID,
		VehicleCount:  count,
		TimestampSecs: clock.NowSeconds(),
	}); err != nil {
		log.WithError(err).Warn("publishing traffic update")
	}
}

func (v *Vehicle) publishLog(b bus.Bus, source, message string) {
	if err := b.Publish(model.ExchangeLogs, model.LogEvent{
		Source:        source,
		Message:       message,
		TimestampSecs: clock.NowSeconds(),
	}); err != nil {
		log.WithError(err).Warn("publishing log event")
	}
}
