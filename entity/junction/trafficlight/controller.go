// Package trafficlight runs the per-junction phase controller: one
// goroutine per junction round-robins its lane groups through Green
// and all-red clearance, while a single listener applies flow-analyzer
// recommendations directly against the shared light map.
package trafficlight

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/fib-lab/gridtraffic-sim/bus"
	"github.com/fib-lab/gridtraffic-sim/clock"
	"github.com/fib-lab/gridtraffic-sim/entity/junction"
	"github.com/fib-lab/gridtraffic-sim/entity/lane"
	"github.com/fib-lab/gridtraffic-sim/model"
)

// Controller owns the shared lane-color map every junction's phase
// goroutine and the recommendation listener write to. Vehicles never
// read it; they see colors only through published LightStatus events.
type Controller struct {
	bus               bus.Bus
	junctions         *junction.Manager
	greenDuration     time.Duration
	clearanceDuration time.Duration

	mu     sync.Mutex
	colors map[int32]string
	recs   <-chan []byte
}

// NewController builds a Controller over junctions, with every
// controlled lane starting Red. greenDuration and clearanceDuration
// are the hold times of a phase's green and all-red clearance steps.
func NewController(junctions *junction.Manager, b bus.Bus, greenDuration, clearanceDuration time.Duration) *Controller {
	c := &Controller{
		bus:               b,
		junctions:         junctions,
		greenDuration:     greenDuration,
		clearanceDuration: clearanceDuration,
		colors:            make(map[int32]string),
	}
	for _, j := range junctions.All() {
		for _, l := range j.Lanes {
			c.colors[l.ID] = model.StatusRed
		}
	}
	return c
}

// Prepare declares the controller's exchanges and subscribes to
// recommendations. It must be called, across every service sharing
// this bus, before any of them calls bus.Start.
func (c *Controller) Prepare() error {
	for _, name := range []string{model.ExchangeLogs, model.ExchangeRecommendations, model.ExchangeLightStatus} {
		if err := c.bus.DeclareExchange(name); err != nil {
			return err
		}
	}
	recs, err := c.bus.Subscribe(model.ExchangeRecommendations)
	if err != nil {
		return err
	}
	c.recs = recs
	return nil
}

// Run spawns one phase-cycling goroutine per junction plus the
// recommendation listener, and blocks until ctx is done. Prepare must
// have been called, and the bus started, before Run.
func (c *Controller) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	for _, j := range c.junctions.All() {
		wg.Add(1)
		go func(j *junction.Junction) {
			defer wg.Done()
			c.runPhaseCycle(ctx, j)
		}(j)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.runRecommendationListener(ctx, c.recs)
	}()

	<-ctx.Done()
	wg.Wait()
	return nil
}

// runPhaseCycle round-robins j's phase groups: one group Green while
// every other lane at the junction is Red, then an all-red clearance
// step, then on to the next group.
func (c *Controller) runPhaseCycle(ctx context.Context, j *junction.Junction) {
	if len(j.Groups) == 0 {
		return
	}
	groupIndex := 0
	for {
		green := j.Groups[groupIndex]
		greenSet := make(map[int32]bool, len(green))
		for _, id := range green {
			greenSet[id] = true
		}

		var greenLanes, redLanes []int32
		c.mu.Lock()
		for _, l := range j.Lanes {
			if greenSet[l.ID] {
				c.colors[l.ID] = model.StatusGreen
				greenLanes = append(greenLanes, l.ID)
			} else {
				c.colors[l.ID] = model.StatusRed
				redLanes = append(redLanes, l.ID)
			}
		}
		c.mu.Unlock()
		c.publishStatuses(j.Lanes)
		c.publishLog(fmt.Sprintf("Junction-%d", j.ID), fmt.Sprintf("phase %d active: green lanes %v, red lanes %v", groupIndex, greenLanes, redLanes))

		if !c.sleep(ctx, c.greenDuration) {
			return
		}

		c.mu.Lock()
		for _, l := range j.Lanes {
			c.colors[l.ID] = model.StatusRed
		}
		c.mu.Unlock()
		c.publishStatuses(j.Lanes)

		if !c.sleep(ctx, c.clearanceDuration) {
			return
		}
		groupIndex = (groupIndex + 1) % len(j.Groups)
	}
}

// runRecommendationListener applies every recommendation directly to
// the shared color map, forcing the named lane Green immediately. The
// override is not queued against the owning junction's phase state:
// the next phase-cycle write for that lane (green step or clearance)
// silently overwrites it, exactly as the prototype this behavior is
// carried over from.
func (c *Controller) runRecommendationListener(ctx context.Context, recs <-chan []byte) {
	for {
		select {
		case <-ctx.Done():
			return
		case data, ok := <-recs:
			if !ok {
				return
			}
			var rec model.Recommendation
			if err := json.Unmarshal(data, &rec); err != nil {
				log.WithError(err).Warn("dropping malformed recommendation")
				continue
			}
			c.mu.Lock()
			_, tracked := c.colors[rec.LaneID]
			if tracked {
				c.colors[rec.LaneID] = model.StatusGreen
			}
			c.mu.Unlock()
			if !tracked {
				continue
			}
			if err := c.bus.Publish(model.ExchangeLightStatus, model.LightStatus{LaneID: rec.LaneID, Status: model.StatusGreen}); err != nil {
				log.WithError(err).Warn("publishing light status after recommendation override")
			}
			c.publishLog(fmt.Sprintf("TrafficLight-%d", rec.LaneID), "set to Green per recommendation")
		}
	}
}

// publishStatuses reads each lane's current color under the lock and
// publishes a LightStatus event for it.
func (c *Controller) publishStatuses(lanes []lane.Lane) {
	for _, l := range lanes {
		c.mu.Lock()
		color := c.colors[l.ID]
		c.mu.Unlock()
		if err := c.bus.Publish(model.ExchangeLightStatus, model.LightStatus{LaneID: l.ID, Status: color}); err != nil {
			log.WithError(err).Warn("publishing light status")
		}
	}
}

// sleep blocks for d or until ctx is cancelled, reporting whether it
// completed without cancellation.
func (c *Controller) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-time.After(d):
		return true
	case <-ctx.Done():
		return false
	}
}

func (c *Controller) publishLog(source, message string) {
	_ = c.bus.Publish(model.ExchangeLogs, model.LogEvent{
		Source:        source,
		Message:       message,
		TimestampSecs: clock.NowSeconds(),
	})
}
