// Package analyzer runs the Flow Analyzer: a stateless subscriber that
// turns congested TrafficUpdates into Recommendations.
package analyzer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fib-lab/gridtraffic-sim/bus"
	"github.com/fib-lab/gridtraffic-sim/clock"
	"github.com/fib-lab/gridtraffic-sim/model"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "analyzer")

// Analyzer watches simulation.updates and emits a Recommendation for
// any lane whose reported vehicle count reaches threshold.
type Analyzer struct {
	bus               bus.Bus
	threshold         uint32
	recommendedGreenT uint32
	updates           <-chan []byte
}

// New builds an Analyzer that recommends newGreenTime seconds of green
// whenever a lane's vehicle count reaches threshold.
func New(b bus.Bus, threshold, newGreenTime uint32) *Analyzer {
	return &Analyzer{bus: b, threshold: threshold, recommendedGreenT: newGreenTime}
}

// Prepare declares the analyzer's exchanges and subscribes to
// simulation updates. It must be called, across every service sharing
// this bus, before any of them calls bus.Start.
func (a *Analyzer) Prepare() error {
	for _, name := range []string{model.ExchangeTrafficUpdates, model.ExchangeRecommendations, model.ExchangeLogs} {
		if err := a.bus.DeclareExchange(name); err != nil {
			return err
		}
	}
	updates, err := a.bus.Subscribe(model.ExchangeTrafficUpdates)
	if err != nil {
		return err
	}
	a.updates = updates
	return nil
}

// Run processes simulation updates until ctx is cancelled. Malformed
// messages are logged and dropped; the subscription is never torn
// down. Prepare must have been called, and the bus started, before
// Run.
func (a *Analyzer) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case data, ok := <-a.updates:
			if !ok {
				return nil
			}
			a.handle(data)
		}
	}
}

func (a *Analyzer) handle(data []byte) {
	var update model.TrafficUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		log.WithError(err).Warn("dropping malformed traffic update")
		return
	}
	if update.VehicleCount < a.threshold {
		return
	}
	rec := model.Recommendation{
		LaneID:        update.LaneID,
		NewGreenTime:  a.recommendedGreenT,
		TimestampSecs: clock.NowSeconds(),
	}
	if err := a.bus.Publish(model.ExchangeRecommendations, rec); err != nil {
		log.WithError(err).Warn("publishing recommendation")
		return
	}
	_ = a.bus.Publish(model.ExchangeLogs, model.LogEvent{
		Source:        "FlowAnalyzer",
		Message:       fmt.Sprintf("published recommendation for lane %d", update.LaneID),
		TimestampSecs: clock.NowSeconds(),
	})
}
