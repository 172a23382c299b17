package person

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fib-lab/gridtraffic-sim/bus"
	"github.com/fib-lab/gridtraffic-sim/clock"
	"github.com/fib-lab/gridtraffic-sim/entity/lane"
	"github.com/fib-lab/gridtraffic-sim/model"
	"github.com/fib-lab/gridtraffic-sim/routing"
)

// Manager spawns and drives the simulation's vehicle population: one
// goroutine per vehicle, coordinating through the shared occupancy
// counters and a subscription-fed light color cache.
type Manager struct {
	bus        bus.Bus
	lanes      *lane.Manager
	planner    *routing.Planner
	minSpeed   float64
	maxSpeed   float64
	pollPeriod time.Duration
	statuses   <-chan []byte
}

// NewManager builds a vehicle Manager over lanes, routing new vehicles
// with planner and sampling their speed uniformly in
// [minSpeed, maxSpeed].
func NewManager(lanes *lane.Manager, planner *routing.Planner, b bus.Bus, minSpeed, maxSpeed float64, pollPeriod time.Duration) *Manager {
	return &Manager{
		bus:        b,
		lanes:      lanes,
		planner:    planner,
		minSpeed:   minSpeed,
		maxSpeed:   maxSpeed,
		pollPeriod: pollPeriod,
	}
}

// Prepare declares the manager's exchanges and subscribes to light
// statuses. It must be called, across every service sharing this bus,
// before any of them calls bus.Start.
func (m *Manager) Prepare() error {
	for _, name := range []string{model.ExchangeTrafficUpdates, model.ExchangeLogs, model.ExchangeLightStatus} {
		if err := m.bus.DeclareExchange(name); err != nil {
			return err
		}
	}
	statuses, err := m.bus.Subscribe(model.ExchangeLightStatus)
	if err != nil {
		return err
	}
	m.statuses = statuses
	return nil
}

// Run spawns vehicleCount vehicles and blocks until every one has
// completed its journey or ctx is cancelled. Prepare must have been
// called, and the bus started, before Run.
func (m *Manager) Run(ctx context.Context, vehicleCount int) error {
	lights := newLightCache()
	go lights.run(ctx, m.statuses)

	occ := &occupancy{}
	var wg sync.WaitGroup
	for carID := int32(1); carID <= int32(vehicleCount); carID++ {
		v, err := selectVehicle(carID, m.lanes, m.planner, m.minSpeed, m.maxSpeed, m.pollPeriod)
		if err != nil {
			log.WithError(err).Errorf("failed to route car %d", carID)
			continue
		}
		wg.Add(1)
		go func(v *Vehicle) {
			defer wg.Done()
			v.drive(ctx, m.bus, occ, lights)
		}(v)
	}
	wg.Wait()

	return m.bus.Publish(model.ExchangeLogs, model.LogEvent{
		Source:        "Simulation",
		Message:       fmt.Sprintf("simulation complete: %d vehicles dispatched", vehicleCount),
		TimestampSecs: clock.NowSeconds(),
	})
}
