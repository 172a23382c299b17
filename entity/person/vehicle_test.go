package person

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/fib-lab/gridtraffic-sim/bus"
	"github.com/fib-lab/gridtraffic-sim/entity/lane"
	"github.com/fib-lab/gridtraffic-sim/model"
	"github.com/fib-lab/gridtraffic-sim/routing"
)

func TestSelectVehicleDeterministic(t *testing.T) {
	lm := lane.NewManager(lane.DefaultTable)
	planner := routing.NewPlanner(lm.InternalLanes())

	v1, err := selectVehicle(7, lm, planner, 70, 90, time.Millisecond)
	if err != nil {
		t.Fatalf("selectVehicle: %v", err)
	}
	v2, err := selectVehicle(7, lm, planner, 70, 90, time.Millisecond)
	if err != nil {
		t.Fatalf("selectVehicle: %v", err)
	}
	if v1.SpeedMPS != v2.SpeedMPS || v1.EntryLane.ID != v2.EntryLane.ID || v1.ExitLane.ID != v2.ExitLane.ID {
		t.Fatalf("same car id must select deterministically: %+v vs %+v", v1, v2)
	}
	if v1.SpeedMPS < 70 || v1.SpeedMPS > 90 {
		t.Fatalf("speed %v out of configured range", v1.SpeedMPS)
	}
	if v1.EntryLane.ID == v1.ExitLane.ID {
		t.Fatal("entry and exit lanes must differ")
	}
}

func TestVehicleDriveEmptyRoutePublishesNoTrafficUpdates(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	b := bus.NewInProcess(done)
	for _, name := range []string{model.ExchangeTrafficUpdates, model.ExchangeLogs, model.ExchangeLightStatus} {
		_ = b.DeclareExchange(name)
	}
	updates, _ := b.Subscribe(model.ExchangeTrafficUpdates)
	logs, _ := b.Subscribe(model.ExchangeLogs)
	b.Start()

	v := &Vehicle{
		CarID:      1,
		SpeedMPS:   100,
		EntryLane:  lane.Lane{ID: 1010, Length: 200, Category: lane.InputBoundary},
		ExitLane:   lane.Lane{ID: 1000, Length: 100, Category: lane.OutputBoundary},
		Route:      nil,
		pollPeriod: time.Millisecond,
	}
	occ := &occupancy{}
	lights := newLightCache()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	start := time.Now()
	v.drive(ctx, b, occ, lights)
	elapsed := time.Since(start)

	if elapsed < 2900*time.Millisecond || elapsed > 3300*time.Millisecond {
		t.Fatalf("expected ~3s total drive time, got %v", elapsed)
	}

	select {
	case <-updates:
		t.Fatal("expected zero traffic updates for an empty route")
	default:
	}

	var logCount int
	for {
		select {
		case data := <-logs:
			var evt model.LogEvent
			if err := json.Unmarshal(data, &evt); err != nil {
				t.Fatalf("unmarshal log: %v", err)
			}
			logCount++
			if logCount == 2 {
				return
			}
		case <-time.After(time.Second):
			t.Fatalf("expected 2 log events (spawn, complete), got %d", logCount)
		}
	}
}
