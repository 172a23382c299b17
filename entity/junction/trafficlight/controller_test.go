package trafficlight

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/fib-lab/gridtraffic-sim/bus"
	"github.com/fib-lab/gridtraffic-sim/entity/junction"
	"github.com/fib-lab/gridtraffic-sim/entity/lane"
	"github.com/fib-lab/gridtraffic-sim/model"
)

func TestControllerPublishesInitialPhase(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	b := bus.NewInProcess(done)

	lm := lane.NewManager(lane.DefaultTable)
	jm := junction.NewManager(lm)

	for _, name := range []string{model.ExchangeLogs, model.ExchangeRecommendations, model.ExchangeLightStatus} {
		if err := b.DeclareExchange(name); err != nil {
			t.Fatalf("DeclareExchange: %v", err)
		}
	}
	statuses, err := b.Subscribe(model.ExchangeLightStatus)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	c := NewController(jm, b, 50*time.Millisecond, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	b.Start()
	go c.runPhaseCycle(ctx, jm.Get(1))

	select {
	case data := <-statuses:
		var status model.LightStatus
		if err := json.Unmarshal(data, &status); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if status.Status != model.StatusGreen && status.Status != model.StatusRed {
			t.Fatalf("unexpected status value: %q", status.Status)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for light status")
	}
}

func TestRecommendationOverridesTrackedLane(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	b := bus.NewInProcess(done)

	lm := lane.NewManager(lane.DefaultTable)
	jm := junction.NewManager(lm)
	for _, name := range []string{model.ExchangeLogs, model.ExchangeRecommendations, model.ExchangeLightStatus} {
		_ = b.DeclareExchange(name)
	}
	statuses, _ := b.Subscribe(model.ExchangeLightStatus)

	c := NewController(jm, b, time.Hour, time.Hour)
	targetLane := jm.Get(1).Lanes[0].ID

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	recs, err := b.Subscribe(model.ExchangeRecommendations)
	if err != nil {
		t.Fatalf("Subscribe recs: %v", err)
	}
	b.Start()
	go c.runRecommendationListener(ctx, recs)

	if err := b.Publish(model.ExchangeRecommendations, model.Recommendation{LaneID: targetLane, NewGreenTime: 40}); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	deadline := time.After(time.Second)
	for {
		select {
		case data := <-statuses:
			var status model.LightStatus
			if err := json.Unmarshal(data, &status); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if status.LaneID == targetLane && status.Status == model.StatusGreen {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for recommendation override")
		}
	}
}
