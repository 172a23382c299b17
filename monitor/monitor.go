// Package monitor runs the System Monitor: it subscribes to every log
// event published on the bus and renders each one to the operator.
package monitor

import (
	"context"
	"encoding/json"

	"github.com/fib-lab/gridtraffic-sim/bus"
	"github.com/fib-lab/gridtraffic-sim/model"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "monitor")

// Monitor renders every LogEvent published across the system.
type Monitor struct {
	bus  bus.Bus
	logs <-chan []byte
}

// New builds a Monitor over b.
func New(b bus.Bus) *Monitor {
	return &Monitor{bus: b}
}

// Prepare declares the logs exchange and subscribes to it. It must be
// called, across every service sharing this bus, before any of them
// calls bus.Start.
func (m *Monitor) Prepare() error {
	if err := m.bus.DeclareExchange(model.ExchangeLogs); err != nil {
		return err
	}
	logs, err := m.bus.Subscribe(model.ExchangeLogs)
	if err != nil {
		return err
	}
	m.logs = logs
	return nil
}

// Run renders each log event until ctx is cancelled. Prepare must have
// been called, and the bus started, before Run.
func (m *Monitor) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case data, ok := <-m.logs:
			if !ok {
				return nil
			}
			m.render(data)
		}
	}
}

func (m *Monitor) render(data []byte) {
	var evt model.LogEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		log.WithError(err).Warn("dropping malformed log event")
		return
	}
	log.WithFields(logrus.Fields{
		"source":    evt.Source,
		"timestamp": evt.TimestampSecs,
	}).Info(evt.Message)
}
