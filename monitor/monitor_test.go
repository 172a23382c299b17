package monitor

import (
	"encoding/json"
	"testing"

	"github.com/fib-lab/gridtraffic-sim/model"
)

func TestRenderMalformedEventDoesNotPanic(t *testing.T) {
	m := &Monitor{}
	m.render([]byte(`not json`))
}

func TestRenderWellFormedEvent(t *testing.T) {
	m := &Monitor{}
	data, err := json.Marshal(model.LogEvent{Source: "Car-1", Message: "hello", TimestampSecs: 5})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	m.render(data)
}
