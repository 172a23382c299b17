package task

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fib-lab/gridtraffic-sim/utils/config"
)

func TestNewContextRejectsInvalidLaneTableOverride(t *testing.T) {
	// category: 0 is InputBoundary, which must have startintersection 0;
	// this override sets it to 3, violating entity/lane.Validate.
	const invalidTable = `
- id: 1
  startintersection: 3
  endintersection: 1
  length: 100
  category: 0
`
	path := filepath.Join(t.TempDir(), "lanes.yaml")
	if err := os.WriteFile(path, []byte(invalidTable), 0o644); err != nil {
		t.Fatalf("writing test lane table: %v", err)
	}

	_, err := NewContext(config.Config{Input: config.Input{LaneTableFile: path}})
	if err == nil {
		t.Fatal("expected NewContext to reject an invalid lane table override")
	}
	if !strings.Contains(err.Error(), "invalid lane table") {
		t.Fatalf("expected an invalid-lane-table error, got: %v", err)
	}
}

func TestNewContextAcceptsDefaultTable(t *testing.T) {
	ctx, err := NewContext(config.Config{})
	if err != nil {
		t.Fatalf("unexpected error building Context from the default lane table: %v", err)
	}
	ctx.Close()
}
