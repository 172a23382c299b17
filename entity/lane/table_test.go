package lane

import "testing"

func TestDefaultTableCounts(t *testing.T) {
	var input, output, internal int
	seen := make(map[int32]bool)
	for _, l := range DefaultTable {
		if seen[l.ID] {
			t.Fatalf("duplicate lane id %d", l.ID)
		}
		seen[l.ID] = true
		switch l.Category {
		case InputBoundary:
			input++
		case OutputBoundary:
			output++
		case Internal:
			internal++
		}
	}
	if len(DefaultTable) != 52 {
		t.Fatalf("expected 52 lanes, got %d", len(DefaultTable))
	}
	if input != 8 {
		t.Errorf("expected 8 input boundary lanes, got %d", input)
	}
	if output != 10 {
		t.Errorf("expected 10 output boundary lanes, got %d", output)
	}
	if internal != 34 {
		t.Errorf("expected 34 internal lanes, got %d", internal)
	}
}

func TestManagerGet(t *testing.T) {
	m := NewManager(DefaultTable)
	l := m.Get(1000)
	if l.StartIntersection != 1 || l.Category != OutputBoundary {
		t.Fatalf("unexpected lane 1000: %+v", l)
	}
	if _, err := m.GetOrError(9999); err == nil {
		t.Fatal("expected error for unknown lane id")
	}
}

func TestManagerCategorySplits(t *testing.T) {
	m := NewManager(DefaultTable)
	if got := len(m.InputBoundaryLanes()); got != 8 {
		t.Errorf("InputBoundaryLanes: got %d, want 8", got)
	}
	if got := len(m.OutputBoundaryLanes()); got != 10 {
		t.Errorf("OutputBoundaryLanes: got %d, want 10", got)
	}
	if got := len(m.InternalLanes()); got != 34 {
		t.Errorf("InternalLanes: got %d, want 34", got)
	}
}

func TestLanesEndingAt(t *testing.T) {
	m := NewManager(DefaultTable)
	lanes := m.LanesEndingAt(1)
	for _, l := range lanes {
		if l.EndIntersection != 1 {
			t.Errorf("LanesEndingAt(1) returned lane ending at %d", l.EndIntersection)
		}
	}
	if len(lanes) == 0 {
		t.Fatal("expected at least one lane ending at junction 1")
	}
}
