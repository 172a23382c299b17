package lane

import "testing"

func TestValidateDefaultTable(t *testing.T) {
	if err := Validate(DefaultTable); err != nil {
		t.Fatalf("unexpected error validating the default table: %v", err)
	}
}

func TestValidateRejectsDuplicateID(t *testing.T) {
	table := []Lane{
		{ID: 1, StartIntersection: 0, EndIntersection: 1, Length: 100, Category: InputBoundary},
		{ID: 1, StartIntersection: 0, EndIntersection: 2, Length: 100, Category: InputBoundary},
	}
	if err := Validate(table); err == nil {
		t.Fatal("expected error for duplicate lane id")
	}
}

func TestValidateRejectsNonPositiveLength(t *testing.T) {
	table := []Lane{
		{ID: 1, StartIntersection: 0, EndIntersection: 1, Length: 0, Category: InputBoundary},
	}
	if err := Validate(table); err == nil {
		t.Fatal("expected error for non-positive length")
	}
}

func TestValidateRejectsInputBoundaryWithNonZeroStart(t *testing.T) {
	table := []Lane{
		{ID: 1, StartIntersection: 3, EndIntersection: 1, Length: 100, Category: InputBoundary},
	}
	if err := Validate(table); err == nil {
		t.Fatal("expected error: InputBoundary must have StartIntersection 0")
	}
}

func TestValidateRejectsOutputBoundaryWithNonZeroEnd(t *testing.T) {
	table := []Lane{
		{ID: 1, StartIntersection: 1, EndIntersection: 3, Length: 100, Category: OutputBoundary},
	}
	if err := Validate(table); err == nil {
		t.Fatal("expected error: OutputBoundary must have EndIntersection 0")
	}
}

func TestValidateRejectsJunctionIDOutOfRange(t *testing.T) {
	table := []Lane{
		{ID: 1, StartIntersection: 0, EndIntersection: 17, Length: 100, Category: InputBoundary},
	}
	if err := Validate(table); err == nil {
		t.Fatal("expected error: junction id 17 is out of the 1..16 grid range")
	}
}

func TestValidateRejectsInternalSelfLoop(t *testing.T) {
	table := []Lane{
		{ID: 1, StartIntersection: 5, EndIntersection: 5, Length: 100, Category: Internal},
	}
	if err := Validate(table); err == nil {
		t.Fatal("expected error: Internal lane cannot start and end at the same intersection")
	}
}

func TestValidateRejectsUnknownCategory(t *testing.T) {
	table := []Lane{
		{ID: 1, StartIntersection: 1, EndIntersection: 2, Length: 100, Category: Category(99)},
	}
	if err := Validate(table); err == nil {
		t.Fatal("expected error for unknown category")
	}
}
