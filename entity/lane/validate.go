package lane

import "fmt"

// gridJunctionMin and gridJunctionMax bound the valid intersection IDs
// of the 4x4 grid. Kept here rather than importing entity/junction
// (which itself depends on this package) to avoid a cycle.
const (
	gridJunctionMin = 1
	gridJunctionMax = 16
)

// Validate checks table against the invariants every lane must satisfy
// regardless of where the table came from (the built-in default or an
// operator-supplied override file): unique IDs, a positive length, and
// start/end intersections consistent with the lane's Category. A
// malformed table is a fatal startup condition, so callers should treat
// a non-nil error as unrecoverable.
func Validate(table []Lane) error {
	seen := make(map[int32]bool, len(table))
	for _, l := range table {
		if seen[l.ID] {
			return fmt.Errorf("lane %d: duplicate id", l.ID)
		}
		seen[l.ID] = true

		if l.Length <= 0 {
			return fmt.Errorf("lane %d: length must be positive, got %v", l.ID, l.Length)
		}

		switch l.Category {
		case InputBoundary:
			if l.StartIntersection != 0 {
				return fmt.Errorf("lane %d: InputBoundary must have StartIntersection 0, got %d", l.ID, l.StartIntersection)
			}
			if !isGridJunction(l.EndIntersection) {
				return fmt.Errorf("lane %d: InputBoundary EndIntersection %d out of range %d..%d", l.ID, l.EndIntersection, gridJunctionMin, gridJunctionMax)
			}
		case OutputBoundary:
			if l.EndIntersection != 0 {
				return fmt.Errorf("lane %d: OutputBoundary must have EndIntersection 0, got %d", l.ID, l.EndIntersection)
			}
			if !isGridJunction(l.StartIntersection) {
				return fmt.Errorf("lane %d: OutputBoundary StartIntersection %d out of range %d..%d", l.ID, l.StartIntersection, gridJunctionMin, gridJunctionMax)
			}
		case Internal:
			if !isGridJunction(l.StartIntersection) || !isGridJunction(l.EndIntersection) {
				return fmt.Errorf("lane %d: Internal lane must have both intersections in %d..%d, got %d -> %d",
					l.ID, gridJunctionMin, gridJunctionMax, l.StartIntersection, l.EndIntersection)
			}
			if l.StartIntersection == l.EndIntersection {
				return fmt.Errorf("lane %d: Internal lane cannot start and end at the same intersection %d", l.ID, l.StartIntersection)
			}
		default:
			return fmt.Errorf("lane %d: unknown category %v", l.ID, l.Category)
		}
	}
	return nil
}

func isGridJunction(id int32) bool {
	return id >= gridJunctionMin && id <= gridJunctionMax
}
