package tensor

import "fmt"

// ShapeError reports a tensor whose layout does not match what an
// operation requires: ragged row input, a shape/data length mismatch,
// or an index outside the tensor's bounds.
type ShapeError struct {
	Op      string // Operation that detected the problem (e.g., "FromRows")
	Want    Shape  // Expected shape, nil when not applicable
	Got     Shape  // Observed shape, nil when not applicable
	Details string // Additional details
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Want != nil || e.Got != nil {
		return fmt.Sprintf("%s: shape mismatch: want %v, got %v: %s", e.Op, e.Want, e.Got, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Details)
}
