package diffusion

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidExtents reports a non-positive field dimension.
	ErrInvalidExtents = errors.New("diffusion: field extents must be positive")

	// ErrInvalidRate reports a diffusion-rate shift wider than a cell.
	ErrInvalidRate = errors.New("diffusion: diffusion rate shift must be <= 31")

	// ErrAlreadyStepping reports a BeginStep while a generation is in progress.
	ErrAlreadyStepping = errors.New("diffusion: a generation is already in progress")

	// ErrBusyStepping reports a field write attempted mid-generation.
	ErrBusyStepping = errors.New("diffusion: field writes are forbidden while stepping")
)

// StabilityError reports a cell whose accumulated value left the u32 range
// at commit time. It means the configured diffusion rate is inconsistent
// with the field contents; the generation that produced it is discarded.
type StabilityError struct {
	X, Y, Z int16
	Value   int64
}

func (e *StabilityError) Error() string {
	return fmt.Sprintf("diffusion: stability violation at (%d,%d,%d): accumulated value %d outside u32 range",
		e.X, e.Y, e.Z, e.Value)
}
