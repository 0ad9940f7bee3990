package timeslice

import "errors"

var (
	// ErrBadSliceCount is returned when numSlices is less than 1.
	ErrBadSliceCount = errors.New("timeslice: numSlices must be >= 1")

	// ErrBadRange is returned when the [start, end) range is empty or too
	// narrow to split into numSlices non-degenerate slices.
	ErrBadRange = errors.New("timeslice: end must leave at least one time unit per slice after start")
)
