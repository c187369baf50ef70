package palette

import "fmt"

// OutOfRangeError is returned when a slot outside [0, Size) is requested.
type OutOfRangeError struct {
	Index int
	Size  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("palette index %d out of range [0, %d)", e.Index, e.Size)
}
