package midi

import (
	"fmt"
)

// IOError reports that the stream could not supply a field's bytes.
// Err is io.EOF when nothing was left and io.ErrUnexpectedEOF on a short read.
type IOError struct {
	Field string
	Err   error
}

func (e *IOError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("midi: read: %v", e.Err)
	}
	return fmt.Sprintf("midi: reading %s: %v", e.Field, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// OutOfRangeError reports a field value outside [Min, Max].
type OutOfRangeError struct {
	Field    string
	Min, Max uint16
	Got      uint16
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("midi: %s out of range: expected %d to %d but got %d", e.Field, e.Min, e.Max, e.Got)
}

// FormatError reports a format 0 header whose track count is not 1.
type FormatError struct {
	Format uint16
	Tracks uint16
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("midi: format %d claims a single track but encodes %d tracks", e.Format, e.Tracks)
}
