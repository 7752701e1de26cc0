package midi

import (
	"encoding/binary"
)

// Unsigned lists the field widths ReadBE can decode.
type Unsigned interface {
	uint16 | uint32
}

// ReadBE reads exactly one big-endian T from r. A short read is an error,
// never a zero-padded value. On failure r is not rewound.
func ReadBE[T Unsigned](r Reader) (T, error) {
	var v T
	if err := binary.Read(r, binary.BigEndian, &v); err != nil {
		return 0, &IOError{Err: err}
	}
	return v, nil
}

// readField is ReadBE[uint16] with the field name recorded on failure.
func readField(r Reader, field string) (uint16, error) {
	v, err := ReadBE[uint16](r)
	if err != nil {
		err.(*IOError).Field = field
		return 0, err
	}
	return v, nil
}
