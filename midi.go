package midi

import (
	"encoding/binary"
	"errors"
	"io"
)

const headerMagic = "MThd"

type Midi struct {
	r   Reader
	typ Type
}

// Reader is the capability set the decoders need: forward reads plus seek.
// *os.File and *bytes.Reader both satisfy it.
type Reader interface {
	io.Reader
	io.Seeker
}

func New(r Reader) *Midi {
	return &Midi{
		r: r,
	}
}

// ParseHeader checks the MThd magic, skips the header length field and
// decodes the track layout. The reader is left just past the track count.
func (m *Midi) ParseHeader() error {
	var value [4]byte
	if err := binary.Read(m.r, binary.BigEndian, &value); err != nil {
		return &IOError{Field: "magic", Err: err}
	}
	if string(value[:]) != headerMagic {
		return ErrNoHeader
	}

	// header length is always 6 for a conformant file; it is not checked
	if _, err := m.r.Seek(4, io.SeekCurrent); err != nil {
		return &IOError{Field: "length", Err: err}
	}

	typ, err := DecodeType(m.r)
	if err != nil {
		return err
	}
	m.typ = typ

	return nil
}

func (m *Midi) Type() Type {
	return m.typ
}

func (m *Midi) TrackNum() int {
	return int(m.typ.Tracks())
}

var (
	ErrNoHeader = errors.New("midi: no MThd header")
)
