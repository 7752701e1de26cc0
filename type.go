package midi

import (
	"fmt"
)

// Layout is how the track chunks of a file relate to each other.
type Layout uint8

const (
	// Clip is a single track in a single chunk (format 0).
	Clip Layout = iota
	// MultiTrack chunks are parallel tracks played together (format 1).
	MultiTrack
	// SequentialTrack chunks are consecutive parts of one track (format 2).
	SequentialTrack
)

func (l Layout) String() string {
	switch l {
	case Clip:
		return "clip"
	case MultiTrack:
		return "multi-track"
	case SequentialTrack:
		return "sequential-track"
	}
	return fmt.Sprintf("Layout(%d)", uint8(l))
}

const (
	formatMin = 0
	formatMax = 2
)

// Type is the decoded layout together with its track count.
// Only DecodeType produces non-zero values, so a Clip always has one track.
type Type struct {
	layout Layout
	tracks uint16
}

func (t Type) Layout() Layout {
	return t.layout
}

func (t Type) Tracks() uint16 {
	return t.tracks
}

func (t Type) String() string {
	switch t.layout {
	case MultiTrack:
		return fmt.Sprintf("%d parallel tracks", t.tracks)
	case SequentialTrack:
		return fmt.Sprintf("%d sequential tracks", t.tracks)
	}
	return "single track"
}

// DecodeType reads the format selector and the track count, both
// big-endian uint16, and classifies them. r must be positioned just after
// the header length field. On success r has advanced 4 bytes.
func DecodeType(r Reader) (Type, error) {
	format, err := readField(r, "format")
	if err != nil {
		return Type{}, err
	}

	switch format {
	case 0:
		n, err := readField(r, "tracks")
		if err != nil {
			return Type{}, err
		}
		if n != 1 {
			return Type{}, &FormatError{Format: format, Tracks: n}
		}
		return Type{layout: Clip, tracks: 1}, nil
	case 1:
		n, err := readField(r, "tracks")
		if err != nil {
			return Type{}, err
		}
		return Type{layout: MultiTrack, tracks: n}, nil
	case 2:
		n, err := readField(r, "tracks")
		if err != nil {
			return Type{}, err
		}
		return Type{layout: SequentialTrack, tracks: n}, nil
	}

	return Type{}, &OutOfRangeError{Field: "format", Min: formatMin, Max: formatMax, Got: format}
}
