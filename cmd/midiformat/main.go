package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"

	midi "github.com/sago35/midiformat"
)

type errKind int

const (
	argumentErr errKind = iota
	filesystemErr
	fileErr
	parseErr
)

func (k errKind) String() string {
	switch k {
	case argumentErr:
		return "argument error"
	case filesystemErr:
		return "filesystem error"
	case fileErr:
		return "input file error"
	}
	return "file parsing error"
}

type appError struct {
	kind errKind
	err  error
}

func (e *appError) Error() string {
	return fmt.Sprintf("%s: %v", e.kind, e.err)
}

func (e *appError) Unwrap() error {
	return e.err
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("midiformat: ")

	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string, w io.Writer) error {
	if len(args) != 1 {
		return &appError{kind: argumentErr, err: errors.New("usage: midiformat <file.mid>")}
	}

	f, err := os.Open(args[0])
	if err != nil {
		return &appError{kind: filesystemErr, err: fmt.Errorf("opening input: %w", err)}
	}
	defer f.Close()

	m := midi.New(f)
	if err := m.ParseHeader(); err != nil {
		return classify(err)
	}

	style := lipgloss.NewRenderer(w).NewStyle().Bold(true)
	fmt.Fprintln(w, style.Render(report(m.Type())))
	return nil
}

// classify sorts header failures into container problems and format problems.
func classify(err error) error {
	if errors.Is(err, midi.ErrNoHeader) {
		return &appError{kind: fileErr, err: err}
	}
	var ioErr *midi.IOError
	if errors.As(err, &ioErr) && (ioErr.Field == "magic" || ioErr.Field == "length") {
		return &appError{kind: fileErr, err: fmt.Errorf("reading header: %w", err)}
	}
	return &appError{kind: parseErr, err: fmt.Errorf("reading MIDI format: %w", err)}
}

func report(t midi.Type) string {
	switch t.Layout() {
	case midi.MultiTrack:
		return fmt.Sprintf("Detected %d parallel tracks, defaulting to track 1", t.Tracks())
	case midi.SequentialTrack:
		return fmt.Sprintf("Detected %d sequential tracks", t.Tracks())
	}
	return "Detected single track file format"
}
