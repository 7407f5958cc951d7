package tapevm

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/reusee/tapevm/tapecode"
)

var snapshotEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Errorf("cbor enc mode: %w", err))
	}
	snapshotEncMode = em
}

type snapshot struct {
	Name          string `cbor:"1,keyasint"`
	Code          []byte `cbor:"2,keyasint"`
	AllowUnclosed bool   `cbor:"3,keyasint,omitempty"`
	PC            int    `cbor:"4,keyasint"`
	Cursor        int    `cbor:"5,keyasint"`
	Steps         uint64 `cbor:"6,keyasint"`
	Cells         []byte `cbor:"7,keyasint"`
	BlockSize     int    `cbor:"8,keyasint"`
	Growth        string `cbor:"9,keyasint"`
}

// Snapshot writes the program and the execution state. Streams are not saved.
func (m *Machine) Snapshot(w io.Writer) error {
	if m.Program == nil {
		return ErrNoProgram
	}
	return snapshotEncMode.NewEncoder(w).Encode(snapshot{
		Name:          m.Program.Name,
		Code:          m.Program.Symbols(),
		AllowUnclosed: m.Program.Options.AllowUnclosed,
		PC:            m.PC,
		Cursor:        m.Cursor,
		Steps:         m.Steps,
		Cells:         m.Tape.Cells,
		BlockSize:     m.Tape.BlockSize,
		Growth:        string(m.Tape.Growth),
	})
}

// Restore replaces the program and state of m with a snapshot.
func (m *Machine) Restore(r io.Reader) error {
	var snap snapshot
	if err := cbor.NewDecoder(r).Decode(&snap); err != nil {
		return fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}

	growth, err := ParseGrowth(snap.Growth)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}
	program, err := tapecode.Load(snap.Name, snap.Code, tapecode.Options{
		AllowUnclosed: snap.AllowUnclosed,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}
	if program.Len() != len(snap.Code) {
		return fmt.Errorf("%w: code contains non-instruction bytes", ErrBadSnapshot)
	}
	if snap.PC < 0 || snap.PC > program.Len() {
		return fmt.Errorf("%w: pc %d out of range", ErrBadSnapshot, snap.PC)
	}
	if snap.BlockSize <= 0 || len(snap.Cells) == 0 {
		return fmt.Errorf("%w: empty tape", ErrBadSnapshot)
	}
	if snap.Cursor < 0 || snap.Cursor >= len(snap.Cells) {
		return fmt.Errorf("%w: cursor %d out of range", ErrBadSnapshot, snap.Cursor)
	}

	m.Program = program
	m.Tape = &Tape{
		Cells:     snap.Cells,
		BlockSize: snap.BlockSize,
		Growth:    growth,
	}
	m.PC = snap.PC
	m.Cursor = snap.Cursor
	m.Steps = snap.Steps
	m.Logger.Info("restored",
		"program", program.Name,
		"pc", m.PC,
		"steps", m.Steps,
	)
	return nil
}
