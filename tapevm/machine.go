package tapevm

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/reusee/tapevm/logs"
	"github.com/reusee/tapevm/tapecode"
)

type Machine struct {
	Program *tapecode.Program
	Tape    *Tape
	PC      int
	Cursor  int
	Steps   uint64
	Input   io.Reader
	Output  io.Writer
	Logger  logs.Logger
	Trace   bool
	buf     [1]byte
}

type Config struct {
	TapeSize int
	Growth   Growth
	Trace    bool
}

type flusher interface {
	Flush() error
}

func NewMachine(
	program *tapecode.Program,
	input io.Reader,
	output io.Writer,
	config Config,
	logger logs.Logger,
) *Machine {
	if input == nil {
		input = bytes.NewReader(nil)
	}
	if output == nil {
		output = io.Discard
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Machine{
		Program: program,
		Tape:    NewTape(config.TapeSize, config.Growth),
		Input:   input,
		Output:  output,
		Logger:  logger,
		Trace:   config.Trace,
	}
}

// Halted reports true for a machine without a program.
func (m *Machine) Halted() bool {
	return m.Program == nil || m.PC >= m.Program.Len()
}

type State struct {
	PC     int
	Cursor int
	Steps  uint64
	Tape   []byte
}

func (m *Machine) State() State {
	return State{
		PC:     m.PC,
		Cursor: m.Cursor,
		Steps:  m.Steps,
		Tape:   m.Tape.Bytes(),
	}
}

// Cell returns the value under the cursor.
func (m *Machine) Cell() byte {
	return m.Tape.Cells[m.Cursor]
}

func (m *Machine) Run() error {
	if m.Program == nil {
		return ErrNoProgram
	}
	m.Logger.Info("run",
		"program", m.Program.Name,
		"instructions", m.Program.Len(),
		"tape", m.Tape.Len(),
		"growth", m.Tape.Growth,
	)
	for !m.Halted() {
		if err := m.Step(); err != nil {
			// reported by the caller
			return err
		}
	}
	if err := m.flush(); err != nil {
		return err
	}
	m.Logger.Info("halt",
		"steps", m.Steps,
		"pc", m.PC,
		"cursor", m.Cursor,
		"tape", m.Tape.Len(),
	)
	return nil
}

// Step executes one instruction. It is a no-op on a halted machine.
func (m *Machine) Step() error {
	if m.Halted() {
		return nil
	}
	pc := m.PC
	op := m.Program.Code[pc]
	cells := m.Tape.Cells

	switch op {

	case tapecode.OpMoveRight:
		m.Cursor++
		if m.Cursor == m.Tape.Len() {
			n := m.Tape.grow()
			m.Logger.Debug("tape grown",
				"added", n,
				"len", m.Tape.Len(),
			)
		}

	case tapecode.OpMoveLeft:
		if m.Cursor > 0 {
			m.Cursor--
		}

	case tapecode.OpIncrement:
		cells[m.Cursor]++

	case tapecode.OpDecrement:
		cells[m.Cursor]--

	case tapecode.OpOutput:
		m.buf[0] = cells[m.Cursor]
		n, err := m.Output.Write(m.buf[:])
		if err == nil && n != 1 {
			err = io.ErrShortWrite
		}
		if err != nil {
			return m.fail(pc, fmt.Errorf("%w: %w", ErrOutputFailure, err))
		}

	case tapecode.OpInput:
		if err := m.flush(); err != nil {
			return m.fail(pc, err)
		}
		if _, err := io.ReadFull(m.Input, m.buf[:]); err != nil {
			return m.fail(pc, fmt.Errorf("%w: %w", ErrInputExhausted, err))
		}
		cells[m.Cursor] = m.buf[0]

	case tapecode.OpJumpIfZero:
		if cells[m.Cursor] == 0 {
			m.jump(pc)
		}

	case tapecode.OpJumpIfNonZero:
		if cells[m.Cursor] != 0 {
			m.jump(pc)
		}

	}

	if m.Trace {
		m.Logger.Debug("step",
			"pc", pc,
			"op", op,
			"cursor", m.Cursor,
			"cell", m.Tape.Cells[m.Cursor],
		)
	}

	m.PC++
	m.Steps++
	return nil
}

func (m *Machine) jump(pc int) {
	target, ok := m.Program.Jumps.Partner(pc)
	if !ok {
		// unclosed opener: no instruction follows its body
		m.PC = m.Program.Len() - 1
		return
	}
	m.PC = target
}

func (m *Machine) flush() error {
	f, ok := m.Output.(flusher)
	if !ok {
		return nil
	}
	if err := f.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputFailure, err)
	}
	return nil
}

func (m *Machine) fail(pc int, err error) error {
	return &RuntimeError{
		PC:     pc,
		Opcode: m.Program.Code[pc],
		Pos:    m.Program.Pos(pc),
		Err:    err,
	}
}
