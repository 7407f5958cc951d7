package tapevm

import (
	"errors"
	"fmt"

	"github.com/reusee/tapevm/tapecode"
)

var (
	ErrInputExhausted = errors.New("input exhausted")
	ErrOutputFailure  = errors.New("output failure")
	ErrBadSnapshot    = errors.New("bad snapshot")
	ErrNoProgram      = errors.New("no program loaded")
)

// RuntimeError locates a failed instruction.
type RuntimeError struct {
	PC     int
	Opcode tapecode.Opcode
	Pos    tapecode.Pos
	Err    error
}

func (r *RuntimeError) Error() string {
	if r.Pos.Source != nil {
		name := r.Pos.Source.Name
		if name == "" {
			name = "<input>"
		}
		return fmt.Sprintf("%s at pc %d (%s:%d:%d): %v",
			r.Opcode, r.PC, name, r.Pos.Line, r.Pos.Column, r.Err)
	}
	return fmt.Sprintf("%s at pc %d: %v", r.Opcode, r.PC, r.Err)
}

func (r *RuntimeError) Unwrap() error {
	return r.Err
}
