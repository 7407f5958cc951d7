package tapecode

import (
	"errors"
	"strings"
)

// Program is immutable once loaded.
type Program struct {
	Name    string
	Code    []Opcode
	Jumps   JumpTable
	Offsets []int
	Options Options
	source  *Source
}

func Load(name string, src []byte, options Options) (*Program, error) {
	source := NewSource(name, src)
	ops, offsets := filter(src)
	jumps, err := BuildJumpTable(ops, options)
	if err != nil {
		var bracketErr *BracketError
		if errors.As(err, &bracketErr) {
			return nil, WithPos(err, source.Pos(offsets[bracketErr.Index]))
		}
		return nil, err
	}
	return &Program{
		Name:    name,
		Code:    ops,
		Jumps:   jumps,
		Offsets: offsets,
		Options: options,
		source:  source,
	}, nil
}

func (p *Program) Len() int {
	return len(p.Code)
}

// Pos maps an instruction index back to the source.
func (p *Program) Pos(index int) Pos {
	if p.source == nil || index < 0 || index >= len(p.Offsets) {
		return Pos{}
	}
	return p.source.Pos(p.Offsets[index])
}

// Symbols returns the canonical source of the program, comments stripped.
func (p *Program) Symbols() []byte {
	ret := make([]byte, len(p.Code))
	for i, op := range p.Code {
		ret[i] = op.Symbol()
	}
	return ret
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, op := range p.Code {
		sb.WriteByte(op.Symbol())
	}
	return sb.String()
}
