package tapecode

import (
	"errors"
	"fmt"
)

var ErrUnbalancedBracket = errors.New("unbalanced bracket")

// JumpTable maps a bracket's instruction index to its partner's index.
type JumpTable map[int]int

type Options struct {
	// AllowUnclosed keeps openers that never meet a closer instead of
	// rejecting the program.
	AllowUnclosed bool
}

// BracketError reports the instruction index of the unpaired bracket.
type BracketError struct {
	Index  int
	Opcode Opcode
}

func (b *BracketError) Error() string {
	if b.Opcode == OpJumpIfNonZero {
		return fmt.Sprintf("%s: no opener for closer (instruction %d)", ErrUnbalancedBracket, b.Index)
	}
	return fmt.Sprintf("%s: opener never closed (instruction %d)", ErrUnbalancedBracket, b.Index)
}

func (b *BracketError) Unwrap() error {
	return ErrUnbalancedBracket
}

func BuildJumpTable(ops []Opcode, options Options) (JumpTable, error) {
	table := make(JumpTable)
	var stack []int
	for i, op := range ops {
		switch op {

		case OpJumpIfZero:
			stack = append(stack, i)

		case OpJumpIfNonZero:
			if len(stack) == 0 {
				return nil, &BracketError{
					Index:  i,
					Opcode: op,
				}
			}
			j := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			table[j] = i
			table[i] = j

		}
	}

	if len(stack) > 0 && !options.AllowUnclosed {
		return nil, &BracketError{
			Index:  stack[len(stack)-1],
			Opcode: OpJumpIfZero,
		}
	}

	return table, nil
}

// Partner returns the paired index of the bracket at i.
func (j JumpTable) Partner(i int) (int, bool) {
	p, ok := j[i]
	return p, ok
}
