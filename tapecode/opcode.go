package tapecode

// Opcode values are the source symbols themselves.
type Opcode byte

const (
	OpMoveRight     Opcode = 0x3e // >
	OpMoveLeft      Opcode = 0x3c // <
	OpIncrement     Opcode = 0x2b // +
	OpDecrement     Opcode = 0x2d // -
	OpOutput        Opcode = 0x2e // .
	OpInput         Opcode = 0x2c // ,
	OpJumpIfZero    Opcode = 0x5b // [
	OpJumpIfNonZero Opcode = 0x5d // ]
)

var opcodeNames = map[Opcode]string{
	OpMoveRight:     "move-right",
	OpMoveLeft:      "move-left",
	OpIncrement:     "increment",
	OpDecrement:     "decrement",
	OpOutput:        "output",
	OpInput:         "input",
	OpJumpIfZero:    "jump-if-zero",
	OpJumpIfNonZero: "jump-if-nonzero",
}

// Parse reports whether b is one of the eight instruction symbols.
func Parse(b byte) (Opcode, bool) {
	switch op := Opcode(b); op {
	case OpMoveRight, OpMoveLeft,
		OpIncrement, OpDecrement,
		OpOutput, OpInput,
		OpJumpIfZero, OpJumpIfNonZero:
		return op, true
	}
	return 0, false
}

func (o Opcode) Symbol() byte {
	return byte(o)
}

func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return "invalid"
}

func (o Opcode) IsBracket() bool {
	return o == OpJumpIfZero || o == OpJumpIfNonZero
}
