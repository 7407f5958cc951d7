package tapevm

import "fmt"

const DefaultTapeSize = 10

type Growth string

const (
	// GrowBlock appends a block the size of the initial tape.
	GrowBlock Growth = "block"
	// GrowDouble appends a block the size of the current tape.
	GrowDouble Growth = "double"
)

func ParseGrowth(str string) (Growth, error) {
	switch Growth(str) {
	case "", GrowBlock:
		return GrowBlock, nil
	case GrowDouble:
		return GrowDouble, nil
	}
	return "", fmt.Errorf("unknown growth policy: %s", str)
}

type Tape struct {
	Cells     []byte
	BlockSize int
	Growth    Growth
}

func NewTape(size int, growth Growth) *Tape {
	if size <= 0 {
		size = DefaultTapeSize
	}
	if growth == "" {
		growth = GrowBlock
	}
	return &Tape{
		Cells:     make([]byte, size),
		BlockSize: size,
		Growth:    growth,
	}
}

func (t *Tape) Len() int {
	return len(t.Cells)
}

func (t *Tape) grow() int {
	n := t.BlockSize
	if t.Growth == GrowDouble {
		n = len(t.Cells)
	}
	t.Cells = append(t.Cells, make([]byte, n)...)
	return n
}

func (t *Tape) Bytes() []byte {
	ret := make([]byte, len(t.Cells))
	copy(ret, t.Cells)
	return ret
}
