package tapecode

// Filter drops every byte that is not an instruction symbol.
func Filter(src []byte) []Opcode {
	ops, _ := filter(src)
	return ops
}

// filter also returns the source offset of each kept instruction.
func filter(src []byte) (ops []Opcode, offsets []int) {
	for i, b := range src {
		op, ok := Parse(b)
		if !ok {
			continue
		}
		ops = append(ops, op)
		offsets = append(offsets, i)
	}
	return
}
