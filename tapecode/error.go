package tapecode

import (
	"bytes"
	"fmt"
	"strings"
)

type Source struct {
	Name  string
	Lines []string
	src   []byte
}

func NewSource(name string, src []byte) *Source {
	var lines []string
	for line := range bytes.Lines(src) {
		lines = append(lines, strings.TrimRight(string(line), "\r\n"))
	}
	return &Source{
		Name:  name,
		Lines: lines,
		src:   src,
	}
}

// Pos converts a byte offset to a 1-based line and column.
func (s *Source) Pos(offset int) Pos {
	offset = max(0, min(offset, len(s.src)))
	before := s.src[:offset]
	lineStart := bytes.LastIndexByte(before, '\n') + 1
	return Pos{
		Source: s,
		Offset: offset,
		Line:   1 + bytes.Count(before, []byte{'\n'}),
		Column: offset - lineStart + 1,
	}
}

type Pos struct {
	Source *Source
	Offset int
	Line   int
	Column int
}

type PosError struct {
	Err error
	Pos Pos
}

func (p *PosError) Error() string {
	if p.Pos.Source == nil {
		return p.Err.Error()
	}

	var sb strings.Builder
	name := p.Pos.Source.Name
	if name == "" {
		name = "<input>"
	}
	fmt.Fprintf(&sb, "%s at %s:%d:%d\n", p.Err.Error(), name, p.Pos.Line, p.Pos.Column)

	idx := p.Pos.Line - 1
	if idx >= 0 && idx < len(p.Pos.Source.Lines) {
		line := p.Pos.Source.Lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")
		for i := 0; i < p.Pos.Column-1 && i < len(line); i++ {
			if line[i] == '\t' {
				sb.WriteByte('\t')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (p *PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, pos Pos) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*PosError); ok {
		return err
	}
	return &PosError{
		Err: err,
		Pos: pos,
	}
}
