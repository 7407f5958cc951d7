package cmds

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage(w io.Writer) {
	printCommands(w, p.commands, 0)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		cmd := commands[name]
		if cmd == nil || slices.Contains(cmd.Aliases, name) {
			continue
		}
		names := append([]string{name}, cmd.Aliases...)
		line := indent + strings.Join(names, ", ")
		if cmd.Func.IsValid() {
			for i := range cmd.Func.Type().NumIn() {
				line += " <" + cmd.Func.Type().In(i).String() + ">"
			}
		}
		if cmd.Description != "" {
			line += "\t" + cmd.Description
		}
		fmt.Fprintln(w, line)
		if len(cmd.Subs) > 0 {
			printCommands(w, cmd.Subs, depth+1)
		}
	}
}
