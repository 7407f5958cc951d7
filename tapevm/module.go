package tapevm

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/tapevm/logs"
	"github.com/reusee/tapevm/tapecode"
	"github.com/reusee/tapevm/tapeconfigs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs tapeconfigs.Module
}

func (Module) Config(
	tapeSize tapeconfigs.TapeSize,
	growth tapeconfigs.Growth,
	trace tapeconfigs.Trace,
) Config {
	g, err := ParseGrowth(string(growth))
	if err != nil {
		panic(err)
	}
	return Config{
		TapeSize: int(tapeSize),
		Growth:   g,
		Trace:    bool(trace),
	}
}

func (Module) LoadOptions(
	allowUnclosed tapeconfigs.AllowUnclosed,
) tapecode.Options {
	return tapecode.Options{
		AllowUnclosed: bool(allowUnclosed),
	}
}

// Load reads and validates a program file.
type Load func(path string) (*tapecode.Program, error)

func (Module) Load(
	options tapecode.Options,
	logger logs.Logger,
) Load {
	return func(path string) (*tapecode.Program, error) {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		program, err := tapecode.Load(path, src, options)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded",
			"path", path,
			"bytes", len(src),
			"instructions", program.Len(),
		)
		return program, nil
	}
}

// New builds a machine. program may be nil if the machine is to be restored;
// such a machine reports halted and Run returns ErrNoProgram until Restore.
type New func(program *tapecode.Program, input io.Reader, output io.Writer) *Machine

func (Module) New(
	config Config,
	logger logs.Logger,
) New {
	return func(program *tapecode.Program, input io.Reader, output io.Writer) *Machine {
		return NewMachine(program, input, output, config, logger)
	}
}
