package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/tapevm/cmds"
	"github.com/reusee/tapevm/debugs"
	"github.com/reusee/tapevm/logs"
	"github.com/reusee/tapevm/modes"
	"github.com/reusee/tapevm/tapevm"
	"github.com/tebeka/atexit"
)

var (
	snapshotPath = cmds.Var[string]("-snapshot")
	resumePath   = cmds.Var[string]("-resume")
	checkOnly    = cmds.Switch("-check")
	tapAtHalt    = cmds.Switch("-tap")
	rawInput     = cmds.Switch("-raw")
	printTheory  = cmds.Switch("-theory")
	files        []string
)

func init() {
	cmds.Describe("-snapshot", "write the machine state to a file when the run ends")
	cmds.Describe("-resume", "continue from a snapshot file instead of loading a program")
	cmds.Describe("-check", "validate the program without running it")
	cmds.Describe("-tap", "inspect the final state in a starlark REPL")
	cmds.Describe("-raw", "put a terminal stdin in raw mode, one keypress per input")
	cmds.Describe("-theory", "print the machine model and exit")
	cmds.Positional(func(arg string) error {
		files = append(files, arg)
		return nil
	})
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: tapevm [flags] <program file>")
	cmds.GlobalExecutor.PrintUsage(os.Stderr)
	atexit.Exit(2)
}

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
	}
	if *printTheory {
		fmt.Print(tapevm.Theory)
		atexit.Exit(0)
	}
	if len(files) > 1 || len(files) == 0 && *resumePath == "" {
		usage()
	}

	scope := dscope.New(
		new(tapevm.Module),
		new(debugs.Module),
		modes.ForProduction(),
	)

	// typed config values panic on invalid files, so check before resolving them
	if err := checkConfigs(scope); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		load tapevm.Load,
		newMachine tapevm.New,
		tap debugs.Tap,
	) {
		ctx, _ := newSpan(context.Background(), "run")

		fail := func(err error) {
			logger.DebugContext(ctx, "failed", "error", logs.WrapSpan(ctx, err))
			fmt.Fprintln(os.Stderr, err)
			atexit.Exit(1)
		}

		output := setupOutput()
		input, err := setupInput(*rawInput)
		if err != nil {
			fail(err)
		}

		var machine *tapevm.Machine
		if *resumePath != "" {
			machine = newMachine(nil, input, output)
			if err := restore(machine, *resumePath); err != nil {
				fail(err)
			}
		} else {
			program, err := load(files[0])
			if err != nil {
				fail(err)
			}
			if *checkOnly {
				logger.InfoContext(ctx, "ok", "instructions", program.Len())
				return
			}
			machine = newMachine(program, input, output)
		}

		runErr := machine.Run()

		if *snapshotPath != "" {
			if err := saveSnapshot(machine, *snapshotPath); err != nil {
				fail(err)
			}
		}

		if *tapAtHalt {
			globals := map[string]any{
				"state":   machine.State(),
				"program": machine.Program.String(),
				"cell":    machine.Cell(),
				"halted":  machine.Halted(),
			}
			if runErr != nil {
				globals["error"] = runErr.Error()
			}
			tap(ctx, "halt", globals)
		}

		if runErr != nil {
			fail(runErr)
		}
	})

	atexit.Exit(0)
}
