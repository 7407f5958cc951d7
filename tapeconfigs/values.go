package tapeconfigs

import (
	"fmt"

	"github.com/reusee/tapevm/cmds"
	"github.com/reusee/tapevm/configs"
	"github.com/reusee/tapevm/vars"
)

type TapeSize int

var tapeSizeFlag = cmds.Var[int]("-tape-size")

func init() {
	cmds.Describe("-tape-size", "initial number of tape cells")
	cmds.Describe("-allow-unclosed", "accept [ without a matching ]")
	cmds.Describe("-trace", "log every executed instruction, needs -log-debug")
	cmds.Define("-growth", cmds.Func(func(policy string) error {
		switch policy {
		case "block", "double":
			growthFlag = policy
			return nil
		}
		return fmt.Errorf("unknown growth policy: %s", policy)
	}).Desc("tape growth policy, block or double"))
}

func (Module) TapeSize(
	loader configs.Loader,
) TapeSize {
	// non-positive values fall back to the default
	return TapeSize(vars.FirstNonZero(
		max(*tapeSizeFlag, 0),
		configs.First[int](loader, "tape_size"),
	))
}

type Growth string

var growthFlag string

func (Module) Growth(
	loader configs.Loader,
) Growth {
	return Growth(vars.FirstNonZero(
		growthFlag,
		configs.First[string](loader, "growth"),
		"block",
	))
}

type AllowUnclosed bool

var allowUnclosedFlag = cmds.Switch("-allow-unclosed")

func (Module) AllowUnclosed(
	loader configs.Loader,
) AllowUnclosed {
	return AllowUnclosed(*allowUnclosedFlag ||
		configs.First[bool](loader, "allow_unclosed"))
}

type Trace bool

var traceFlag = cmds.Switch("-trace")

func (Module) Trace(
	loader configs.Loader,
) Trace {
	return Trace(*traceFlag ||
		configs.First[bool](loader, "trace"))
}
