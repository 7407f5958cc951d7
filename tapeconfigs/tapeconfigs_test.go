package tapeconfigs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tapevm/cmds"
	"github.com/reusee/tapevm/configs"
	"github.com/reusee/tapevm/logs"
	"github.com/reusee/tapevm/modes"
)

func TestDefaults(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		new(logs.Module),
	).Call(func(
		loader configs.Loader,
		size TapeSize,
		growth Growth,
		allow AllowUnclosed,
		trace Trace,
	) {
		if len(loader.Paths()) != 0 {
			t.Fatalf("got %v", loader.Paths())
		}
		if size != 0 {
			t.Fatalf("got %v", size)
		}
		if growth != "block" {
			t.Fatalf("got %v", growth)
		}
		if allow {
			t.Fatal()
		}
		if trace {
			t.Fatal()
		}
	})
}

func TestFromFile(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		new(logs.Module),
	).Fork(
		dscope.Provide(configs.NewLoader([]string{"testdata/tapevm.cue"}, Schema)),
	).Call(func(
		size TapeSize,
		growth Growth,
		allow AllowUnclosed,
	) {
		if size != 4 {
			t.Fatalf("got %v", size)
		}
		if growth != "double" {
			t.Fatalf("got %v", growth)
		}
		if !allow {
			t.Fatal()
		}
	})
}

func TestFlagsWin(t *testing.T) {
	defer func() {
		*tapeSizeFlag = 0
		growthFlag = ""
	}()
	if err := cmds.GlobalExecutor.Execute([]string{
		"-tape-size", "7",
		"-growth", "block",
	}); err != nil {
		t.Fatal(err)
	}
	dscope.New(
		modes.ForTest(t),
		new(Module),
		new(logs.Module),
	).Fork(
		dscope.Provide(configs.NewLoader([]string{"testdata/tapevm.cue"}, Schema)),
	).Call(func(
		size TapeSize,
		growth Growth,
	) {
		if size != 7 {
			t.Fatalf("got %v", size)
		}
		if growth != "block" {
			t.Fatalf("got %v", growth)
		}
	})

	if err := cmds.GlobalExecutor.Execute([]string{
		"-growth", "triple",
	}); err == nil {
		t.Fatal("should error")
	}
}

func TestInvalidFile(t *testing.T) {
	loader := configs.NewLoader([]string{"testdata/invalid.cue"}, Schema)
	if err := loader.Validate(); err == nil {
		t.Fatal("should error")
	}
	dscope.New(
		modes.ForTest(t),
		new(Module),
		new(logs.Module),
	).Fork(
		dscope.Provide(loader),
	).Call(func(
		loader configs.Loader,
	) {
		if err := loader.Validate(); err == nil {
			t.Fatal("should error")
		}
	})
}
