package cmds

import (
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo",
	})
	if !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"a", "x",
	})
	if !strings.Contains(err.Error(), "convert x to int") {
		t.Fatalf("got %v", err)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	bad := errors.New("bad")
	executor.Define("-fail", Func(func() error {
		return bad
	}))
	executor.Define("-ok", Func(func() error {
		return nil
	}))
	if err := executor.Execute([]string{"-ok"}); err != nil {
		t.Fatal(err)
	}
	err := executor.Execute([]string{"-fail"})
	if !errors.Is(err, bad) {
		t.Fatalf("got %v", err)
	}
}

func TestPositional(t *testing.T) {
	executor := NewExecutor()
	var size int
	executor.Define("-size", Func(func(i int) {
		size = i
	}))
	var files []string
	executor.Positional(func(arg string) error {
		files = append(files, arg)
		return nil
	})

	if err := executor.Execute([]string{
		"a.b", "-size", "3", "b.b", "--", "-c.b",
	}); err != nil {
		t.Fatal(err)
	}
	if size != 3 {
		t.Fatalf("got %d", size)
	}
	if strings.Join(files, " ") != "a.b b.b -c.b" {
		t.Fatalf("got %v", files)
	}

	err := executor.Execute([]string{"-nope"})
	if !strings.Contains(err.Error(), "unknown command: -nope") {
		t.Fatalf("got %v", err)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var bar, baz int
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
			bar = 1
		}),
		"baz": Func(func(i int) {
			baz = i
		}),
	}))

	if err := executor.Execute([]string{
		"foo",
		"bar",
		"baz", "42",
	}); err != nil {
		t.Fatal(err)
	}
	if bar != 1 {
		t.Fatal()
	}
	if baz != 42 {
		t.Fatal()
	}
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	executor.Define("foo", Func(func(arg *int) {
		n = *arg
	}))

	if err := executor.Execute([]string{"foo", "42"}); err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{"foo"}); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatal()
	}
}

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-tape-size", Func(func(int) {}).Desc("cells"))
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {}).Desc("BAR"),
	}).Desc("FOO"))
	var sb strings.Builder
	executor.PrintUsage(&sb)
	usage := sb.String()
	for _, want := range []string{
		"-h, -help, --help\tprint this usage",
		"-tape-size <int>\tcells",
		"foo\tFOO",
		"  bar\tBAR",
	} {
		if !strings.Contains(usage, want) {
			t.Fatalf("missing %q in %s", want, usage)
		}
	}
}
