package configs

import (
	"errors"
	"testing"
)

var testSchema = `
tape_size?: int & >0
growth?: "block" | "double"
allow_unclosed?: bool
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/local.cue",
		"testdata/global.cue",
	}, testSchema)

	var size int
	if err := loader.AssignFirst("tape_size", &size); err != nil {
		t.Fatal(err)
	}
	if size != 32 {
		t.Fatalf("got %v", size)
	}

	var allow bool
	if err := loader.AssignFirst("allow_unclosed", &allow); err != nil {
		t.Fatal(err)
	}
	if !allow {
		t.Fatal()
	}

	var growth string
	err := loader.AssignFirst("trace", &growth)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/local.cue"}, testSchema)
	if growth := First[string](loader, "growth"); growth != "double" {
		t.Fatalf("got %v", growth)
	}
	if allow := First[bool](loader, "allow_unclosed"); allow {
		t.Fatal()
	}
	if len(loader.Paths()) != 1 {
		t.Fatal()
	}
}

func TestNoFiles(t *testing.T) {
	loader := NewLoader(nil, testSchema)
	if err := loader.Validate(); err != nil {
		t.Fatal(err)
	}
	if n := First[int](loader, "tape_size"); n != 0 {
		t.Fatalf("got %v", n)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{"testdata/bad.cue"}, testSchema)
	if err := loader.Validate(); err == nil {
		t.Fatal("should error")
	}
	func() {
		defer func() {
			if p := recover(); p == nil {
				t.Fatal("should panic")
			}
		}()
		First[int](loader, "tape_size")
	}()
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{"testdata/none.cue"}, "")
	var n int
	if err := loader.AssignFirst("tape_size", &n); err == nil {
		t.Fatal("should error")
	}
}
