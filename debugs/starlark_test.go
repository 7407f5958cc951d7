package debugs

import (
	"testing"

	"go.starlark.net/starlark"
)

type testOp byte

func (t testOp) String() string {
	return "op"
}

func TestToStarlarkValue(t *testing.T) {
	type testState struct {
		PC     int
		Steps  uint64
		Tape   []byte
		hidden int
	}

	state := testState{
		PC:     3,
		Steps:  7,
		Tape:   []byte{1, 2},
		hidden: 42,
	}
	stateDict := func() starlark.Value {
		d := starlark.NewDict(3)
		d.SetKey(starlark.String("PC"), starlark.MakeInt(3))
		d.SetKey(starlark.String("Steps"), starlark.MakeUint64(7))
		d.SetKey(starlark.String("Tape"), starlark.Bytes("\x01\x02"))
		return d
	}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"bytes", []byte("abc"), starlark.Bytes("abc")},
		{"string", "hello", starlark.String("hello")},
		{"int", 42, starlark.MakeInt(42)},
		{"int64", int64(-1), starlark.MakeInt(-1)},
		{"uint8", uint8(255), starlark.MakeInt(255)},
		{"float64", 1.5, starlark.Float(1.5)},
		{"stringer", testOp(1), starlark.String("op")},
		{"ints", []int{1, 2}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.MakeInt(2)})},
		{"map", map[string]int{"a": 1}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("a"), starlark.MakeInt(1))
			return d
		}()},
		{"struct", state, stateDict()},
		{"pointer", &state, stateDict()},
		{"nil pointer", (*testState)(nil), starlark.None},
		{"starlark value", starlark.String("x"), starlark.String("x")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("should panic")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}
