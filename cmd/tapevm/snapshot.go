package main

import (
	"os"

	"github.com/reusee/tapevm/tapevm"
)

func restore(machine *tapevm.Machine, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return wrap(err)
	}
	defer f.Close()
	return machine.Restore(f)
}

// saveSnapshot replaces path atomically.
func saveSnapshot(machine *tapevm.Machine, path string) (err error) {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return wrap(err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()
	if err := machine.Snapshot(f); err != nil {
		f.Close()
		return wrap(err)
	}
	if err := f.Close(); err != nil {
		return wrap(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return wrap(err)
	}
	return nil
}
