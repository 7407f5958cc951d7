package logs

import (
	"io"
	"os"
)

// Writer receives terminal logs. Program output goes to stdout, so logs must not.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
