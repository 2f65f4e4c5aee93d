package logs

import (
	"io"
	"os"
)

// Writer is where the terminal handler writes. Tests fork it to a
// buffer; token dumps go to stdout and never through here.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
