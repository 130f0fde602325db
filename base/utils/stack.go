package utils

import (
	"bytes"
	"runtime"
)

// Stack returns the formatted stack of the calling goroutine with the
// innermost skip frames removed.
func Stack(skip int) []byte {
	buf := make([]byte, 16<<10)
	buf = buf[:runtime.Stack(buf, false)]

	// first line is the goroutine header, then two lines per frame
	lines := bytes.Split(buf, []byte("\n"))
	if len(lines) < 1+2*skip {
		return buf
	}
	res := append([][]byte{lines[0]}, lines[1+2*skip:]...)
	return bytes.Join(res, []byte("\n"))
}
