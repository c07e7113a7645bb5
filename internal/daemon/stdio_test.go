package daemon

import "os"

func newPipe() (*os.File, *os.File, error) {
	return os.Pipe()
}

// swapStdio points the process streams at test pipes and returns the
// restore function.
func swapStdio(stdin, stdout *os.File) func() {
	origIn, origOut := os.Stdin, os.Stdout
	os.Stdin, os.Stdout = stdin, stdout
	return func() {
		os.Stdin, os.Stdout = origIn, origOut
	}
}
