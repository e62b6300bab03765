package cli

import (
	"fmt"
	"io"
)

// termNotifier prints notices as single prefixed lines.
type termNotifier struct {
	w io.Writer
}

func newTermNotifier(w io.Writer) *termNotifier {
	return &termNotifier{w: w}
}

func (n *termNotifier) Success(msg string) {
	if msg == "" {
		return
	}
	fmt.Fprintln(n.w, "[ok]", msg)
}

func (n *termNotifier) Error(msg string) {
	if msg == "" {
		return
	}
	fmt.Fprintln(n.w, "[error]", msg)
}
