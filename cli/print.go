package cli

import (
	"fmt"
	"io"
)

func printf(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, format+"\n", a...)
}

func warningf(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, "Warning: "+format+"\n", a...)
}
