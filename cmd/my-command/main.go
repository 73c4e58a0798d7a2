package main

import (
	"os"
	"strings"

	"github.com/flarebyte/my-command/cmd/my-command/root"
)

func main() {
	if err := root.Execute(os.Args[1:]); err != nil {
		// Every argument list is accepted; a failed stdout write is
		// the only way to get here.
		msg := strings.Join(strings.Fields(err.Error()), " ")
		if msg == "" {
			msg = "error"
		}
		_, _ = os.Stderr.WriteString(msg + "\n")
		os.Exit(1)
	}
}
