package main

import (
	"os"

	"github.com/dsaxton/pq-utils/internal/cmds"
)

func main() {
	// cobra prints the error itself; the exit status is ours to set.
	if err := cmds.Execute(); err != nil {
		os.Exit(1)
	}
}
