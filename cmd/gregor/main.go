package main

import (
	"fmt"
	"os"

	"github.com/msto63/gregor/cmd/gregor/cmd"
	mdwerror "github.com/msto63/gregor/foundation/core/error"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mdwerror.GetCode(err).ExitCode())
	}
}
