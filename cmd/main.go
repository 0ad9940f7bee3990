package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/tgmatch/cmd/tgmatch"
)

func main() {
	if err := tgmatch.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
