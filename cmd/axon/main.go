package main

import (
	"os"

	"github.com/rustyeddy/axon/cmd/axon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
