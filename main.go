package main

import (
	"os"

	"github.com/talentwire/matchengine/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
