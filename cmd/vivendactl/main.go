package main

import (
	"os"

	"github.com/jcanovas/vivenda/cmd/vivendactl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
