package main

import (
	"fmt"
	"os"

	"github.com/GoSim-25-26J-441/projects-overview/cmd/api/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
