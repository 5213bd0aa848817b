package main

import (
	"fmt"
	"os"

	"github.com/camden-git/familytree/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}
}
