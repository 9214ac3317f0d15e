package main

import (
	"os"

	"crxkit/cmd/crxkit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
