package main

import (
	"os"

	"github.com/track2success-dev/track2success/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
