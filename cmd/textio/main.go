package main

import (
	"os"

	"github.com/JoyPoint/textio/cmd/textio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
