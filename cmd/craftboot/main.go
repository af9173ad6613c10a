package main

import (
	"os"

	"github.com/bianoble/craftboot/cmd/craftboot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
