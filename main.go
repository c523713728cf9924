package main

import (
	"os"

	"github.com/susql/susql/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
