package main

import (
	"os"

	"github.com/certaudit-io/certaudit/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
