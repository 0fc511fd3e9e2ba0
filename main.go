package main

import (
	"os"

	"github.com/scrapdiary/scrapdiary/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
