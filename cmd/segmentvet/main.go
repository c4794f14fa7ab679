package main

import (
	"os"

	"github.com/solatis/segmentvet/cmd/segmentvet/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
