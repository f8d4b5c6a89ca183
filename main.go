package main

import (
	"os"

	"github.com/manav03panchal/healthdash/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
