package main

import (
	"os"

	"github.com/rpgo/growth-calculator/cmd/growthcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
