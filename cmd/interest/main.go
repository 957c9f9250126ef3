package main

import (
	"os"

	"go-interest-calculator/cmd/interest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
