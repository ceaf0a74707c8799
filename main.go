package main

import (
	"os"

	"github.com/moonbite/onboard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
