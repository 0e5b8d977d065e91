package main

import (
	"os"

	"github.com/limitless-infotech/auralis/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
