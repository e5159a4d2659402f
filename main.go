package main

import (
	"os"

	"github.com/sidram/memoriz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
