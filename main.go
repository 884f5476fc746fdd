package main

import (
	"os"

	"github.com/ktevon/donorkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
