package main

import (
	"os"

	"github.com/christopherstationary/website/cmd/site/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
