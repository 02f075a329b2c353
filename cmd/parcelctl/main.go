package main

import (
	"os"

	"github.com/landviz/parcelcore/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
