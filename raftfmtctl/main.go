package main

import (
	"os"

	"github.com/dforsyth/raftfmt/raftfmtctl/cmd"
)

func main() {
	if err := cmd.NewCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
