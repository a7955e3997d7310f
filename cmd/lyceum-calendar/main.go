package main

import (
	"os"

	"github.com/akozyreva/lyceum-calendar/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
