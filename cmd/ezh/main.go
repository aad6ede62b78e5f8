package main

import (
	"os"

	"nikand.dev/go/cli"

	"github.com/icyveins7/ezh/cmd/ezh/ezhcmd"
)

func main() {
	cli.RunAndExit(ezhcmd.App(), os.Args, os.Environ())
}
