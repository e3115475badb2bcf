package main

import (
	"os"

	"vfxscaffold/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
