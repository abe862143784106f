package main

import (
	"os"

	"github.com/arthur-debert/rename-files/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
