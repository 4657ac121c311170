// Command utilkit evaluates arithmetic and text operations from the shell.
package main

import (
	"os"

	"github.com/GriffinCanCode/utilkit/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
