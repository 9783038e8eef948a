package main

import (
	"fmt"
	"os"

	"github.com/tarigelamin1997/tradesense-sub009/internal/cli"
	"github.com/tarigelamin1997/tradesense-sub009/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps its error to an exit code. Split
// from main so tests can call it.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
