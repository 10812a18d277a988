// Command startstream opens or closes a configured set of programs.
package main

import (
	"fmt"
	"os"

	"github.com/tessro/startstream/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "startstream: %v\n", err)
		os.Exit(1)
	}
}
