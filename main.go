// Workhours - a personal work shift recorder for the command line.
package main

import (
	"os"

	"github.com/noamashri/workhours/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
