// Command meow is the MeowScript compiler CLI.
package main

import (
	"os"

	"github.com/ShahzebX/MeowScript/cmd/meow/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
