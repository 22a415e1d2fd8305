// Command lumen is the universal search CLI for Lumenboard content.
package main

import (
	"os"

	"github.com/lumenboard/lumen-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
