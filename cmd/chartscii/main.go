// chartscii - Terminal bar charts from ad-hoc numeric input
// Source: https://github.com/chartscii/chartscii-go

package main

import (
	"os"

	"github.com/chartscii/chartscii-go/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
