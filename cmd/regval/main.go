// regval - Power regulators configuration validator

package main

import (
	"os"

	"github.com/openbmc-tools/regval/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
