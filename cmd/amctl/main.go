package main

import (
	"os"

	"github.com/agentmart-dev/agentmart/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
