package main

import (
	"github.com/docq-labs/docq-cli/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
