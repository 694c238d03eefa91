package main

import (
	"os"

	"github.com/majorcontext/searxng-mcp/cmd/searxng-mcp/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
