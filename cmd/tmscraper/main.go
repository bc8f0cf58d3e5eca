package main

import (
	"context"

	"tmscraper/cmd/tmscraper/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
