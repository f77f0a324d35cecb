package main

import (
	"os"

	"github.com/abingham/cheek/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
