package main

import (
	"context"
	"os"

	"github.com/ardnew/spritelab/cli"
)

func main() {
	os.Exit(cli.Report(cli.Run(context.Background(), os.Exit, os.Args[1:]...)))
}
