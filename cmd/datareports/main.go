package main

import (
	"context"
	"os"

	"datareports/internal/cli"
)

func main() {
	cli.LoadEnvFile()

	rootCmd, a := newRootCmd()
	err := rootCmd.ExecuteContext(context.Background())
	a.close()
	if err != nil {
		a.reportError(os.Stderr, err)
		os.Exit(1)
	}
}
