package main

import (
	"os"

	"github.com/wrenkit/wren/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.EchoCmd())
	rootCmd.AddCommand(commands.DemoCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
