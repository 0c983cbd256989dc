package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	info    = color.New(color.FgCyan)
	success = color.New(color.FgGreen)
	failure = color.New(color.FgRed, color.Bold)
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "schemgen",
		Short:         "Build Sponge schematics from YAML recipes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(buildCmd(), demoCmd(), inspectCmd())

	if err := rootCmd.Execute(); err != nil {
		failure.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func notice(c *color.Color, format string, args ...any) {
	c.Fprintf(os.Stderr, format, args...)
	fmt.Fprintln(os.Stderr)
}
