package main

import (
	"fmt"
	"os"

	"github.com/benvon/smart-calendar/cmd/calendar/commands"
	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:          "calendar",
		Short:        "Inspect calendar grids and public holidays",
		Long:         "CLI for rendering Monday-first month and week grids and listing public holidays",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(commands.NewGridCmd())
	rootCmd.AddCommand(commands.NewHolidaysCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
