package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func commandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List supported natural language commands",
		Long: `List every supported command with its required and optional
parameters. Phrases work in English and Spanish.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(rend.Commands(interp.Registry().ListSupportedCommands()))
		},
	}
}
