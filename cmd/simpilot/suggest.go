package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func suggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest [partial...]",
		Short: "Suggest completions for a partial instruction",
		Long: `Print instruction completions for a partial input. With no input,
shows a starter set of common instructions.

Examples:
  simpilot suggest scr
  simpilot suggest list`,
		Run: func(cmd *cobra.Command, args []string) {
			partial := strings.Join(args, " ")
			completions := interp.Registry().SuggestCompletions(partial)
			fmt.Print(rend.Completions(partial, completions))
		},
	}
}
