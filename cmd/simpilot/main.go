// Package main provides the simpilot CLI entrypoint.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/joss/simpilot/internal/audit"
	"github.com/joss/simpilot/internal/config"
	"github.com/joss/simpilot/internal/engine"
	"github.com/joss/simpilot/internal/exec"
	"github.com/joss/simpilot/internal/idb"
	"github.com/joss/simpilot/internal/logging"
	"github.com/joss/simpilot/internal/nlp"
	"github.com/joss/simpilot/internal/render"
)

var (
	version = "0.1.0"

	pretty    bool
	noHistory bool

	interp *nlp.Interpreter
	client *idb.Client
	eng    *engine.Engine
	store  *audit.Store // nil when history is disabled or the db fails to open
	rend   *render.Renderer
	log    = logging.New("cli")
)

func main() {
	defer logging.Recover("cli")

	rootCmd := &cobra.Command{
		Use:   "simpilot [instruction...]",
		Short: "Natural language control of iOS simulators",
		Long: `simpilot drives iOS simulators through plain English or Spanish
instructions, translated to idb invocations.

Usage modes:
  simpilot                      Start the interactive REPL
  simpilot take screenshot      Run one instruction and exit
  simpilot run "toca en 10, 20" Run one instruction (explicit form)

Use 'simpilot commands' to list every supported instruction.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !pretty {
				color.NoColor = true
			}
			rend = render.New(pretty)

			interp = nlp.DefaultInterpreter()
			client = idb.NewClient(exec.NewOSRunner())
			eng = engine.New(client)

			if !noHistory {
				var err error
				store, err = audit.Open(config.GetPaths().HistoryDB)
				if err != nil {
					// History is best effort; the instruction still runs.
					log.Warn("history_open_failed", nil, err)
					store = nil
				}
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if store != nil {
				store.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runREPL()
			}
			jsonOut, _ := cmd.Flags().GetBool("json")
			return executeInstruction(strings.Join(args, " "), false, jsonOut)
		},
	}

	defaultPretty := term.IsTerminal(int(os.Stdout.Fd())) && !config.Env().NoColor
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", defaultPretty, "Pretty print output")
	rootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "Skip recording executions to the history database")
	rootCmd.Flags().Bool("json", false, "Output the result as JSON")

	rootCmd.AddCommand(
		runCmd(),
		replCmd(),
		commandsCmd(),
		suggestCmd(),
		historyCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		if err.Error() != "" {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
