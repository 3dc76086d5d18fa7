package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/joss/simpilot/internal/audit"
	"github.com/joss/simpilot/internal/command"
	"github.com/joss/simpilot/internal/config"
	"github.com/joss/simpilot/internal/logging"
	"github.com/joss/simpilot/internal/nlp"
)

// executionTimeout bounds one instruction end to end, including boots
// and installs which can take a while on a cold simulator.
const executionTimeout = 5 * time.Minute

func runCmd() *cobra.Command {
	var dryRun bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "run <instruction...>",
		Short: "Interpret and execute one instruction",
		Long: `Interpret a natural language instruction and execute it against
the simulator.

Examples:
  simpilot run "take screenshot"
  simpilot run "toca en 100, 200"
  simpilot run --dry-run "install app /tmp/Demo.app"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeInstruction(strings.Join(args, " "), dryRun, jsonOut)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Interpret the instruction without executing it")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output the result as JSON")
	return cmd
}

// executeInstruction is the one-shot path shared by the root command
// and 'simpilot run'.
func executeInstruction(text string, dryRun, jsonOut bool) error {
	start := time.Now()

	c, err := interp.Interpret(text)
	logging.InterpretEvent(text, commandTypeOf(c), err == nil, time.Since(start))
	if err != nil {
		var perr *nlp.ParseError
		if errors.As(err, &perr) {
			fmt.Fprint(os.Stderr, rend.ParseError(perr))
			return errSilent
		}
		return err
	}

	if dryRun {
		printInterpretation(c, jsonOut)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), executionTimeout)
	defer cancel()
	res := eng.Execute(ctx, c, command.NewContext(config.Env().SessionID))

	recordExecution(text, c, res, time.Since(start))

	if jsonOut {
		out, merr := json.MarshalIndent(res, "", "  ")
		if merr != nil {
			return merr
		}
		fmt.Println(string(out))
	} else {
		fmt.Print(rend.Result(res))
	}

	if !res.Success {
		return errSilent
	}
	return nil
}

func printInterpretation(c *command.Command, jsonOut bool) {
	if jsonOut {
		out, _ := json.MarshalIndent(map[string]any{
			"type":       string(c.Type),
			"parameters": c.Parameters,
		}, "", "  ")
		fmt.Println(string(out))
		return
	}
	fmt.Printf("would run %s\n", c.Type)
	if len(c.Parameters) > 0 {
		out, _ := json.Marshal(c.Parameters)
		fmt.Printf("  parameters: %s\n", out)
	}
}

// recordExecution writes one history entry. Failures are logged, never
// surfaced, so a broken history db cannot block simulator control.
func recordExecution(text string, c *command.Command, res *command.Result, elapsed time.Duration) {
	if store == nil {
		return
	}

	entry := &audit.Entry{
		SessionID:   config.Env().SessionID,
		Instruction: text,
		CommandType: string(c.Type),
		Parameters:  c.Parameters,
		Success:     res.Success,
		Error:       res.Error,
		DurationMS:  elapsed.Milliseconds(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Record(ctx, entry); err != nil {
		log.Warn("history_record_failed", nil, err)
	}
}

func commandTypeOf(c *command.Command) string {
	if c == nil {
		return ""
	}
	return string(c.Type)
}

// errSilent signals a failure that was already printed.
var errSilent = errors.New("")
