package tui

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// SlashCommand is a built-in REPL command.
type SlashCommand struct {
	Name        string
	Description string
	Handler     func(m *Model, args string) string
}

func builtinCommands() map[string]SlashCommand {
	return map[string]SlashCommand{
		"help": {
			Name:        "help",
			Description: "Show available slash commands",
			Handler:     cmdHelp,
		},
		"commands": {
			Name:        "commands",
			Description: "List supported natural language commands",
			Handler:     cmdCommands,
		},
		"history": {
			Name:        "history",
			Description: "Show recent executions (/history [n])",
			Handler:     cmdHistory,
		},
		"session": {
			Name:        "session",
			Description: "Show the active simulator session",
			Handler:     cmdSession,
		},
		"clear": {
			Name:        "clear",
			Description: "Clear the output area",
			Handler:     cmdClear,
		},
		"quit": {
			Name:        "quit",
			Description: "Exit the REPL",
			Handler:     cmdQuit,
		},
	}
}

// isSlashCommand checks if input starts with /
func isSlashCommand(input string) bool {
	return strings.HasPrefix(strings.TrimSpace(input), "/")
}

func executeSlashCommand(m *Model, input string) string {
	input = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), "/"))
	name, args, _ := strings.Cut(input, " ")

	cmd, ok := builtinCommands()[strings.ToLower(name)]
	if !ok {
		return errorStyle.Render(fmt.Sprintf("unknown command /%s (try /help)", name))
	}
	return cmd.Handler(m, strings.TrimSpace(args))
}

func cmdHelp(m *Model, args string) string {
	cmds := builtinCommands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(suggestStyle.Render("Slash commands") + "\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  /%-10s %s\n", name, cmds[name].Description)
	}
	b.WriteString(dimStyle.Render("Anything else is interpreted as a simulator instruction."))
	return b.String()
}

func cmdCommands(m *Model, args string) string {
	return m.rend.Commands(m.interp.Registry().ListSupportedCommands())
}

func cmdHistory(m *Model, args string) string {
	if m.store == nil {
		return dimStyle.Render("history is disabled")
	}

	limit := 10
	if args != "" {
		n, err := strconv.Atoi(args)
		if err != nil || n < 1 {
			return errorStyle.Render("usage: /history [n]")
		}
		limit = n
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	entries, err := m.store.Recent(ctx, limit)
	if err != nil {
		return errorStyle.Render("history: " + err.Error())
	}
	return strings.TrimRight(m.rend.History(entries), "\n")
}

func cmdSession(m *Model, args string) string {
	sess := m.client.CurrentSession()
	if sess == nil {
		return dimStyle.Render(`no active session (try "create simulator session")`)
	}
	return fmt.Sprintf("session %s on %s (%s)", sess.ID, sess.Name, sess.UDID)
}

func cmdClear(m *Model, args string) string {
	m.shared.output.Reset()
	m.viewport.SetContent("")
	return ""
}

func cmdQuit(m *Model, args string) string {
	m.quitting = true
	return ""
}
