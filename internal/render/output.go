package render

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/joss/simpilot/internal/audit"
	"github.com/joss/simpilot/internal/command"
	"github.com/joss/simpilot/internal/idb"
	"github.com/joss/simpilot/internal/nlp"
)

// Renderer handles output formatting. Pretty mode adds color and
// separators for interactive terminals; plain mode stays grep-friendly.
type Renderer struct {
	pretty bool
}

// New creates a new renderer.
func New(pretty bool) *Renderer {
	return &Renderer{pretty: pretty}
}

// Result formats one execution result. Sequence results expand into one
// line per sub-command.
func (r *Renderer) Result(res *command.Result) string {
	var sb strings.Builder
	r.formatResult(&sb, res, 0)
	return sb.String()
}

func (r *Renderer) formatResult(sb *strings.Builder, res *command.Result, depth int) {
	indent := strings.Repeat("  ", depth)

	status := "ok"
	if r.pretty {
		status = color.GreenString("✓")
	}
	if !res.Success {
		status = "failed"
		if r.pretty {
			status = color.RedString("✗")
		}
	}

	if children, ok := res.Data.([]*command.Result); ok {
		fmt.Fprintf(sb, "%s%s sequence (%d steps)\n", indent, status, len(children))
		for _, child := range children {
			r.formatResult(sb, child, depth+1)
		}
		return
	}

	switch {
	case !res.Success:
		msg := res.Error
		if r.pretty {
			msg = color.RedString(res.Error)
		}
		fmt.Fprintf(sb, "%s%s %s\n", indent, status, msg)
	case res.Data == nil || res.Data == "":
		fmt.Fprintf(sb, "%s%s done\n", indent, status)
	default:
		fmt.Fprintf(sb, "%s%s %s\n", indent, status, formatData(res.Data))
	}
}

func formatData(data any) string {
	switch v := data.(type) {
	case string:
		return v
	case []idb.Target:
		return formatTargets(v)
	case []idb.App:
		return formatApps(v)
	case *idb.Session:
		return fmt.Sprintf("session %s on %s (%s)", v.ID, v.Name, v.UDID)
	default:
		out, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(out)
	}
}

func formatTargets(targets []idb.Target) string {
	if len(targets) == 0 {
		return "no simulators"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d simulator(s)\n", len(targets))
	for _, t := range targets {
		fmt.Fprintf(&sb, "  %-28s %-10s %s\n", t.Name, t.State, t.UDID)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatApps(apps []idb.App) string {
	if len(apps) == 0 {
		return "no apps installed"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d app(s)\n", len(apps))
	for _, a := range apps {
		fmt.Fprintf(&sb, "  %-36s %s\n", a.BundleID, a.Name)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// ParseError formats a parse failure with its suggestions.
func (r *Renderer) ParseError(perr *nlp.ParseError) string {
	var sb strings.Builder

	if r.pretty {
		sb.WriteString(color.RedString(perr.Message) + "\n")
	} else {
		sb.WriteString(perr.Message + "\n")
	}

	if len(perr.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, s := range perr.Suggestions {
			if r.pretty {
				fmt.Fprintf(&sb, "  %s %s\n", color.CyanString("→"), s)
			} else {
				fmt.Fprintf(&sb, "  - %s\n", s)
			}
		}
	}
	return sb.String()
}

// Commands formats the supported command table.
func (r *Renderer) Commands(infos []nlp.CommandInfo) string {
	var sb strings.Builder

	if r.pretty {
		sb.WriteString(color.CyanString("Supported Commands") + "\n")
		sb.WriteString(strings.Repeat("─", 60) + "\n")
	}

	for _, info := range infos {
		name := info.Command
		if r.pretty {
			name = color.New(color.Bold).Sprint(info.Command)
		}
		fmt.Fprintf(&sb, "%-28s %s\n", name, info.Description)
		if len(info.Required) > 0 {
			fmt.Fprintf(&sb, "%-28s   requires: %s\n", "", strings.Join(info.Required, ", "))
		}
		if len(info.Optional) > 0 {
			fmt.Fprintf(&sb, "%-28s   optional: %s\n", "", strings.Join(info.Optional, ", "))
		}
	}
	return sb.String()
}

// Completions formats completion candidates.
func (r *Renderer) Completions(partial string, completions []string) string {
	if len(completions) == 0 {
		return fmt.Sprintf("no completions for %q\n", partial)
	}

	var sb strings.Builder
	for _, c := range completions {
		if r.pretty {
			fmt.Fprintf(&sb, "%s %s\n", color.CyanString("→"), c)
		} else {
			sb.WriteString(c + "\n")
		}
	}
	return sb.String()
}

// History formats execution history entries.
func (r *Renderer) History(entries []*audit.Entry) string {
	if len(entries) == 0 {
		return "No history recorded\n"
	}

	var sb strings.Builder

	if r.pretty {
		sb.WriteString(color.CyanString("Execution History") + "\n")
		sb.WriteString(strings.Repeat("─", 60) + "\n")
	}

	for _, e := range entries {
		timeStr := e.CreatedAt.Local().Format("2006-01-02 15:04:05")

		status := BoolIcon(e.Success)
		if r.pretty {
			if e.Success {
				status = color.GreenString("✓")
			} else {
				status = color.RedString("✗")
			}
		}

		durStr := ""
		if e.DurationMS > 0 {
			durStr = fmt.Sprintf(" (%s)", time.Duration(e.DurationMS)*time.Millisecond)
		}

		if r.pretty {
			fmt.Fprintf(&sb, "%s %s %s%s\n", status, color.HiBlackString(timeStr), e.Instruction, durStr)
		} else {
			fmt.Fprintf(&sb, "[%s] %s %s%s\n", timeStr, status, e.Instruction, durStr)
		}
		if !e.Success && e.Error != "" {
			fmt.Fprintf(&sb, "    %s\n", Truncate(e.Error, 100))
		}
	}
	return sb.String()
}
