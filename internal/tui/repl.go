// Package tui provides the Bubble Tea interactive REPL for driving
// simulators with natural language instructions.
package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/joss/simpilot/internal/audit"
	"github.com/joss/simpilot/internal/command"
	"github.com/joss/simpilot/internal/engine"
	"github.com/joss/simpilot/internal/idb"
	"github.com/joss/simpilot/internal/logging"
	"github.com/joss/simpilot/internal/nlp"
	"github.com/joss/simpilot/internal/render"
	simstrings "github.com/joss/simpilot/internal/strings"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	suggestStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	inputBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(0, 1)
)

// instructionTimeout bounds a single REPL instruction end to end.
const instructionTimeout = 2 * time.Minute

// replState holds state that must survive model copies.
// strings.Builder cannot be copied after first use.
type replState struct {
	output *strings.Builder
}

// Model is the REPL TUI model.
type Model struct {
	interp *nlp.Interpreter
	eng    *engine.Engine
	client *idb.Client
	store  *audit.Store // nil when history is disabled
	rend   *render.Renderer
	cctx   *command.Context
	log    *logging.Logger

	shared *replState

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	completions []string
	busy        bool
	ready       bool
	quitting    bool
	width       int
	height      int
}

type execDoneMsg struct {
	res     *command.Result
	err     error
	elapsed time.Duration
}

// New creates a REPL model with pre-initialized components.
func New(interp *nlp.Interpreter, eng *engine.Engine, client *idb.Client, store *audit.Store, rend *render.Renderer) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ti := textinput.New()
	ti.Placeholder = `Try "take screenshot" or "toca en 100, 200" (tab completes, /help for commands)`
	ti.CharLimit = 500
	ti.Width = 76
	ti.Focus()

	return Model{
		interp:  interp,
		eng:     eng,
		client:  client,
		store:   store,
		rend:    rend,
		cctx:    command.NewContext(""),
		log:     logging.New("tui"),
		shared:  &replState{output: &strings.Builder{}},
		input:   ti,
		spinner: s,
	}
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case execDoneMsg:
		return m.handleExecDone(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if !m.busy {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
		m.refreshCompletions()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		return m.handleEnterKey()

	case "tab":
		// Accept the first completion
		if !m.busy && len(m.completions) > 0 {
			m.input.SetValue(m.completions[0])
			m.input.CursorEnd()
			m.refreshCompletions()
		}
		return m, nil

	case "ctrl+l":
		m.shared.output.Reset()
		m.viewport.SetContent("")
		return m, nil

	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if !m.busy {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.refreshCompletions()
		return m, cmd
	}
	return m, nil
}

func (m Model) handleEnterKey() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if m.busy || text == "" {
		return m, nil
	}

	if isSlashCommand(text) {
		m.input.SetValue("")
		m.completions = nil
		result := executeSlashCommand(&m, text)
		if m.quitting {
			return m, tea.Quit
		}
		if result != "" {
			m.shared.output.WriteString(result + "\n")
			m.setTranscript()
			m.viewport.GotoBottom()
		}
		return m, nil
	}

	m.input.SetValue("")
	m.completions = nil
	m.busy = true
	m.shared.output.WriteString(dimStyle.Render("> "+text) + "\n")
	m.setTranscript()
	m.viewport.GotoBottom()

	return m, tea.Batch(m.spinner.Tick, m.runInstruction(text))
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	headerHeight := 2
	suggestHeight := 1
	statusHeight := 1
	inputHeight := 3
	vpHeight := msg.Height - headerHeight - suggestHeight - statusHeight - inputHeight
	if vpHeight < 3 {
		vpHeight = 3
	}

	if !m.ready {
		m.viewport = viewport.New(msg.Width, vpHeight)
		m.setTranscript()
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = vpHeight
	}

	m.input.Width = msg.Width - 6
	return m, nil
}

func (m Model) handleExecDone(msg execDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false

	switch {
	case msg.err != nil:
		var perr *nlp.ParseError
		if errors.As(msg.err, &perr) {
			m.shared.output.WriteString(m.rend.ParseError(perr))
		} else {
			m.shared.output.WriteString(errorStyle.Render("error: "+msg.err.Error()) + "\n")
		}
	case msg.res != nil:
		m.shared.output.WriteString(m.rend.Result(msg.res))
		m.shared.output.WriteString(dimStyle.Render("  "+msg.elapsed.Round(time.Millisecond).String()) + "\n")
	}
	m.shared.output.WriteString("\n")

	m.setTranscript()
	m.viewport.GotoBottom()
	return m, nil
}

// runInstruction interprets and executes one instruction off the UI
// goroutine. Interpretation failures come back as the message error;
// execution failures are carried inside the result.
func (m Model) runInstruction(text string) tea.Cmd {
	interp, eng, store, cctx, log := m.interp, m.eng, m.store, m.cctx, m.log

	return func() tea.Msg {
		start := time.Now()
		var res *command.Result

		rh := logging.NewRecoveryHandler("tui")
		err := rh.WrapError(func() error {
			cmd, ierr := interp.Interpret(text)
			if ierr != nil {
				return ierr
			}

			ctx, cancel := context.WithTimeout(context.Background(), instructionTimeout)
			defer cancel()
			res = eng.Execute(ctx, cmd, cctx)

			if store != nil {
				entry := &audit.Entry{
					SessionID:   cctx.SessionID,
					Instruction: text,
					CommandType: string(cmd.Type),
					Parameters:  cmd.Parameters,
					Success:     res.Success,
					Error:       res.Error,
					DurationMS:  time.Since(start).Milliseconds(),
				}
				// Best effort, off the result path.
				logging.SafeGo("tui", func() {
					rctx, rcancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer rcancel()
					if rerr := store.Record(rctx, entry); rerr != nil {
						log.Warn("history_record_failed", nil, rerr)
					}
				})
			}
			return nil
		})

		return execDoneMsg{res: res, err: err, elapsed: time.Since(start)}
	}
}

// setTranscript re-renders the output into the viewport, wrapped to
// its width so long result lines survive narrow terminals.
func (m *Model) setTranscript() {
	m.viewport.SetContent(simstrings.WordWrap(m.shared.output.String(), m.viewport.Width))
}

func (m *Model) refreshCompletions() {
	text := m.input.Value()
	if m.busy || isSlashCommand(text) {
		m.completions = nil
		return
	}
	m.completions = m.interp.Registry().SuggestCompletions(text)
}
