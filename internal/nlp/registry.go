package nlp

import (
	"fmt"
	"strings"

	"github.com/joss/simpilot/internal/command"
	"github.com/joss/simpilot/internal/fuzzy"
)

// Suggestion limits for enhanced parse errors and completions.
const (
	maxNameSuggestions    = 3
	maxExampleSuggestions = 3
	maxSuggestions        = 5
	maxCompletions        = 5

	nameSuggestionThreshold    = 0.3
	exampleSuggestionThreshold = 0.2
	completionThreshold        = 0.3
)

// ParseError is the enhanced failure raised when no catalog pattern
// matches. Suggestions are ranked command names safe to render to the
// end user verbatim.
type ParseError struct {
	Message       string
	Suggestions   []string
	Type          command.ErrorType
	OriginalInput string
}

func (e *ParseError) Error() string { return e.Message }

// Registry owns the ordered list of registered catalogs. It is
// append-only at startup and immutable afterwards, so parsing is safe
// for concurrent callers without locking.
type Registry struct {
	catalogs []*Catalog
}

// NewRegistry creates a registry over the given catalogs, in order.
func NewRegistry(catalogs ...*Catalog) *Registry {
	return &Registry{catalogs: catalogs}
}

// Register appends a catalog. Call only during startup.
func (r *Registry) Register(c *Catalog) {
	r.catalogs = append(r.catalogs, c)
}

// Parse resolves an instruction to a ParseResult, trying catalogs in
// registration order. On total failure it returns a *ParseError with
// fuzzy suggestions drawn from command names and examples.
func (r *Registry) Parse(text string) (*ParseResult, error) {
	lower, original := normalize(text)

	for _, cat := range r.catalogs {
		if result, ok := cat.parse(lower, original, text); ok {
			return result, nil
		}
	}

	return nil, r.notFound(text, lower)
}

// notFound builds the enhanced command_not_found error: command names
// are matched directly, examples are matched and folded back to their
// owning command, and the two lists are unioned names-first.
func (r *Registry) notFound(raw, lower string) *ParseError {
	names := r.commandNames()
	owners := make(map[string]string)
	var examples []string
	for _, ex := range r.Examples() {
		key := strings.ToLower(ex.Text)
		if _, dup := owners[key]; !dup {
			owners[key] = ex.Command
			examples = append(examples, key)
		}
	}

	var suggestions []string
	seen := make(map[string]bool)
	for _, m := range fuzzy.FindMatches(lower, names, maxNameSuggestions, nameSuggestionThreshold) {
		if !seen[m.Candidate] {
			seen[m.Candidate] = true
			suggestions = append(suggestions, m.Candidate)
		}
	}
	for _, m := range fuzzy.FindMatches(lower, examples, maxExampleSuggestions, exampleSuggestionThreshold) {
		owner := owners[m.Candidate]
		if !seen[owner] {
			seen[owner] = true
			suggestions = append(suggestions, owner)
		}
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	msg := fmt.Sprintf("no command matches %q", raw)
	if len(suggestions) > 0 {
		msg = fmt.Sprintf("no command matches %q. Did you mean: %s?", raw, strings.Join(suggestions, ", "))
	} else {
		msg += `. Run "simpilot commands" to list what I understand.`
	}

	return &ParseError{
		Message:       msg,
		Suggestions:   suggestions,
		Type:          command.ErrCommandNotFound,
		OriginalInput: raw,
	}
}

// popularCompletions is shown for blank completion input.
var popularCompletions = []string{
	"create simulator session",
	"list simulators",
	"install app",
	"tap",
	"take screenshot",
}

// SuggestCompletions returns ranked completion candidates for a partial
// instruction. Blank input yields a fixed list of popular starters.
func (r *Registry) SuggestCompletions(partial string) []string {
	if strings.TrimSpace(partial) == "" {
		out := make([]string, len(popularCompletions))
		copy(out, popularCompletions)
		return out
	}

	// Union of names and examples. Several examples repeat their
	// command name verbatim and must not occupy two result slots.
	seen := make(map[string]bool)
	var candidates []string
	for _, name := range r.commandNames() {
		key := strings.ToLower(name)
		if !seen[key] {
			seen[key] = true
			candidates = append(candidates, name)
		}
	}
	for _, ex := range r.Examples() {
		key := strings.ToLower(ex.Text)
		if !seen[key] {
			seen[key] = true
			candidates = append(candidates, ex.Text)
		}
	}

	matches := fuzzy.FindMatches(strings.ToLower(partial), candidates, maxCompletions, completionThreshold)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Candidate)
	}
	return out
}

// CommandInfo is the documentation surface for one definition.
type CommandInfo struct {
	Command     string   `json:"command"`
	Description string   `json:"description"`
	Required    []string `json:"requiredParameters,omitempty"`
	Optional    []string `json:"optionalParameters,omitempty"`
}

// ListSupportedCommands flattens every catalog for help consumers.
func (r *Registry) ListSupportedCommands() []CommandInfo {
	var infos []CommandInfo
	for _, cat := range r.catalogs {
		for _, def := range cat.Definitions {
			infos = append(infos, CommandInfo{
				Command:     def.Command,
				Description: def.Description,
				Required:    def.Required,
				Optional:    def.Optional,
			})
		}
	}
	return infos
}

// Examples returns every registered example phrase with its owning
// command, preserving catalog order.
func (r *Registry) Examples() []ExamplePhrase {
	var out []ExamplePhrase
	for _, cat := range r.catalogs {
		for _, def := range cat.Definitions {
			for _, ex := range def.Examples {
				out = append(out, ExamplePhrase{Text: ex, Command: def.Command})
			}
		}
	}
	return out
}

// ExamplePhrase pairs a sample phrasing with the command it parses to.
type ExamplePhrase struct {
	Text    string
	Command string
}

func (r *Registry) commandNames() []string {
	var names []string
	for _, cat := range r.catalogs {
		for _, def := range cat.Definitions {
			names = append(names, def.Command)
		}
	}
	return names
}
