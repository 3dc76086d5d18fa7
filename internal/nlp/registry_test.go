package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joss/simpilot/internal/command"
)

func parseError(t *testing.T, reg *Registry, input string) *ParseError {
	t.Helper()
	_, err := reg.Parse(input)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	return perr
}

func TestParseErrorSuggestsNearCommandName(t *testing.T) {
	reg := DefaultRegistry()
	perr := parseError(t, reg, "list simulatos")

	assert.Equal(t, command.ErrCommandNotFound, perr.Type)
	assert.Equal(t, "list simulatos", perr.OriginalInput)
	assert.Contains(t, perr.Suggestions, "list simulators")
	assert.Contains(t, perr.Message, "Did you mean")
	assert.Equal(t, perr.Message, perr.Error())
}

// A typo close to a registered example phrase surfaces the owning
// command name, not the example text.
func TestParseErrorFoldsExampleToOwningCommand(t *testing.T) {
	reg := DefaultRegistry()
	perr := parseError(t, reg, "terminar sesio")

	assert.Contains(t, perr.Suggestions, "terminate simulator session")
	for _, s := range perr.Suggestions {
		assert.NotEqual(t, "terminar sesión", s)
	}
}

func TestParseErrorNoSuggestionsFallback(t *testing.T) {
	reg := DefaultRegistry()
	perr := parseError(t, reg, "zzzzzzzzzzzz")

	assert.Empty(t, perr.Suggestions)
	assert.Contains(t, perr.Message, "simpilot commands")
}

func TestParseErrorSuggestionsCappedAndUnique(t *testing.T) {
	reg := DefaultRegistry()
	perr := parseError(t, reg, "list")

	assert.LessOrEqual(t, len(perr.Suggestions), maxSuggestions)
	seen := make(map[string]bool)
	for _, s := range perr.Suggestions {
		assert.False(t, seen[s], "duplicate suggestion %q", s)
		seen[s] = true
	}
}

func TestParseErrorIsDeterministic(t *testing.T) {
	reg := DefaultRegistry()
	first := parseError(t, reg, "list simulatos")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first.Suggestions, parseError(t, reg, "list simulatos").Suggestions)
	}
}

func TestSuggestCompletionsBlankReturnsPopular(t *testing.T) {
	reg := DefaultRegistry()

	got := reg.SuggestCompletions("   ")
	assert.Equal(t, popularCompletions, got)

	// Callers must not be able to corrupt the shared defaults.
	got[0] = "mutated"
	assert.Equal(t, "create simulator session", reg.SuggestCompletions("")[0])
}

func TestSuggestCompletionsPartial(t *testing.T) {
	reg := DefaultRegistry()

	got := reg.SuggestCompletions("scr")
	assert.LessOrEqual(t, len(got), maxCompletions)
	assert.Contains(t, got, "screenshot")
}

// Example phrases that repeat their command name verbatim must not
// produce the same completion twice.
func TestSuggestCompletionsDeduplicated(t *testing.T) {
	reg := DefaultRegistry()

	for _, partial := range []string{"stop recording", "get logs", "debug status", "list"} {
		got := reg.SuggestCompletions(partial)
		seen := make(map[string]bool)
		for _, c := range got {
			assert.False(t, seen[c], "completion %q repeated for %q in %v", c, partial, got)
			seen[c] = true
		}
	}

	got := reg.SuggestCompletions("stop recording")
	assert.Contains(t, got, "stop recording")
}

func TestListSupportedCommands(t *testing.T) {
	reg := DefaultRegistry()
	infos := reg.ListSupportedCommands()
	require.NotEmpty(t, infos)

	byName := make(map[string]CommandInfo, len(infos))
	for _, info := range infos {
		assert.NotEmpty(t, info.Description, "command %q has no description", info.Command)
		byName[info.Command] = info
	}

	tap, ok := byName["tap"]
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, tap.Required)

	boot, ok := byName["boot simulator"]
	require.True(t, ok)
	assert.Equal(t, []string{"udid"}, boot.Optional)
}

func TestExamplesPreserveCatalogOrder(t *testing.T) {
	reg := DefaultRegistry()
	examples := reg.Examples()
	require.NotEmpty(t, examples)

	// The first registered catalog is the simulator one.
	assert.Equal(t, "create session", examples[0].Text)
	assert.Equal(t, "create simulator session", examples[0].Command)
}
