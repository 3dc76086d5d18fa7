package nlp

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every registered example phrase must parse back to the definition
// that declares it. This guards both the patterns and the catalog
// ordering: an example stolen by an earlier definition fails here.
func TestExamplesRoundTrip(t *testing.T) {
	reg := DefaultRegistry()
	for _, ex := range reg.Examples() {
		t.Run(ex.Text, func(t *testing.T) {
			result, err := reg.Parse(ex.Text)
			require.NoError(t, err)
			assert.Equal(t, ex.Command, result.Command)
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	reg := DefaultRegistry()
	first, err := reg.Parse("tap 100, 200")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := reg.Parse("tap 100, 200")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestParseParameters(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		command string
		params  map[string]any
	}{
		{
			name:    "tap with coordinates",
			input:   "tap 100, 200",
			command: "tap",
			params:  map[string]any{"x": "100", "y": "200"},
		},
		{
			name:    "tap spanish with parentheses",
			input:   "toca en (50, 75)",
			command: "tap",
			params:  map[string]any{"x": "50", "y": "75"},
		},
		{
			name:    "swipe with duration",
			input:   "swipe from 10, 20 to 30, 40 in 500 ms",
			command: "swipe",
			params:  map[string]any{"x1": "10", "y1": "20", "x2": "30", "y2": "40", "duration": "500"},
		},
		{
			name:    "swipe without duration",
			input:   "desliza desde 50, 500 hasta 50, 100",
			command: "swipe",
			params:  map[string]any{"x1": "50", "y1": "500", "x2": "50", "y2": "100"},
		},
		{
			name:    "launch app bundle id",
			input:   "launch app com.example.demo",
			command: "launch app",
			params:  map[string]any{"bundleId": "com.example.demo"},
		},
		{
			name:    "bare dotted bundle id",
			input:   "launch com.apple.mobilesafari",
			command: "launch app",
			params:  map[string]any{"bundleId": "com.apple.mobilesafari"},
		},
		{
			name:    "session with device name",
			input:   "create a new simulator session with iPhone 16",
			command: "create simulator session",
			params:  map[string]any{"deviceName": "iPhone 16"},
		},
		{
			name:    "session without booting",
			input:   "create session without booting",
			command: "create simulator session",
			params:  map[string]any{"autoboot": "false"},
		},
		{
			name:    "set location negative longitude",
			input:   "set location to 40.4168, -3.7038",
			command: "set location",
			params:  map[string]any{"latitude": "40.4168", "longitude": "-3.7038"},
		},
		{
			name:    "press key",
			input:   "pulsa la tecla 40",
			command: "press key",
			params:  map[string]any{"keycode": "40"},
		},
		{
			name:    "quoted text strips quotes",
			input:   `type "hello@example.com"`,
			command: "type text",
			params:  map[string]any{"text": "hello@example.com"},
		},
		{
			name:    "no parameters",
			input:   "clear keychain",
			command: "clear keychain",
			params:  map[string]any{},
		},
	}

	reg := DefaultRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := reg.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.command, result.Command)
			assert.Equal(t, tt.params, result.Parameters)
		})
	}
}

// Matching is case-insensitive but parameter values keep the casing the
// user typed.
func TestParsePreservesParameterCase(t *testing.T) {
	tests := []struct {
		input string
		key   string
		want  string
	}{
		{"INSTALL APP /Users/Dev/MyApp.app", "appPath", "/Users/Dev/MyApp.app"},
		{"Launch App com.Example.DemoApp", "bundleId", "com.Example.DemoApp"},
		{"type Hello World", "text", "Hello World"},
		{"open https://Example.COM/Path", "url", "https://Example.COM/Path"},
	}

	reg := DefaultRegistry()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := reg.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Parameters[tt.key])
		})
	}
}

func TestParseTrimsWhitespace(t *testing.T) {
	reg := DefaultRegistry()
	result, err := reg.Parse("  take screenshot  ")
	require.NoError(t, err)
	assert.Equal(t, "take screenshot", result.Command)
	assert.Equal(t, "  take screenshot  ", result.OriginalText)
}

func TestParseConfidence(t *testing.T) {
	reg := DefaultRegistry()
	result, err := reg.Parse("list simulators")
	require.NoError(t, err)
	assert.Equal(t, MatchConfidence, result.Confidence)
}

// Earlier definitions shadow later ones when phrasings overlap, so the
// specific form must be registered first.
func TestParseOrderingResolvesOverlaps(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"list booted simulators", "list booted simulators"},
		{"list simulators", "list simulators"},
		{"debug status", "debug status"},
		{"debug com.example.demo", "start debug"},
		{"describe point 10, 20", "describe point"},
		{"describe screen", "describe screen"},
	}

	reg := DefaultRegistry()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := reg.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Command)
		})
	}
}

func TestNewCatalogPanicsOnBadDefinition(t *testing.T) {
	assert.Panics(t, func() {
		NewCatalog("bad", Definition{Command: ""})
	})
	assert.Panics(t, func() {
		NewCatalog("bad", Definition{Command: "no patterns"})
	})
}

func TestEveryDefinitionHasExamples(t *testing.T) {
	reg := DefaultRegistry()
	byCommand := make(map[string]int)
	for _, ex := range reg.Examples() {
		byCommand[ex.Command]++
	}
	for _, info := range reg.ListSupportedCommands() {
		assert.Greater(t, byCommand[info.Command], 0,
			fmt.Sprintf("definition %q has no examples", info.Command))
	}
}
