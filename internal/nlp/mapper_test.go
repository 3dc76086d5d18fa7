package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joss/simpilot/internal/command"
)

// Every parser command name must resolve through the default table, so
// a successfully parsed instruction can never fail at the mapping step.
func TestDefaultTableCoversEveryParserCommand(t *testing.T) {
	reg := DefaultRegistry()
	m := DefaultMapper()
	for _, info := range reg.ListSupportedCommands() {
		_, ok := m.Resolve(info.Command)
		assert.True(t, ok, "no table entry for %q", info.Command)
	}
}

// An exact table key always beats a substring hit, regardless of where
// each entry sits in the table.
func TestResolveExactBeatsSubstring(t *testing.T) {
	m := NewMapper([]Entry{
		{"tap screen", command.DescribeElements},
		{"tap", command.Tap},
	})

	got, ok := m.Resolve("tap")
	require.True(t, ok)
	assert.Equal(t, command.Tap, got)

	// "tap twice" is not an exact key; the substring scan runs in table
	// order and "tap screen" does not occur in it, so "tap" wins.
	got, ok = m.Resolve("tap twice")
	require.True(t, ok)
	assert.Equal(t, command.Tap, got)
}

func TestResolveSubstringUsesTableOrder(t *testing.T) {
	m := NewMapper([]Entry{
		{"list crash logs", command.ListCrashLogs},
		{"logs", command.GetLogs},
	})

	got, ok := m.Resolve("please list crash logs now")
	require.True(t, ok)
	assert.Equal(t, command.ListCrashLogs, got)

	got, ok = m.Resolve("fetch the logs")
	require.True(t, ok)
	assert.Equal(t, command.GetLogs, got)
}

func TestResolveCaseInsensitive(t *testing.T) {
	m := DefaultMapper()
	got, ok := m.Resolve("Take Screenshot")
	require.True(t, ok)
	assert.Equal(t, command.TakeScreenshot, got)
}

func TestResolveMiss(t *testing.T) {
	m := DefaultMapper()
	_, ok := m.Resolve("calibrate the flux capacitor")
	assert.False(t, ok)
}

func TestMapBuildsTypedCommand(t *testing.T) {
	m := DefaultMapper()
	cmd, err := m.Map(&ParseResult{
		Command:      "tap",
		Parameters:   map[string]any{"x": "100", "y": "200.5"},
		Confidence:   MatchConfidence,
		OriginalText: "tap 100, 200.5",
	})
	require.NoError(t, err)

	assert.Equal(t, command.Tap, cmd.Type)
	assert.NotEmpty(t, cmd.ID)
	assert.Equal(t, "tap 100, 200.5", cmd.Description)
	assert.Equal(t, float64(100), cmd.Parameters["x"])
	assert.Equal(t, 200.5, cmd.Parameters["y"])
}

func TestMapMissReturnsMapError(t *testing.T) {
	m := NewMapper(nil)
	_, err := m.Map(&ParseResult{Command: "tap", OriginalText: "tap 1, 2"})
	require.Error(t, err)

	var merr *MapError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "tap 1, 2", merr.OriginalInput)
	assert.NotEmpty(t, merr.Message)
}

func TestCoerceParameters(t *testing.T) {
	tests := []struct {
		name   string
		typ    command.Type
		params map[string]any
		want   map[string]any
	}{
		{
			name:   "swipe numerics",
			typ:    command.Swipe,
			params: map[string]any{"x1": "10", "y1": "20", "x2": "30", "y2": "40", "duration": "500"},
			want:   map[string]any{"x1": 10.0, "y1": 20.0, "x2": 30.0, "y2": 40.0, "duration": 500.0},
		},
		{
			name:   "location negatives",
			typ:    command.SetLocation,
			params: map[string]any{"latitude": "40.4168", "longitude": "-3.7038"},
			want:   map[string]any{"latitude": 40.4168, "longitude": -3.7038},
		},
		{
			name:   "keycode",
			typ:    command.PressKey,
			params: map[string]any{"keycode": "40"},
			want:   map[string]any{"keycode": 40.0},
		},
		{
			name:   "autoboot flag",
			typ:    command.CreateSimulatorSession,
			params: map[string]any{"deviceName": "iPhone 16", "autoboot": "false"},
			want:   map[string]any{"deviceName": "iPhone 16", "autoboot": false},
		},
		{
			name:   "unconvertible value passes through",
			typ:    command.Tap,
			params: map[string]any{"x": "ten", "y": "20"},
			want:   map[string]any{"x": "ten", "y": 20.0},
		},
		{
			name:   "untyped command untouched",
			typ:    command.LaunchApp,
			params: map[string]any{"bundleId": "com.example.demo"},
			want:   map[string]any{"bundleId": "com.example.demo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := coerceParameters(tt.typ, tt.params)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Coercion must not mutate the parse result's parameter map.
func TestCoerceCopies(t *testing.T) {
	params := map[string]any{"x": "1", "y": "2"}
	coerceParameters(command.Tap, params)
	assert.Equal(t, "1", params["x"])
}

func TestInterpretEndToEnd(t *testing.T) {
	in := DefaultInterpreter()

	cmd, err := in.Interpret("fija la ubicación en 19.4326, -99.1332")
	require.NoError(t, err)
	assert.Equal(t, command.SetLocation, cmd.Type)
	assert.Equal(t, 19.4326, cmd.Parameters["latitude"])
	assert.Equal(t, -99.1332, cmd.Parameters["longitude"])

	_, err = in.Interpret("gibberish input")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

// Every example phrase must interpret into a non-composite command.
func TestInterpretAllExamples(t *testing.T) {
	in := DefaultInterpreter()
	for _, ex := range in.Registry().Examples() {
		t.Run(ex.Text, func(t *testing.T) {
			cmd, err := in.Interpret(ex.Text)
			require.NoError(t, err)
			assert.False(t, cmd.Type.IsComposite())
		})
	}
}
