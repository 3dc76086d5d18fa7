package nlp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joss/simpilot/internal/command"
)

// MapError is the unrecovered failure raised when a parsed command has
// no entry in the phrase table. Unlike parse failures it carries no
// suggestions: the phrase table is the boundary between the two
// vocabularies and a miss here is a gap in the table, not a user typo.
type MapError struct {
	Message       string
	OriginalInput string
}

func (e *MapError) Error() string { return e.Message }

// Entry maps one literal lowercase phrase to a command type.
type Entry struct {
	Phrase string
	Type   command.Type
}

// Mapper resolves parser vocabulary to backend command types through an
// ordered bilingual phrase table fixed at construction.
type Mapper struct {
	entries []Entry
	exact   map[string]command.Type
}

// NewMapper builds a mapper over the given table. Order is significant
// for the substring fallback; exact matches ignore it.
func NewMapper(entries []Entry) *Mapper {
	exact := make(map[string]command.Type, len(entries))
	for _, e := range entries {
		key := strings.ToLower(e.Phrase)
		if _, dup := exact[key]; !dup {
			exact[key] = e.Type
		}
	}
	return &Mapper{entries: entries, exact: exact}
}

// DefaultMapper builds the mapper over the built-in bilingual table.
func DefaultMapper() *Mapper {
	return NewMapper(defaultTable)
}

// Resolve maps a free-form phrase to a command type. An exact table key
// wins outright regardless of table position; otherwise the first entry
// whose phrase is a substring of the input wins, in table order.
func (m *Mapper) Resolve(phrase string) (command.Type, bool) {
	lower := strings.ToLower(phrase)

	if t, ok := m.exact[lower]; ok {
		return t, true
	}
	for _, e := range m.entries {
		if strings.Contains(lower, strings.ToLower(e.Phrase)) {
			return e.Type, true
		}
	}
	return "", false
}

// Map converts a ParseResult into a fully typed command, coercing
// parameter values for the resolved type.
func (m *Mapper) Map(result *ParseResult) (*command.Command, error) {
	t, ok := m.Resolve(result.Command)
	if !ok {
		return nil, &MapError{
			Message:       fmt.Sprintf("no command type for %q", result.Command),
			OriginalInput: result.OriginalText,
		}
	}

	cmd := command.New(t, coerceParameters(t, result.Parameters))
	cmd.Description = result.OriginalText
	return cmd, nil
}

// numericParams lists the parameters coerced to numbers, per type.
var numericParams = map[command.Type][]string{
	command.Tap:           {"x", "y"},
	command.DescribePoint: {"x", "y"},
	command.Swipe:         {"x1", "y1", "x2", "y2", "duration"},
	command.SetLocation:   {"latitude", "longitude"},
	command.PressKey:      {"keycode"},
}

// coerceParameters converts the parser's string values to the types the
// backend expects. Coercion is mechanical: it never validates ranges,
// and values that fail to convert pass through unchanged so the backend
// can report them.
func coerceParameters(t command.Type, params map[string]any) map[string]any {
	out := make(map[string]any, len(params))
	for k, v := range params {
		out[k] = v
	}

	for _, key := range numericParams[t] {
		if s, ok := out[key].(string); ok {
			if n, err := strconv.ParseFloat(s, 64); err == nil {
				out[key] = n
			}
		}
	}

	if t == command.CreateSimulatorSession {
		switch out["autoboot"] {
		case "true":
			out["autoboot"] = true
		case "false":
			out["autoboot"] = false
		}
	}

	return out
}

// defaultTable is the built-in bilingual phrase table. Entries are
// ordered most-specific first: the substring fallback scans top to
// bottom, so "list crash logs" must precede "logs" and "list booted
// simulators" must precede "list simulators".
var defaultTable = []Entry{
	// Simulator lifecycle.
	{"create simulator session", command.CreateSimulatorSession},
	{"create session", command.CreateSimulatorSession},
	{"crear sesión", command.CreateSimulatorSession},
	{"iniciar sesión", command.CreateSimulatorSession},
	{"terminate simulator session", command.TerminateSimulatorSession},
	{"end session", command.TerminateSimulatorSession},
	{"terminar sesión", command.TerminateSimulatorSession},
	{"cerrar sesión", command.TerminateSimulatorSession},
	{"list booted simulators", command.ListBootedSimulators},
	{"booted simulators", command.ListBootedSimulators},
	{"simuladores arrancados", command.ListBootedSimulators},
	{"list simulators", command.ListAvailableSimulators},
	{"listar simuladores", command.ListAvailableSimulators},
	{"boot simulator", command.BootSimulator},
	{"arrancar simulador", command.BootSimulator},
	{"shutdown simulator", command.ShutdownSimulator},
	{"apagar simulador", command.ShutdownSimulator},
	{"focus simulator", command.FocusSimulator},
	{"enfocar simulador", command.FocusSimulator},

	// App lifecycle.
	{"install dylib", command.InstallDylib},
	{"instalar dylib", command.InstallDylib},
	{"install app", command.InstallApp},
	{"instalar app", command.InstallApp},
	{"launch app", command.LaunchApp},
	{"lanzar app", command.LaunchApp},
	{"abrir app", command.LaunchApp},
	{"terminate app", command.TerminateApp},
	{"cerrar app", command.TerminateApp},
	{"uninstall app", command.UninstallApp},
	{"desinstalar app", command.UninstallApp},
	{"list apps", command.ListApps},
	{"listar apps", command.ListApps},

	// Verification predicates (before the UI verbs: "verify app
	// installed" contains no UI phrase, but keep the specific forms
	// high regardless).
	{"verify app installed", command.VerifyAppInstalled},
	{"app installed", command.VerifyAppInstalled},
	{"app instalada", command.VerifyAppInstalled},
	{"verify simulator booted", command.VerifySimulatorBooted},
	{"simulator booted", command.VerifySimulatorBooted},
	{"simulador arrancado", command.VerifySimulatorBooted},

	// UI interaction.
	{"press button", command.PressButton},
	{"presionar botón", command.PressButton},
	{"press key", command.PressKey},
	{"pulsar tecla", command.PressKey},
	{"type text", command.InputText},
	{"input text", command.InputText},
	{"escribir texto", command.InputText},
	{"teclear", command.InputText},
	{"swipe", command.Swipe},
	{"deslizar", command.Swipe},
	{"tap", command.Tap},
	{"tocar", command.Tap},
	{"pulsar", command.Tap},

	// Accessibility.
	{"describe point", command.DescribePoint},
	{"describir punto", command.DescribePoint},
	{"describe screen", command.DescribeElements},
	{"describe elements", command.DescribeElements},
	{"describir pantalla", command.DescribeElements},

	// Debug and crash handling (specific crash phrases before the
	// generic log phrases below).
	{"list crash logs", command.ListCrashLogs},
	{"informes de fallos", command.ListCrashLogs},
	{"show crash log", command.ShowCrashLog},
	{"informe de fallo", command.ShowCrashLog},
	{"delete crash logs", command.DeleteCrashLogs},
	{"debug status", command.DebugStatus},
	{"estado de depuración", command.DebugStatus},
	{"stop debug", command.StopDebug},
	{"detener depuración", command.StopDebug},
	{"start debug", command.StartDebug},
	{"depurar", command.StartDebug},

	// Capture and logs.
	{"take screenshot", command.TakeScreenshot},
	{"screenshot", command.TakeScreenshot},
	{"captura de pantalla", command.TakeScreenshot},
	{"record video", command.RecordVideo},
	{"grabar vídeo", command.RecordVideo},
	{"grabar video", command.RecordVideo},
	{"stop recording", command.StopRecording},
	{"detener grabación", command.StopRecording},
	{"get logs", command.GetLogs},
	{"logs", command.GetLogs},
	{"registros", command.GetLogs},

	// Miscellaneous device operations.
	{"open url", command.OpenURL},
	{"abrir url", command.OpenURL},
	{"set location", command.SetLocation},
	{"ubicación", command.SetLocation},
	{"add media", command.AddMedia},
	{"agregar medios", command.AddMedia},
	{"approve permissions", command.ApprovePermissions},
	{"permisos", command.ApprovePermissions},
	{"clear keychain", command.ClearKeychain},
	{"llavero", command.ClearKeychain},
}
