// Package command defines the typed command model shared by the natural
// language mapper and the execution engine.
package command

import "time"

// Type identifies an operation the device backend can perform.
type Type string

// Simulator lifecycle.
const (
	CreateSimulatorSession    Type = "CREATE_SIMULATOR_SESSION"
	TerminateSimulatorSession Type = "TERMINATE_SIMULATOR_SESSION"
	ListAvailableSimulators   Type = "LIST_AVAILABLE_SIMULATORS"
	ListBootedSimulators      Type = "LIST_BOOTED_SIMULATORS"
	BootSimulator             Type = "BOOT_SIMULATOR"
	ShutdownSimulator         Type = "SHUTDOWN_SIMULATOR"
	FocusSimulator            Type = "FOCUS_SIMULATOR"
)

// App lifecycle.
const (
	InstallApp   Type = "INSTALL_APP"
	LaunchApp    Type = "LAUNCH_APP"
	TerminateApp Type = "TERMINATE_APP"
	UninstallApp Type = "UNINSTALL_APP"
	ListApps     Type = "LIST_APPS"
)

// UI interaction.
const (
	Tap         Type = "TAP"
	Swipe       Type = "SWIPE"
	PressButton Type = "PRESS_BUTTON"
	InputText   Type = "INPUT_TEXT"
	PressKey    Type = "PRESS_KEY"
)

// Accessibility inspection.
const (
	DescribeElements Type = "DESCRIBE_ELEMENTS"
	DescribePoint    Type = "DESCRIBE_POINT"
)

// Capture and logs.
const (
	TakeScreenshot Type = "TAKE_SCREENSHOT"
	RecordVideo    Type = "RECORD_VIDEO"
	StopRecording  Type = "STOP_RECORDING"
	GetLogs        Type = "GET_LOGS"
)

// Debug and crash handling.
const (
	StartDebug      Type = "START_DEBUG"
	StopDebug       Type = "STOP_DEBUG"
	DebugStatus     Type = "DEBUG_STATUS"
	ListCrashLogs   Type = "LIST_CRASH_LOGS"
	ShowCrashLog    Type = "SHOW_CRASH_LOG"
	DeleteCrashLogs Type = "DELETE_CRASH_LOGS"
)

// Miscellaneous device operations.
const (
	OpenURL            Type = "OPEN_URL"
	SetLocation        Type = "SET_LOCATION"
	AddMedia           Type = "ADD_MEDIA"
	ApprovePermissions Type = "APPROVE_PERMISSIONS"
	ClearKeychain      Type = "CLEAR_KEYCHAIN"
	InstallDylib       Type = "INSTALL_DYLIB"
)

// Verification predicates.
const (
	VerifyAppInstalled    Type = "VERIFY_APP_INSTALLED"
	VerifySimulatorBooted Type = "VERIFY_SIMULATOR_BOOTED"
)

// Composite types.
const (
	Sequence    Type = "SEQUENCE"
	Conditional Type = "CONDITIONAL"
)

// IsComposite reports whether t is a sequence or conditional command.
func (t Type) IsComposite() bool {
	return t == Sequence || t == Conditional
}

// ErrorType classifies a recoverable failure.
type ErrorType string

const (
	ErrCommandNotFound  ErrorType = "command_not_found"
	ErrParameterMissing ErrorType = "parameter_missing"
	ErrValidationFailed ErrorType = "validation_failed"
	ErrMultipleMatches  ErrorType = "multiple_matches"
)

// Result is the outcome of one command execution.
type Result struct {
	Success     bool      `json:"success"`
	Data        any       `json:"data,omitempty"`
	Error       string    `json:"error,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	Suggestions []string  `json:"suggestions,omitempty"`
	Type        ErrorType `json:"type,omitempty"`
}

// Context is threaded through a command tree during execution so later
// commands can depend on the results of earlier ones.
type Context struct {
	SessionID       string
	PreviousResults map[string]*Result
	Variables       map[string]any
}

// NewContext creates an empty execution context.
func NewContext(sessionID string) *Context {
	return &Context{
		SessionID:       sessionID,
		PreviousResults: make(map[string]*Result),
		Variables:       make(map[string]any),
	}
}

// ResultOf returns the recorded result for a command ID, or nil.
func (c *Context) ResultOf(commandID string) *Result {
	if c == nil || c.PreviousResults == nil {
		return nil
	}
	return c.PreviousResults[commandID]
}

// Hook signatures. A nil hook is the identity/true/rethrow default.
type (
	// ValidateFunc must pass before any execution attempt.
	ValidateFunc func(*Context) error

	// TransformFunc runs after validation; its output supersedes the
	// command's stored parameters for that invocation only.
	TransformFunc func(*Context, map[string]any) (map[string]any, error)

	// OnErrorFunc may intercept an otherwise-fatal failure and
	// substitute a recovered result.
	OnErrorFunc func(*Context, error) (*Result, error)

	// PredicateFunc decides which branch of a conditional runs.
	PredicateFunc func(*Context) bool
)

// Command is a typed, parameterized operation. Composite commands
// (SEQUENCE, CONDITIONAL) carry their children inside Parameters.
type Command struct {
	ID          string
	Type        Type
	Parameters  map[string]any
	Description string

	// Timeout is the wall-clock budget per execution attempt.
	// Zero means no per-attempt deadline beyond the caller's context.
	Timeout time.Duration

	// Retries is the maximum number of re-executions of this single
	// command, not of composites it contains.
	Retries int

	Validate            ValidateFunc
	TransformParameters TransformFunc
	OnError             OnErrorFunc
}

// Parameter keys used by composite commands.
const (
	ParamCommands    = "commands"
	ParamStopOnError = "stopOnError"
	ParamCondition   = "condition"
	ParamIfTrue      = "ifTrue"
	ParamIfFalse     = "ifFalse"
)

// Subcommands returns the ordered children of a SEQUENCE command.
func (c *Command) Subcommands() []*Command {
	cmds, _ := c.Parameters[ParamCommands].([]*Command)
	return cmds
}

// StopOnError reports whether a SEQUENCE aborts at the first failure.
func (c *Command) StopOnError() bool {
	stop, _ := c.Parameters[ParamStopOnError].(bool)
	return stop
}

// Condition returns the predicate of a CONDITIONAL command.
func (c *Command) Condition() PredicateFunc {
	cond, _ := c.Parameters[ParamCondition].(PredicateFunc)
	return cond
}

// Branch returns the ifTrue or ifFalse child of a CONDITIONAL command.
// The ifFalse branch may be nil.
func (c *Command) Branch(when bool) *Command {
	key := ParamIfTrue
	if !when {
		key = ParamIfFalse
	}
	branch, _ := c.Parameters[key].(*Command)
	return branch
}
