package command

import "fmt"

// HookError is a classified failure raised by a command hook. Hooks may
// return any error; returning a HookError controls how the failure is
// reported in the Result.
type HookError struct {
	Type    ErrorType
	Message string
}

func (e *HookError) Error() string { return e.Message }

// NewHookError creates a classified hook failure.
func NewHookError(t ErrorType, format string, args ...any) *HookError {
	return &HookError{Type: t, Message: fmt.Sprintf(format, args...)}
}

// MissingParameter reports a required parameter absent from a command.
func MissingParameter(name string) *HookError {
	return NewHookError(ErrParameterMissing, "required parameter %q is missing", name)
}

// RequireParameters builds a validate hook that checks the given keys
// are present in the command's parameters.
func RequireParameters(params map[string]any, names ...string) ValidateFunc {
	return func(*Context) error {
		for _, name := range names {
			if _, ok := params[name]; !ok {
				return MissingParameter(name)
			}
		}
		return nil
	}
}
