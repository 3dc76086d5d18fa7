package command

import "github.com/google/uuid"

// New creates an atomic command with a fresh unique ID. Hook fields and
// retry/timeout settings are set directly on the returned value.
func New(t Type, params map[string]any) *Command {
	if params == nil {
		params = make(map[string]any)
	}
	return &Command{
		ID:         uuid.New().String(),
		Type:       t,
		Parameters: params,
	}
}

// NewSequence creates a SEQUENCE command. Sub-commands run strictly in
// list order; stopOnError controls whether a failed sub-command aborts
// the remainder.
func NewSequence(commands []*Command, stopOnError bool) *Command {
	return New(Sequence, map[string]any{
		ParamCommands:    commands,
		ParamStopOnError: stopOnError,
	})
}

// NewConditional creates a CONDITIONAL command. Exactly one branch runs;
// ifFalse may be nil, in which case a false predicate is a no-op success.
func NewConditional(condition PredicateFunc, ifTrue, ifFalse *Command) *Command {
	params := map[string]any{
		ParamCondition: condition,
		ParamIfTrue:    ifTrue,
	}
	if ifFalse != nil {
		params[ParamIfFalse] = ifFalse
	}
	return New(Conditional, params)
}
