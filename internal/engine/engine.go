// Package engine executes command trees against a device backend. It
// owns the hook chain (validate, transform, dispatch, onError), the
// per-attempt timeout and retry budget, and the composite semantics of
// sequence and conditional commands.
package engine

import (
	"context"
	"errors"
	"time"

	"github.com/joss/simpilot/internal/command"
	"github.com/joss/simpilot/internal/logging"
	simstrings "github.com/joss/simpilot/internal/strings"
)

// Backend performs one operation per command type. Implementations
// receive the coerced parameter map and report outcome as data or error;
// the engine never inspects backend internals beyond this.
type Backend interface {
	Execute(ctx context.Context, t command.Type, params map[string]any) (any, error)
}

// Engine runs commands against a backend.
type Engine struct {
	backend Backend
	log     *logging.Logger
}

// New creates an engine over the given backend.
func New(backend Backend) *Engine {
	return &Engine{
		backend: backend,
		log:     logging.New("engine"),
	}
}

// Execute runs one command tree. The result is recorded in cctx under
// the command's ID so later commands in a sequence can read it. Never
// returns nil; failures are reported inside the result, not as errors.
func (e *Engine) Execute(ctx context.Context, cmd *command.Command, cctx *command.Context) *command.Result {
	if cctx == nil {
		cctx = command.NewContext("")
	}

	var res *command.Result
	switch cmd.Type {
	case command.Sequence:
		res = e.executeSequence(ctx, cmd, cctx)
	case command.Conditional:
		res = e.executeConditional(ctx, cmd, cctx)
	default:
		res = e.executeAtomic(ctx, cmd, cctx)
	}

	if cmd.ID != "" && cctx.PreviousResults != nil {
		cctx.PreviousResults[cmd.ID] = res
	}
	return res
}

// executeSequence runs children strictly in order. With stopOnError the
// first failure aborts the sequence and later children produce no
// result; otherwise every child runs and contributes one result.
func (e *Engine) executeSequence(ctx context.Context, cmd *command.Command, cctx *command.Context) *command.Result {
	children := cmd.Subcommands()
	stop := cmd.StopOnError()

	results := make([]*command.Result, 0, len(children))
	ok := true
	for _, child := range children {
		res := e.Execute(ctx, child, cctx)
		results = append(results, res)
		if !res.Success {
			ok = false
			if stop {
				break
			}
		}
	}

	return &command.Result{
		Success:   ok,
		Data:      results,
		Timestamp: time.Now(),
	}
}

// executeConditional evaluates the predicate exactly once and runs the
// selected branch. A false predicate with no ifFalse branch is a no-op
// success.
func (e *Engine) executeConditional(ctx context.Context, cmd *command.Command, cctx *command.Context) *command.Result {
	cond := cmd.Condition()
	when := cond != nil && cond(cctx)

	branch := cmd.Branch(when)
	if branch == nil {
		return &command.Result{Success: true, Timestamp: time.Now()}
	}
	return e.Execute(ctx, branch, cctx)
}

func (e *Engine) executeAtomic(ctx context.Context, cmd *command.Command, cctx *command.Context) *command.Result {
	if cmd.Validate != nil {
		if err := cmd.Validate(cctx); err != nil {
			return e.recover(cctx, cmd, err, classify(err, command.ErrValidationFailed))
		}
	}

	params := cmd.Parameters
	if cmd.TransformParameters != nil {
		transformed, err := cmd.TransformParameters(cctx, params)
		if err != nil {
			return e.recover(cctx, cmd, err, classify(err, ""))
		}
		params = transformed
	}

	var lastErr error
	for attempt := 0; attempt <= cmd.Retries; attempt++ {
		data, err := e.dispatch(ctx, cmd, params, attempt)
		if err == nil {
			return &command.Result{Success: true, Data: data, Timestamp: time.Now()}
		}
		lastErr = err

		// A per-attempt timeout is retryable; caller cancellation is not.
		if ctx.Err() != nil {
			break
		}
	}

	return e.recover(cctx, cmd, lastErr, classify(lastErr, ""))
}

// dispatch performs one backend call under the command's per-attempt
// timeout.
func (e *Engine) dispatch(ctx context.Context, cmd *command.Command, params map[string]any, attempt int) (any, error) {
	if cmd.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cmd.Timeout)
		defer cancel()
	}

	start := time.Now()
	data, err := e.backend.Execute(ctx, cmd.Type, params)
	if err != nil {
		e.log.Warn("dispatch_failed", map[string]interface{}{
			"type":    string(cmd.Type),
			"attempt": attempt,
			"params":  simstrings.TruncateMap(params, 200),
		}, err)
		return nil, err
	}

	e.log.TimedEvent("dispatch", start, map[string]interface{}{
		"type": string(cmd.Type),
	})
	return data, nil
}

// recover gives the command's onError hook a chance to substitute a
// recovered result for an otherwise-fatal failure.
func (e *Engine) recover(cctx *command.Context, cmd *command.Command, err error, errType command.ErrorType) *command.Result {
	if cmd.OnError != nil {
		res, rerr := cmd.OnError(cctx, err)
		if rerr != nil {
			err = rerr
			errType = classify(rerr, errType)
		} else if res != nil {
			return res
		}
	}

	return &command.Result{
		Success:   false,
		Error:     err.Error(),
		Timestamp: time.Now(),
		Type:      errType,
	}
}

// classify extracts the error type of a HookError, falling back for
// plain errors.
func classify(err error, fallback command.ErrorType) command.ErrorType {
	var herr *command.HookError
	if errors.As(err, &herr) {
		return herr.Type
	}
	return fallback
}
