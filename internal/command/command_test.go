package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignsUniqueIDs(t *testing.T) {
	a := New(Tap, map[string]any{"x": 10.0, "y": 20.0})
	b := New(Tap, map[string]any{"x": 10.0, "y": 20.0})

	assert.NotEmpty(t, a.ID)
	assert.NotEmpty(t, b.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, Tap, a.Type)
}

func TestNewNilParameters(t *testing.T) {
	c := New(ClearKeychain, nil)
	require.NotNil(t, c.Parameters)
	assert.Empty(t, c.Parameters)
}

func TestNewSequence(t *testing.T) {
	first := New(BootSimulator, nil)
	second := New(Tap, map[string]any{"x": 1.0, "y": 2.0})

	seq := NewSequence([]*Command{first, second}, true)

	assert.Equal(t, Sequence, seq.Type)
	assert.True(t, seq.Type.IsComposite())
	assert.True(t, seq.StopOnError())

	subs := seq.Subcommands()
	require.Len(t, subs, 2)
	assert.Same(t, first, subs[0])
	assert.Same(t, second, subs[1])
}

func TestNewConditionalBranches(t *testing.T) {
	ifTrue := New(LaunchApp, map[string]any{"bundleId": "com.example.app"})
	ifFalse := New(InstallApp, map[string]any{"appPath": "/tmp/example.app"})

	cond := NewConditional(func(*Context) bool { return true }, ifTrue, ifFalse)

	assert.Equal(t, Conditional, cond.Type)
	require.NotNil(t, cond.Condition())
	assert.Same(t, ifTrue, cond.Branch(true))
	assert.Same(t, ifFalse, cond.Branch(false))
}

func TestNewConditionalWithoutElse(t *testing.T) {
	cond := NewConditional(func(*Context) bool { return false }, New(Tap, nil), nil)
	assert.Nil(t, cond.Branch(false))
}

func TestContextResultOf(t *testing.T) {
	ctx := NewContext("sess-1")
	assert.Nil(t, ctx.ResultOf("missing"))

	r := &Result{Success: true}
	ctx.PreviousResults["cmd-1"] = r
	assert.Same(t, r, ctx.ResultOf("cmd-1"))

	var nilCtx *Context
	assert.Nil(t, nilCtx.ResultOf("cmd-1"))
}

func TestIsComposite(t *testing.T) {
	assert.True(t, Sequence.IsComposite())
	assert.True(t, Conditional.IsComposite())
	assert.False(t, Tap.IsComposite())
	assert.False(t, CreateSimulatorSession.IsComposite())
}
