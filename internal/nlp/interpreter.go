package nlp

import "github.com/joss/simpilot/internal/command"

// Interpreter is the full text-to-command pipeline: the pattern
// registry parses free text into a ParseResult and the mapper turns
// that into a typed command.
type Interpreter struct {
	registry *Registry
	mapper   *Mapper
}

// NewInterpreter wires a registry and mapper together.
func NewInterpreter(registry *Registry, mapper *Mapper) *Interpreter {
	return &Interpreter{registry: registry, mapper: mapper}
}

// DefaultInterpreter builds an interpreter over the built-in catalogs
// and phrase table.
func DefaultInterpreter() *Interpreter {
	return NewInterpreter(DefaultRegistry(), DefaultMapper())
}

// Interpret parses one instruction and maps it to a typed command. A
// parse miss returns a *ParseError carrying suggestions; a mapping miss
// returns a *MapError.
func (i *Interpreter) Interpret(text string) (*command.Command, error) {
	result, err := i.registry.Parse(text)
	if err != nil {
		return nil, err
	}
	return i.mapper.Map(result)
}

// Registry exposes the underlying registry for listing and completion.
func (i *Interpreter) Registry() *Registry { return i.registry }
