// Package nlp turns free-text instructions (English or Spanish) into
// typed simulator commands. It has three layers: a declarative catalog
// of recognizable phrasings, a pattern parser over those catalogs, and
// a mapper from parser vocabulary to backend command types.
package nlp

import (
	"fmt"
	"regexp"
	"strings"
)

// MatchConfidence is assigned to every successful pattern match. The
// field is a reserved extension point; no consumer reads it today.
const MatchConfidence = 0.9

// ParseResult is the parser's output for one instruction.
type ParseResult struct {
	Command      string         `json:"command"`
	Parameters   map[string]any `json:"parameters"`
	Confidence   float64        `json:"confidence"`
	OriginalText string         `json:"originalText"`
}

// Captures exposes the submatches of a winning pattern to extractors.
type Captures struct {
	re   *regexp.Regexp
	subs []string
}

// Group returns the text captured by a named group, or "" when the
// group did not participate in the match.
func (c *Captures) Group(name string) string {
	for i, n := range c.re.SubexpNames() {
		if n == name && i < len(c.subs) {
			return c.subs[i]
		}
	}
	return ""
}

// Extractor derives one parameter value from a successful match.
// Returning ok=false opts the parameter out of the result.
type Extractor func(*Captures) (any, bool)

// FromGroup extracts a named capture group, opting out when empty.
func FromGroup(name string) Extractor {
	return func(c *Captures) (any, bool) {
		v := c.Group(name)
		return v, v != ""
	}
}

// FromGroups extracts the first non-empty of several capture groups.
// Useful when alternate patterns capture the same parameter under
// different names (RE2 forbids duplicate group names in one pattern).
func FromGroups(names ...string) Extractor {
	return func(c *Captures) (any, bool) {
		for _, name := range names {
			if v := c.Group(name); v != "" {
				return v, true
			}
		}
		return nil, false
	}
}

// WhenGroup yields a fixed value when a named group participated in the
// match, and opts out otherwise. Used for flag-like phrasings such as
// "without booting".
func WhenGroup(name string, value any) Extractor {
	return func(c *Captures) (any, bool) {
		if c.Group(name) != "" {
			return value, true
		}
		return nil, false
	}
}

// Definition is one recognizable action: its stable command name, the
// phrasings that trigger it, and how parameters are pulled from a
// match. Definitions are immutable value records registered once at
// startup.
type Definition struct {
	Command     string
	Description string
	Patterns    []*regexp.Regexp
	Extractors  map[string]Extractor
	Required    []string
	Optional    []string

	// Examples are sample phrasings. They double as documentation and
	// as fuzzy-match candidates, and each must parse back to this
	// definition.
	Examples []string
}

// Catalog groups related definitions by functional area. Declaration
// order is significant: the first matching pattern wins.
type Catalog struct {
	Name        string
	Definitions []Definition
}

// NewCatalog creates a catalog, panicking on malformed definitions.
// Catalogs are assembled at process start, so a bad definition is a
// programmer error and fails fast.
func NewCatalog(name string, defs ...Definition) *Catalog {
	for _, d := range defs {
		if d.Command == "" {
			panic(fmt.Sprintf("catalog %s: definition with empty command name", name))
		}
		if len(d.Patterns) == 0 {
			panic(fmt.Sprintf("catalog %s: definition %q has no patterns", name, d.Command))
		}
	}
	return &Catalog{Name: name, Definitions: defs}
}

// parse matches the normalized text against this catalog's definitions
// in declaration order. The winning pattern is re-run against the
// original-case text so parameter values (paths, bundle IDs, free text)
// keep their casing; if that re-run fails the lowercase match is used.
func (c *Catalog) parse(lower, original, raw string) (*ParseResult, bool) {
	for _, def := range c.Definitions {
		for _, re := range def.Patterns {
			subs := re.FindStringSubmatch(lower)
			if subs == nil {
				continue
			}

			if orig := re.FindStringSubmatch(original); orig != nil {
				subs = orig
			}

			caps := &Captures{re: re, subs: subs}
			params := make(map[string]any)
			for name, extract := range def.Extractors {
				if v, ok := extract(caps); ok {
					params[name] = v
				}
			}

			return &ParseResult{
				Command:      def.Command,
				Parameters:   params,
				Confidence:   MatchConfidence,
				OriginalText: raw,
			}, true
		}
	}
	return nil, false
}

// normalize prepares an instruction for matching: the lowercased form
// drives pattern matching, the trimmed original preserves case for
// parameter extraction.
func normalize(text string) (lower, original string) {
	original = strings.TrimSpace(text)
	return strings.ToLower(original), original
}
