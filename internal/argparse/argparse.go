// Package argparse turns an argv-style token sequence into a script name
// plus a flat identifier-to-value mapping. It knows nothing about which
// flags are registered; matching identifiers against declared options is
// the caller's concern.
package argparse

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrNotParsed is returned by the accessors when they are called before
// any input has been parsed.
var ErrNotParsed = errors.New("argparse: no input has been parsed yet")

// Result is the outcome of a single parse: the basename of the invoked
// script and the raw flag values. Map values are either the string token
// that followed the flag, or boolean true for a flag with no value.
type Result struct {
	ScriptName string
	Options    map[string]any
}

// Parser tokenizes raw argument lists. The zero value is not ready for
// use; construct one with NewParser. A Parser retains its most recent
// Result for the accessor methods.
type Parser struct {
	last *Result
}

// NewParser creates a Parser with no parse result yet.
func NewParser() *Parser {
	return &Parser{}
}

// ParseInput consumes a flat argv-style token sequence: element 0 is the
// invoked script path, the remainder are flags and values.
//
// A token starting with the flag marker introduces an option identifier
// (marker dashes stripped). When the following token does not itself look
// like a flag it is consumed as that option's value and the scan advances
// past both; otherwise the option records boolean true. A flag at the very
// end of the stream likewise records boolean true. Tokens that are neither
// flags nor consumed values are ignored; positional arguments are not
// supported. A repeated identifier overwrites the earlier value.
func (p *Parser) ParseInput(tokens []string) *Result {
	res := &Result{Options: make(map[string]any)}
	if len(tokens) > 0 {
		res.ScriptName = filepath.Base(tokens[0])
	}

	i := 1
	for i < len(tokens) {
		tok := tokens[i]
		if !isFlag(tok) {
			i++
			continue
		}
		name := strings.TrimLeft(tok, "-")
		if i+1 < len(tokens) && !isFlag(tokens[i+1]) {
			res.Options[name] = tokens[i+1]
			i += 2
			continue
		}
		res.Options[name] = true
		i++
	}

	p.last = res
	return res
}

// ScriptName returns the script name from the most recent parse, or
// ErrNotParsed when ParseInput has not been called yet.
func (p *Parser) ScriptName() (string, error) {
	if p.last == nil {
		return "", ErrNotParsed
	}
	return p.last.ScriptName, nil
}

// Options returns the flag mapping from the most recent parse, or
// ErrNotParsed when ParseInput has not been called yet.
func (p *Parser) Options() (map[string]any, error) {
	if p.last == nil {
		return nil, ErrNotParsed
	}
	return p.last.Options, nil
}

func isFlag(tok string) bool {
	return strings.HasPrefix(tok, "-")
}
