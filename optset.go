// Copyright 2023-2026, Marc Fournier. All rights reserved.
// Use of this source code is governed by the MIT license
// which can be found in the LICENSE file.

// Package optset implements declarative command-line switch parsing.
//
// The caller describes each switch with an Option (long form, short aliases, value type,
// default value, required flag), a Parser indexes the descriptors in a Registry and walks
// the argument token stream left to right, producing a typed ParseResult plus the residual
// positional arguments. The grammar covers:
//
//	--level 3          plain long switch with value
//	-l 3               plain short switch
//	--level=3 / -l3    inline values
//	-xvz               squashed cluster of boolean switches
//	--no-verbose       auto-negation of a declared boolean switch
//
// Six value types are supported: Optional, Single, Standalone, Numeric, Hash and Chained -
// see OptionType for their consumption and conversion rules.
package optset

import (
	"github.com/mfournier/optset/parse"
)

// Parser drives the parsing state machine over a read-only Registry. A Parser holds no
// mutable state between calls - each Parse operates on a private token cursor - so a
// single Parser may serve concurrent Parse invocations.
type Parser struct {
	registry    *Registry
	matcher     *matcher
	scanLeading bool
}

// NewParser builds a Parser over a fresh Registry for the given descriptor set. The
// caller should always test for error on return because Parser will be nil when registry
// construction or a configuration function fails.
func NewParser(options []*Option, configs ...ConfigureParserFunc) (*Parser, error) {
	registry, err := NewRegistry(options...)
	if err != nil {
		return nil, err
	}

	parser := &Parser{
		registry: registry,
		matcher:  &matcher{registry: registry},
	}
	for _, config := range configs {
		var configErr error
		config(parser, &configErr)
		if configErr != nil {
			return nil, configErr
		}
	}

	return parser, nil
}

// Registry exposes the read-only switch registry backing this Parser
func (p *Parser) Registry() *Registry {
	return p.registry
}

// SetScanLeading toggles collection of positional arguments preceding the first
// recognized switch. When off (the default), a leading non-switch token ends switch
// processing immediately and everything lands in Trailing.
func (p *Parser) SetScanLeading(scan bool) {
	p.scanLeading = scan
}

// Parse consumes the token stream left to right and returns a validated ParseResult, or a
// *ParseError when a required-argument switch lacks its value, a Numeric switch receives a
// non-numeric value, or a required switch is absent from the final result. No partial
// results are returned on error.
func (p *Parser) Parse(args []string) (*ParseResult, error) {
	state := parse.NewState(args)
	result := &ParseResult{values: p.registry.seedDefaults()}

	if p.scanLeading {
		for !state.Done() && !p.matcher.isSwitch(state.Current()) {
			result.leading = append(result.leading, state.Shift())
		}
	}

	for !state.Done() && p.matcher.isSwitch(state.Current()) {
		if err := p.consumeSwitch(state, result); err != nil {
			return nil, err
		}
	}

	result.trailing = state.Rest()

	for _, option := range p.registry.Options() {
		if !option.Required {
			continue
		}
		if _, supplied := result.values[option.Name]; !supplied {
			return nil, newParseError(ErrRequiredMissing, "required switch %s was not supplied", option.Long)
		}
	}

	return result, nil
}

// ParseString splits a command line the way a shell would and calls Parse
func (p *Parser) ParseString(line string) (*ParseResult, error) {
	args, err := parse.Split(line)
	if err != nil {
		return nil, err
	}

	return p.Parse(args)
}
