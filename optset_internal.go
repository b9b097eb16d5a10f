package optset

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mfournier/optset/parse"
	"github.com/mfournier/optset/util"
)

var (
	shortClusterPattern = regexp.MustCompile(`^-[a-zA-Z]{2,}$`)
	inlineValuePattern  = regexp.MustCompile(`^(--[\w-]+|-[a-zA-Z])=(.*)$`)
	inlineNumberPattern = regexp.MustCompile(`^(-[a-zA-Z])([0-9][0-9.]*)$`)
	negatedLongPattern  = regexp.MustCompile(`^--no-([\w-]+)$`)
)

type tokenShape int

const (
	shapeNone tokenShape = iota
	shapeCluster
	shapeInline
	shapeLong
	shapeShort
)

// matcher classifies a single argument token against the recognized switch shapes, using
// the Registry to tell real switches from switch-looking positionals.
type matcher struct {
	registry *Registry
}

// classify returns the first matching shape in grammar priority order: squashed cluster,
// inline value, plain long, plain short. Cluster classification is registry-dependent -
// every letter must resolve to a registered Standalone short - so an unknown letter
// demotes the token to the later shapes.
func (m *matcher) classify(token string) tokenShape {
	switch {
	case m.isCluster(token):
		return shapeCluster
	case inlineValuePattern.MatchString(token) || inlineNumberPattern.MatchString(token):
		return shapeInline
	case longFormPattern.MatchString(token):
		return shapeLong
	case shortFormPattern.MatchString(token):
		return shapeShort
	}

	return shapeNone
}

// isSwitch reports whether token should be treated as a switch by the parse loop: it must
// match one of the grammar shapes and its resolved form must exist in the Registry or be
// covered by the auto-negation rule. Anything else is a positional argument.
func (m *matcher) isSwitch(token string) bool {
	switch m.classify(token) {
	case shapeCluster:
		return true
	case shapeInline:
		form, _ := splitInline(token)
		return m.resolvable(form)
	case shapeLong, shapeShort:
		return m.resolvable(token)
	}

	return false
}

func (m *matcher) resolvable(form string) bool {
	if _, found := m.registry.Lookup(form); found {
		return true
	}

	return m.negated(form) != nil
}

// negated resolves the sole auto-negation rule: an unregistered token of shape --no-X
// where --X is a registered Standalone long form. It returns the Option for --X, or nil
// when the rule does not apply. A descriptor explicitly named --no-X overrides the rule,
// and value-carrying switches are never negatable - only a boolean can be set to false.
func (m *matcher) negated(form string) *Option {
	match := negatedLongPattern.FindStringSubmatch(form)
	if match == nil {
		return nil
	}
	if _, overridden := m.registry.Lookup(form); overridden {
		return nil
	}
	option, found := m.registry.Lookup("--" + match[1])
	if found && option.Long == "--"+match[1] && option.TypeOf == Standalone {
		return option
	}

	return nil
}

func (m *matcher) isCluster(token string) bool {
	if !shortClusterPattern.MatchString(token) {
		return false
	}
	for _, letter := range token[1:] {
		option, found := m.registry.Lookup("-" + string(letter))
		if !found || option.TypeOf != Standalone {
			return false
		}
	}

	return true
}

// expandCluster rewrites -xvz into its individual short tokens
func expandCluster(token string) []string {
	expanded := make([]string, 0, len(token)-1)
	for _, letter := range token[1:] {
		expanded = append(expanded, "-"+string(letter))
	}

	return expanded
}

// splitInline separates --form=value, -x=value and -xN tokens into their switch and value
// parts
func splitInline(token string) (form, value string) {
	if match := inlineValuePattern.FindStringSubmatch(token); match != nil {
		return match[1], match[2]
	}
	if match := inlineNumberPattern.FindStringSubmatch(token); match != nil {
		return match[1], match[2]
	}

	return token, ""
}

// consumeSwitch processes the switch under the cursor. Cluster and inline shapes are
// expanded in place and re-evaluated by the parse loop, which guarantees that value
// consumption rules run exactly once per logical switch.
func (p *Parser) consumeSwitch(state *parse.State, result *ParseResult) error {
	token := state.Current()

	switch p.matcher.classify(token) {
	case shapeCluster:
		state.ReplaceCurrent(expandCluster(token)...)
		return nil
	case shapeInline:
		form, value := splitInline(token)
		state.ReplaceCurrent(form, value)
		return nil
	}

	state.Shift()
	option, found := p.registry.Lookup(token)
	if !found {
		if target := p.matcher.negated(token); target != nil {
			result.values[target.Name] = false
			return nil
		}
		return newParseError(ErrSwitchNotFound, "unrecognized switch %s", token)
	}

	value, err := p.extractValue(option, state)
	if err != nil {
		return err
	}
	result.values[option.Name] = value

	return nil
}

// extractValue applies the per-type coercion rules, consuming zero or one tokens from the
// stream.
func (p *Parser) extractValue(option *Option, state *parse.State) (interface{}, error) {
	switch option.TypeOf {
	case Standalone:
		return true, nil
	case Optional:
		if state.Done() || strings.HasPrefix(state.Current(), "-") {
			return true, nil
		}
		return state.Shift(), nil
	}

	// Single, Numeric, Hash and Chained all require a value token
	if state.Done() {
		return nil, newParseError(ErrMissingValue, "switch %s expects a value", option.Long)
	}
	if p.matcher.isSwitch(state.Current()) {
		return nil, newParseError(ErrSwitchAsValue, "switch %s expects a value but was followed by switch %s", option.Long, state.Current())
	}
	token := state.Shift()

	switch option.TypeOf {
	case Numeric:
		return coerceNumeric(option, token)
	case Hash:
		return coerceHash(token), nil
	case Chained:
		return coerceChained(token), nil
	}

	return token, nil
}

func coerceNumeric(option *Option, token string) (interface{}, error) {
	if !util.IsNumeric(token) {
		return nil, newParseError(ErrNotNumeric, "switch %s expects a numeric value, got %q", option.Long, token)
	}
	if strings.Contains(token, ".") {
		value, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, newParseError(ErrNotNumeric, "switch %s expects a numeric value, got %q", option.Long, token)
		}
		return value, nil
	}
	value, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return nil, newParseError(ErrNotNumeric, "switch %s expects a numeric value, got %q", option.Long, token)
	}

	return value, nil
}

// coerceHash splits the token on whitespace into key:value pairs. Last write wins on
// duplicate keys. A pair without a ':' separator keeps an empty value rather than
// failing - permissive on purpose, see the Hash documentation.
func coerceHash(token string) map[string]string {
	fields := strings.Fields(token)
	hash := make(map[string]string, len(fields))
	for _, field := range fields {
		key, value, separated := strings.Cut(field, ":")
		if !separated {
			hash[field] = ""
			continue
		}
		hash[key] = value
	}

	return hash
}

func coerceChained(token string) []string {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(token, "["), "]")
	if trimmed == "" {
		return []string{}
	}
	elements := strings.Split(trimmed, ",")
	for i := range elements {
		elements[i] = strings.TrimSpace(elements[i])
	}

	return elements
}
