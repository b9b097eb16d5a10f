package optset

import "strings"

// WithShort adds a short alias for the switch. The leading '-' may be omitted; "f" and
// "-f" both register the form "-f". An Option without explicit short aliases whose
// canonical name is longer than one character receives an automatic one-letter shortcut
// during registry construction (see NewRegistry).
func WithShort(short string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		if !strings.HasPrefix(short, "-") {
			short = "-" + short
		}
		option.Shorts = append(option.Shorts, short)
	}
}

// WithType - one of six types:
//  1. Optional - a switch which may be followed by a value
//  2. Single - a switch which expects a string value
//  3. Standalone - a boolean switch which never consumes a value
//  4. Numeric - a switch which expects an integer or decimal value
//  5. Hash - a switch which expects whitespace-delimited key:value pairs
//  6. Chained - a switch which expects a comma-delimited list
func WithType(typeOf OptionType) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.TypeOf = typeOf
	}
}

// WithDefault sets the value pre-seeded into every parse result for this switch. The
// value must match the declared type - int values are widened to int64 for Numeric
// switches.
func WithDefault(value interface{}) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		if v, ok := value.(int); ok {
			value = int64(v)
		}
		option.Default = value
	}
}

// WithDescription the description will be used in usage output presented to the user
func WithDescription(description string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Description = description
	}
}

// SetRequired when true, the switch must be supplied on the command-line
func SetRequired(required bool) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Required = required
	}
}
