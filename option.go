package optset

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	longFormPattern  = regexp.MustCompile(`^--[\w-]+$`)
	shortFormPattern = regexp.MustCompile(`^-[a-zA-Z]$`)
)

// Option describes a single command-line switch: its canonical long form, optional short
// aliases, value type, default value and required flag. Options are built by the caller
// before parsing and are not modified afterwards.
type Option struct {
	// Name is the canonical key under which the parsed value is stored. It is derived
	// from Long on construction ("--log-level" yields "log-level").
	Name        string
	Long        string
	Shorts      []string
	TypeOf      OptionType
	Default     interface{}
	Required    bool
	Description string
}

// NewOption describes a switch starting from its long form. Use the ConfigureOptionFunc
// helpers to set the short aliases, type, default value and required flag.
//
// Usage example:
//
//	level, err := NewOption("--level",
//	    WithType(Numeric),
//	    WithShort("l"),
//	    WithDefault(int64(1)))
func NewOption(long string, configs ...ConfigureOptionFunc) (*Option, error) {
	option := &Option{Long: long}
	var err error
	for _, config := range configs {
		config(option, &err)
		if err != nil {
			return nil, err
		}
	}
	if err := option.validate(); err != nil {
		return nil, err
	}
	option.Name = strings.TrimPrefix(option.Long, "--")

	return option, nil
}

// MustOption is NewOption panicking on error - intended for static descriptor tables where
// a malformed switch is a programming mistake.
func MustOption(long string, configs ...ConfigureOptionFunc) *Option {
	option, err := NewOption(long, configs...)
	if err != nil {
		panic(err)
	}

	return option
}

// String returns the usage representation of the Option, e.g. `--force or -f "overwrite files" (optional)`
func (o *Option) String() string {
	var sb strings.Builder
	sb.WriteString(o.Long)
	for _, short := range o.Shorts {
		sb.WriteString(" or ")
		sb.WriteString(short)
	}
	if o.Description != "" {
		fmt.Fprintf(&sb, " %q", o.Description)
	}
	if o.Default != nil {
		fmt.Fprintf(&sb, " (defaults to: %v)", o.Default)
	}
	sb.WriteString(" (" + o.requiredOrOptional() + ")")

	return sb.String()
}

func (o *Option) requiredOrOptional() string {
	if o.Required {
		return "required"
	}

	return "optional"
}

func (o *Option) validate() error {
	if !longFormPattern.MatchString(o.Long) {
		return fmt.Errorf("%w: long form %q must start with '--' followed by word characters or hyphens", ErrInvalidSwitch, o.Long)
	}
	for _, short := range o.Shorts {
		if len(short) < 2 || !strings.HasPrefix(short, "-") {
			return fmt.Errorf("%w: short form %q must start with '-'", ErrInvalidSwitch, short)
		}
	}
	if o.Default != nil && !o.defaultMatchesType() {
		return fmt.Errorf("%w: default value %v does not match the declared switch type", ErrUnsupportedTypeConversion, o.Default)
	}

	return nil
}

func (o *Option) defaultMatchesType() bool {
	switch o.TypeOf {
	case Standalone:
		_, ok := o.Default.(bool)
		return ok
	case Numeric:
		switch o.Default.(type) {
		case int64, float64:
			return true
		}
		return false
	case Hash:
		_, ok := o.Default.(map[string]string)
		return ok
	case Chained:
		_, ok := o.Default.([]string)
		return ok
	case Single:
		_, ok := o.Default.(string)
		return ok
	case Optional:
		// Optional switches act as presence markers when no value follows them, so both
		// representations are acceptable defaults.
		switch o.Default.(type) {
		case string, bool:
			return true
		}
		return false
	}

	return false
}
