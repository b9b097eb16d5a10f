package optset

import (
	"errors"
	"fmt"
)

// OptionType used to define switch value types (such as Standalone, Single, Hash)
type OptionType int

const (
	// Optional denotes a switch which may be followed by a value - when the next token is
	// absent or starts with '-' the switch is recorded as present with the value true
	Optional OptionType = 0
	// Single denotes a switch accepting exactly one string value
	Single OptionType = 1
	// Standalone denotes a boolean switch (does not consume a value)
	Standalone OptionType = 2
	// Numeric denotes a switch whose value must be a whole or decimal number over its entire length
	Numeric OptionType = 3
	// Hash denotes a switch whose value is a whitespace-delimited list of key:value pairs
	Hash OptionType = 4
	// Chained denotes a switch whose value is evaluated as a list (split on ',' with optional
	// surrounding brackets)
	Chained OptionType = 5
)

// ConfigureOptionFunc is used when defining Option descriptors
type ConfigureOptionFunc func(option *Option, err *error)

// ConfigureParserFunc is used when defining Parser options
type ConfigureParserFunc func(parser *Parser, err *error)

var (
	ErrInvalidSwitch             = errors.New("invalid switch")
	ErrDuplicateSwitch           = errors.New("duplicate switch")
	ErrMissingValue              = errors.New("missing value")
	ErrSwitchAsValue             = errors.New("switch passed as value")
	ErrNotNumeric                = errors.New("not a numeric value")
	ErrRequiredMissing           = errors.New("required switch missing")
	ErrSwitchNotFound            = errors.New("switch not found")
	ErrUnsupportedTypeConversion = errors.New("unsupported type conversion")
)

const (
	FmtErrorWithString = "%w: %s"
)

// ParseError is the single error kind raised while parsing a token stream. It carries a
// human-readable message and wraps one of the package sentinel errors so callers can test
// the failure class with errors.Is.
type ParseError struct {
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(sentinel error, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Message: fmt.Sprintf(format, args...),
		Err:     sentinel,
	}
}
