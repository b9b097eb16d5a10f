package optset

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// ParseResult is the outcome of a successful Parse: a typed mapping from canonical switch
// names to values, pre-populated with declared defaults and overwritten by matched
// switches, plus the leading and trailing positional arguments. A ParseResult is
// immutable once returned - the typed accessors hand out copies of composite values.
type ParseResult struct {
	values   map[string]interface{}
	leading  []string
	trailing []string
}

// Get returns the raw value stored under the canonical name and true when present
func (r *ParseResult) Get(name string) (interface{}, bool) {
	value, found := r.values[name]

	return value, found
}

// Has returns true when the named switch was supplied or carries a default
func (r *ParseResult) Has(name string) bool {
	_, found := r.values[name]

	return found
}

// Count returns the number of stored values
func (r *ParseResult) Count() int {
	return len(r.values)
}

// GetOrDefault returns the value stored under name, or fallback when absent
func (r *ParseResult) GetOrDefault(name string, fallback interface{}) interface{} {
	if value, found := r.values[name]; found {
		return value
	}

	return fallback
}

// GetString returns the value of a Single or Optional switch as a string
func (r *ParseResult) GetString(name string) (string, error) {
	value, found := r.values[name]
	if !found {
		return "", fmt.Errorf(FmtErrorWithString, ErrSwitchNotFound, name)
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: value of %s is %T, not string", ErrUnsupportedTypeConversion, name, value)
	}

	return s, nil
}

// GetBool returns the value of a Standalone switch. An Optional switch recorded as a bare
// presence marker also reads as true.
func (r *ParseResult) GetBool(name string) (bool, error) {
	value, found := r.values[name]
	if !found {
		return false, fmt.Errorf(FmtErrorWithString, ErrSwitchNotFound, name)
	}
	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("%w: value of %s is %T, not bool", ErrUnsupportedTypeConversion, name, value)
	}

	return b, nil
}

// GetInt returns the value of a Numeric switch parsed from an integer literal
func (r *ParseResult) GetInt(name string) (int64, error) {
	value, found := r.values[name]
	if !found {
		return 0, fmt.Errorf(FmtErrorWithString, ErrSwitchNotFound, name)
	}
	i, ok := value.(int64)
	if !ok {
		return 0, fmt.Errorf("%w: value of %s is %T, not int64", ErrUnsupportedTypeConversion, name, value)
	}

	return i, nil
}

// GetFloat returns the value of a Numeric switch. Integer literals are widened to
// float64.
func (r *ParseResult) GetFloat(name string) (float64, error) {
	value, found := r.values[name]
	if !found {
		return 0, fmt.Errorf(FmtErrorWithString, ErrSwitchNotFound, name)
	}
	switch v := value.(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	}

	return 0, fmt.Errorf("%w: value of %s is %T, not a number", ErrUnsupportedTypeConversion, name, value)
}

// GetHash returns a copy of the value of a Hash switch
func (r *ParseResult) GetHash(name string) (map[string]string, error) {
	value, found := r.values[name]
	if !found {
		return nil, fmt.Errorf(FmtErrorWithString, ErrSwitchNotFound, name)
	}
	hash, ok := value.(map[string]string)
	if !ok {
		return nil, fmt.Errorf("%w: value of %s is %T, not map[string]string", ErrUnsupportedTypeConversion, name, value)
	}
	copied := make(map[string]string, len(hash))
	for key, val := range hash {
		copied[key] = val
	}

	return copied, nil
}

// GetList returns a copy of the value of a Chained switch
func (r *ParseResult) GetList(name string) ([]string, error) {
	value, found := r.values[name]
	if !found {
		return nil, fmt.Errorf(FmtErrorWithString, ErrSwitchNotFound, name)
	}
	list, ok := value.([]string)
	if !ok {
		return nil, fmt.Errorf("%w: value of %s is %T, not []string", ErrUnsupportedTypeConversion, name, value)
	}
	copied := make([]string, len(list))
	copy(copied, list)

	return copied, nil
}

// GetTime interprets the string value of a switch as a timestamp in the local timezone.
// Most common layouts are recognized (RFC3339, "2006-01-02 15:04", unix dates, ...).
func (r *ParseResult) GetTime(name string) (time.Time, error) {
	s, err := r.GetString(name)
	if err != nil {
		return time.Time{}, err
	}
	parsed, err := dateparse.ParseLocal(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("value of %s is not a recognizable timestamp: %w", name, err)
	}

	return parsed, nil
}

// Leading returns a copy of the positional arguments collected before the first
// recognized switch. It is only populated when the Parser scans leading positionals.
func (r *ParseResult) Leading() []string {
	leading := make([]string, len(r.leading))
	copy(leading, r.leading)

	return leading
}

// Trailing returns a copy of the positional arguments remaining after the last consumed
// switch
func (r *ParseResult) Trailing() []string {
	trailing := make([]string, len(r.trailing))
	copy(trailing, r.trailing)

	return trailing
}
