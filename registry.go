package optset

import (
	"fmt"

	"github.com/mfournier/optset/types/orderedmap"
)

// Registry indexes Options by every recognized textual form: the long form, the explicit
// short aliases and the automatically derived one-letter shortcuts. It is built once per
// descriptor set, is never mutated afterwards and is therefore safe for concurrent reuse
// across independent Parse invocations.
type Registry struct {
	forms    *orderedmap.OrderedMap[string, *Option]
	defaults *orderedmap.OrderedMap[string, interface{}]
	options  []*Option
}

// NewRegistry builds a Registry from the given descriptor set.
//
// Registration runs in declaration order. Long forms must be unique - a duplicate is an
// error. Explicit short aliases are registered unconditionally, except that an alias
// textually equal to another descriptor's long form is dropped (a long form always wins
// disambiguation). A descriptor with no explicit aliases and a canonical name longer than
// one character is given the shortcut '-' + first letter of its name, but only when no
// other descriptor already occupies that form - on collision the shortcut is silently
// dropped for the later descriptor.
func NewRegistry(options ...*Option) (*Registry, error) {
	registry := &Registry{
		forms:    orderedmap.NewOrderedMap[string, *Option](),
		defaults: orderedmap.NewOrderedMap[string, interface{}](),
		options:  options,
	}

	for _, option := range options {
		if _, exists := registry.forms.Get(option.Long); exists {
			return nil, fmt.Errorf("%w: long form %s is declared more than once", ErrDuplicateSwitch, option.Long)
		}
		registry.forms.Set(option.Long, option)
	}

	for _, option := range options {
		for _, short := range option.Shorts {
			if holder, exists := registry.forms.Get(short); exists && holder.Long == short {
				// the alias collides with another descriptor's long form
				continue
			}
			registry.forms.Set(short, option)
		}
	}

	for _, option := range options {
		if len(option.Shorts) > 0 || len(option.Name) <= 1 {
			continue
		}
		shortcut := "-" + string([]rune(option.Name)[0])
		if _, occupied := registry.forms.Get(shortcut); occupied {
			continue
		}
		registry.forms.Set(shortcut, option)
	}

	for _, option := range options {
		if option.Default != nil {
			registry.defaults.Set(option.Name, option.Default)
		}
	}

	return registry, nil
}

// Lookup resolves a textual form ("--verbose", "-v") to its Option
func (r *Registry) Lookup(form string) (*Option, bool) {
	return r.forms.Get(form)
}

// Options returns the descriptors in declaration order
func (r *Registry) Options() []*Option {
	return r.options
}

// FormCount returns the number of recognized textual forms
func (r *Registry) FormCount() int {
	return r.forms.Count()
}

// Forms returns every recognized textual form in registration order
func (r *Registry) Forms() []string {
	forms := make([]string, 0, r.forms.Count())
	for entry := r.forms.Front(); entry != nil; entry = entry.Next() {
		forms = append(forms, *entry.Key)
	}

	return forms
}

// seedDefaults returns a fresh value map pre-populated with the declared defaults
func (r *Registry) seedDefaults() map[string]interface{} {
	values := make(map[string]interface{}, r.defaults.Count())
	for entry := r.defaults.Front(); entry != nil; entry = entry.Next() {
		values[*entry.Key] = entry.Value
	}

	return values
}
