package task

import (
	"fmt"
	"io"
)

// WithOutput redirects the registry's stdout and stderr writers - mainly useful in tests
func WithOutput(stdout, stderr io.Writer) ConfigureRegistryFunc {
	return func(registry *Registry, err *error) {
		if stdout != nil {
			registry.stdout = stdout
		}
		if stderr != nil {
			registry.stderr = stderr
		}
	}
}

// WithNameConverter allows setting a custom name converter for task names
func WithNameConverter(converter NameConversionFunc) ConfigureRegistryFunc {
	return func(registry *Registry, err *error) {
		if converter == nil {
			*err = fmt.Errorf("invalid NameConversionFunc (should not be nil)")
			return
		}
		registry.converter = converter
	}
}
