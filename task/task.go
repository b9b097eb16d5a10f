// Package task provides a process-scoped task registry and dispatcher on top of the
// optset parsing engine.
//
// Each Task couples a name with its switch descriptor set and a handler. External modules
// contribute tasks through the explicit Register entry point - there is no implicit or
// evaluated registration - and the registry dispatches an invocation by building a fresh
// parser for the task's descriptors, parsing the supplied arguments and calling the
// handler with the typed result.
package task

import (
	"errors"

	"github.com/mfournier/optset"
)

// HandlerFunc is invoked with the parsed switch values and positionals of its task
type HandlerFunc func(result *optset.ParseResult) error

// NameConversionFunc normalizes a task name before registration and lookup
type NameConversionFunc func(string) string

// ConfigureRegistryFunc is used when defining Registry options
type ConfigureRegistryFunc func(registry *Registry, err *error)

// Task couples a name with its switch descriptors and the handler receiving the parse
// result
type Task struct {
	Name        string
	Description string
	Options     []*optset.Option
	Handler     HandlerFunc
}

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrTaskInvalid  = errors.New("invalid task")
	ErrTaskExists   = errors.New("task already registered")
)

type invocation struct {
	task   *Task
	result *optset.ParseResult
}
