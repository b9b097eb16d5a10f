package task

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/iancoleman/strcase"

	"github.com/mfournier/optset"
	"github.com/mfournier/optset/parse"
	"github.com/mfournier/optset/types/orderedmap"
	"github.com/mfournier/optset/types/queue"
	"github.com/mfournier/optset/util"
)

// Registry is the process-scoped task table. It is constructed explicitly at startup and
// passed to whatever front end dispatches task invocations - there is no package-level
// shared state. Handler invocations are placed on a FIFO queue and drained by
// ExecuteQueued, so a front end may queue several tasks before running any of them.
type Registry struct {
	tasks     *orderedmap.OrderedMap[string, *Task]
	pending   *queue.Q[invocation]
	results   map[string]error
	converter NameConversionFunc
	stdout    io.Writer
	stderr    io.Writer
}

// NewRegistry creates a Registry with functional configuration. Task names are normalized
// with strcase.ToKebab by default, so Register(&Task{Name: "BuildAll"}) and
// Run("build-all", ...) refer to the same task.
func NewRegistry(configs ...ConfigureRegistryFunc) (*Registry, error) {
	registry := &Registry{
		tasks:     orderedmap.NewOrderedMap[string, *Task](),
		pending:   queue.New[invocation](),
		results:   map[string]error{},
		converter: strcase.ToKebab,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}

	var err error
	for _, config := range configs {
		config(registry, &err)
		if err != nil {
			return nil, err
		}
	}

	return registry, nil
}

// Register adds a task to the table. This is the single entry point through which
// built-in and externally loaded task modules make themselves known.
func (r *Registry) Register(task *Task) error {
	if task == nil || task.Name == "" {
		return fmt.Errorf("%w: a task needs a name", ErrTaskInvalid)
	}
	if task.Handler == nil {
		return fmt.Errorf("%w: task %s needs a handler", ErrTaskInvalid, task.Name)
	}
	name := r.converter(task.Name)
	if _, exists := r.tasks.Get(name); exists {
		return fmt.Errorf(optset.FmtErrorWithString, ErrTaskExists, name)
	}
	r.tasks.Set(name, task)

	return nil
}

// Lookup resolves a (possibly unnormalized) task name to its Task
func (r *Registry) Lookup(name string) (*Task, bool) {
	return r.tasks.Get(r.converter(name))
}

// Names returns the registered task names in registration order
func (r *Registry) Names() []string {
	names := make([]string, 0, r.tasks.Count())
	for entry := r.tasks.Front(); entry != nil; entry = entry.Next() {
		names = append(names, *entry.Key)
	}

	return names
}

// Queue parses args against the named task's switch set and queues the handler
// invocation. Parse failures are reported to the registry's stderr writer and returned;
// nothing is queued on error.
func (r *Registry) Queue(name string, args []string) error {
	task, found := r.Lookup(name)
	if !found {
		return fmt.Errorf(optset.FmtErrorWithString, ErrTaskNotFound, name)
	}

	parser, err := optset.NewParser(task.Options)
	if err != nil {
		return err
	}
	result, err := parser.Parse(args)
	if err != nil {
		r.reportError(name, err)
		return err
	}
	r.pending.Enqueue(invocation{task: task, result: result})

	return nil
}

// ExecuteQueued drains the invocation queue in FIFO order and returns the count of
// handler errors. Individual handler results can be retrieved with ExecutionError.
func (r *Registry) ExecuteQueued() int {
	failed := 0
	for r.pending.Len() > 0 {
		call, _ := r.pending.Dequeue()
		err := call.task.Handler(call.result)
		r.results[r.converter(call.task.Name)] = err
		if err != nil {
			r.reportError(call.task.Name, err)
			failed++
		}
	}

	return failed
}

// ExecutionError returns the error recorded for the named task handler after execution.
// Returns nil on success and a wrapped ErrTaskNotFound when the task never ran.
func (r *Registry) ExecutionError(name string) error {
	if err, ran := r.results[r.converter(name)]; ran {
		return err
	}

	return fmt.Errorf("%w: %s has not been executed", ErrTaskNotFound, name)
}

// Run is Queue followed by ExecuteQueued for a single task, returning the parse error or
// the handler error, whichever occurs.
func (r *Registry) Run(name string, args []string) error {
	if err := r.Queue(name, args); err != nil {
		return err
	}
	r.ExecuteQueued()

	return r.ExecutionError(name)
}

// RunString splits a command line the way a shell would and calls Run
func (r *Registry) RunString(name, line string) error {
	args, err := parse.Split(line)
	if err != nil {
		return err
	}

	return r.Run(name, args)
}

// PrintTasks writes the registered tasks and their switches to w, truncated to the
// terminal width when stdout is a terminal.
func (r *Registry) PrintTasks(w io.Writer) {
	width := util.TerminalWidth()
	for entry := r.tasks.Front(); entry != nil; entry = entry.Next() {
		task := entry.Value
		line := *entry.Key
		if task.Description != "" {
			line += "  # " + task.Description
		}
		_, _ = fmt.Fprintln(w, clip(line, width))
		for _, option := range task.Options {
			_, _ = fmt.Fprintln(w, clip("  "+option.String(), width))
		}
	}
}

// Usage prints the task listing to the registry's stdout writer
func (r *Registry) Usage() {
	r.PrintTasks(r.stdout)
}

func (r *Registry) reportError(name string, err error) {
	_, _ = color.New(color.FgRed).Fprintf(r.stderr, "%s: %s\n", name, err)
}

func clip(line string, width int) string {
	runes := []rune(line)

	return string(runes[:util.Min(len(runes), width)])
}
