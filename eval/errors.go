package eval

import (
	"errors"
	"fmt"
)

// ErrNoModuleHandler is returned by ModuleSignal.Raise when no handler is
// installed. The module signal always expects a resuming handler; raising
// without one is a programming error in the assembled stack, not a data
// error.
var ErrNoModuleHandler = errors.New("eval: no module evaluation handler installed")

// ModuleNotFoundError is returned by Load when the pending table has no
// entry for the requested name. Fatal: the run terminates and the cache is
// left untouched.
type ModuleNotFoundError struct {
	Name string
}

func (e *ModuleNotFoundError) Error() string {
	return fmt.Sprintf("eval: module %q not found", e.Name)
}

// EmptyModuleListError is returned by EvaluateModules when given no
// modules. Fatal.
type EmptyModuleListError struct{}

func (EmptyModuleListError) Error() string {
	return "eval: no modules to evaluate"
}
