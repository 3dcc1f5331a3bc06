package eval

import (
	"github.com/semafold/semafold/abstract"
	"github.com/semafold/semafold/module"
)

// ModuleHandler evaluates a module and returns the value that resumes the
// raiser.
type ModuleHandler func(m *module.Module) (abstract.Value, error)

// ModuleSignal is the resumable control transfer for module evaluation.
// Raising "evaluate this module" is not an ordinary call: the raising site
// yields to the innermost installed handler, which performs the evaluation
// and resumes the raiser with the resulting value. Execution is
// single-threaded, so the raiser is blocked until the handler returns.
//
// The handler stack is the sole extension point for intercepting module
// evaluation (tracing, substituting mocked modules, alternate memoization)
// without touching the loader.
type ModuleSignal struct {
	handlers []ModuleHandler
}

// NewModuleSignal returns a signal with no handler installed.
func NewModuleSignal() *ModuleSignal {
	return &ModuleSignal{}
}

// Install pushes h as the innermost handler. It returns the previously
// innermost handler (nil if none), so a wrapping handler can delegate, and
// a restore func that pops h again.
func (s *ModuleSignal) Install(h ModuleHandler) (prev ModuleHandler, restore func()) {
	if n := len(s.handlers); n > 0 {
		prev = s.handlers[n-1]
	}
	s.handlers = append(s.handlers, h)
	return prev, func() {
		s.handlers = s.handlers[:len(s.handlers)-1]
	}
}

// Raise suspends the caller and transfers control to the innermost
// handler; the handler's return value resumes the raiser.
func (s *ModuleSignal) Raise(m *module.Module) (abstract.Value, error) {
	if len(s.handlers) == 0 {
		return nil, ErrNoModuleHandler
	}
	return s.handlers[len(s.handlers)-1](m)
}
