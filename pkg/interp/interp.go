// Package interp defines the boundary to the host command interpreter.
//
// The namespace subsystem never owns variables or the command-success flag;
// it reads and writes them through this interface. The real interpreter
// (an rc-like shell) lives outside this module.
package interp

import (
	"os"
	"strings"
)

// Interp is the slice of the host interpreter the builtins need: list-valued
// variable lookup and assignment, the search path, and the global
// command-success flag.
type Interp interface {
	// Lookup returns the value of a variable, or nil if unset.
	// Variables are list-valued; scalar variables are one-element lists.
	Lookup(name string) []string

	// Assign sets a variable. The interpreter decides whether the
	// assignment is also exported to child processes.
	Assign(name string, value []string)

	// SearchPath returns the interpreter's executable search path list.
	SearchPath() []string

	// SetStatus sets the global command-success flag.
	SetStatus(ok bool)
}

// Env is an Interp backed by the process environment. It is what cmd/distns
// runs with; tests substitute their own implementations.
//
// The search path maps to $PATH, everything else to an environment variable
// of the same name. List values are joined with spaces on assignment, which
// matches how the C implementation flattened rc lists into the environment.
type Env struct {
	status bool
}

func NewEnv() *Env { return &Env{status: true} }

func (e *Env) Lookup(name string) []string {
	// rc aliases $path to $PATH; keep that visible through the env form.
	if name == "path" {
		return e.SearchPath()
	}
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	return []string{v}
}

func (e *Env) Assign(name string, value []string) {
	if name == "path" {
		os.Setenv("PATH", strings.Join(value, ":"))
		return
	}
	os.Setenv(name, strings.Join(value, " "))
}

func (e *Env) SearchPath() []string {
	p := os.Getenv("PATH")
	if p == "" {
		return nil
	}
	return strings.Split(p, ":")
}

func (e *Env) SetStatus(ok bool) { e.status = ok }

// Status reports the current command-success flag.
func (e *Env) Status() bool { return e.status }
