// Package builtin implements the command surface: bind, mount, unmount,
// ns, cpu, import, srv, rfork and addns.
//
// Handlers parse their own arguments, compose the namespace, mount, srv,
// cpu and rfork packages, and report success through the host interpreter's
// status flag. All diagnostics are one-line messages on stderr; no failure
// is fatal to the host process.
package builtin

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/zqzqsb/distns/pkg/config"
	"github.com/zqzqsb/distns/pkg/cpu"
	"github.com/zqzqsb/distns/pkg/interp"
	"github.com/zqzqsb/distns/pkg/mount"
	"github.com/zqzqsb/distns/pkg/namespace"
	"github.com/zqzqsb/distns/pkg/srv"
)

// Context carries the subsystem state a handler runs against. One Context
// lives for the whole interpreter session; the host serializes handler
// invocations, so none of this is locked.
type Context struct {
	Table    *namespace.Table
	Mounts   *mount.Orchestrator
	Services *srv.Registry
	Remote   *cpu.Gateway
	Interp   interp.Interp
	Cfg      config.Config
	Log      zerolog.Logger

	Stdout io.Writer
	Stderr io.Writer

	// LastStatus is the numeric exit status of the most recent cpu
	// invocation; -1 means the transport itself could not be started.
	LastStatus int
}

// Handler is one builtin command. The returned bool is the command-success
// flag the host observes.
type Handler func(*Context, []string) bool

// Commands maps command names to handlers.
var Commands = map[string]Handler{
	"bind":    Bind,
	"mount":   Mount,
	"unmount": Unmount,
	"ns":      Ns,
	"cpu":     Cpu,
	"import":  Import,
	"srv":     Srv,
	"rfork":   Rfork,
	"addns":   Addns,
}

// Dispatch runs a named command and pushes its result into the host's
// status flag. Unknown names report false.
func (c *Context) Dispatch(name string, args []string) bool {
	h, ok := Commands[name]
	if !ok {
		return false
	}
	ok = h(c, args)
	c.Interp.SetStatus(ok)
	return ok
}

// bindMode folds the -a/-b flags into a chain mode. The flags are mutually
// exclusive; when both are given, -b wins.
func bindMode(after, before bool) namespace.Mode {
	switch {
	case before:
		return namespace.ModeBefore
	case after:
		return namespace.ModeAfter
	default:
		return namespace.ModeReplace
	}
}
