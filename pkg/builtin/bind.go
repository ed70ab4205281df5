package builtin

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/zqzqsb/distns/pkg/namespace"
)

// Bind overlays one directory onto another in the interpreter's namespace.
// Per-process and unprivileged, unlike a Unix mount.
//
//	bind [-a|-b|-c] from to
//
// -b puts from before to in the union (searched first), -a after (searched
// last); the default replaces every existing binding at to. -c creates the
// mountpoint if missing.
func Bind(ctx *Context, args []string) bool {
	fs := pflag.NewFlagSet("bind", pflag.ContinueOnError)
	fs.SetOutput(ctx.Stderr)
	after := fs.BoolP("after", "a", false, "union mount, from searched after to")
	before := fs.BoolP("before", "b", false, "union mount, from searched before to")
	create := fs.BoolP("create", "c", false, "create the mountpoint if missing")
	if err := fs.Parse(args); err != nil {
		return false
	}
	rest := fs.Args()
	if len(rest) < 2 {
		fmt.Fprintln(ctx.Stderr, "usage: bind [-abc] from to")
		return false
	}
	if len(rest) > 2 {
		fmt.Fprintln(ctx.Stderr, "bind: too many arguments")
		return false
	}
	from, to := rest[0], rest[1]
	mode := bindMode(*after, *before)

	if _, err := os.Stat(from); err != nil {
		fmt.Fprintf(ctx.Stderr, "bind: %s: %v\n", from, err)
		return false
	}
	if !ensureMountpoint(to, *create) {
		fmt.Fprintf(ctx.Stderr, "bind: %s: no such file or directory\n", to)
		return false
	}

	cfrom := namespace.Canonical(from)
	cto := namespace.Canonical(to)
	ctx.Table.Add(cfrom, cto, mode)

	ctx.Interp.Assign("ns_bind_last", []string{cfrom, cto})
	ctx.Log.Debug().Str("from", cfrom).Str("to", cto).Stringer("mode", mode).Msg("bind")
	return true
}

// ensureMountpoint accepts an existing file or directory, or creates a
// directory when create is set. File mountpoints are allowed so single
// files can be bound.
func ensureMountpoint(to string, create bool) bool {
	if _, err := os.Stat(to); err == nil {
		return true
	}
	if !create {
		return false
	}
	return os.MkdirAll(to, 0o755) == nil
}
