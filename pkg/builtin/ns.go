package builtin

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/zqzqsb/distns/pkg/namespace"
)

// Ns displays the current namespace.
//
//	ns [-r]
//
// The plain form prints source, mountpoint and priority per binding. With
// -r the output is a script of bind invocations that recreates the
// namespace. An empty table (plain form only) falls back to the OS mount
// table for situational awareness.
func Ns(ctx *Context, args []string) bool {
	fs := pflag.NewFlagSet("ns", pflag.ContinueOnError)
	fs.SetOutput(ctx.Stderr)
	recreate := fs.BoolP("recreate", "r", false, "print as a recreation script")
	if err := fs.Parse(args); err != nil {
		return false
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(ctx.Stderr, "usage: ns [-r]")
		return false
	}

	ctx.Table.Render(ctx.Stdout, *recreate)

	if ctx.Table.Len() == 0 && !*recreate {
		if err := namespace.SystemMounts(ctx.Stdout); err != nil {
			// No /proc/mounts on this host; let mount(8) print its table.
			ctx.Mounts.Run.Run(ctx.Cfg.Transports.Mount)
		}
	}
	return true
}
