package builtin

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
)

// Srv manages named services in the rendezvous directory.
//
//	srv                 list services
//	srv name            connect: print the path, export $srv_<name>
//	srv name cmd ...    post: create a FIFO, run cmd on it, export $apid
//	srv -p name cmd ... post with a seccomp-restricted command (Linux)
//	srv -r name         remove a service
//
// State lives on the filesystem, so services persist across subshells and
// are shared with unrelated processes.
func Srv(ctx *Context, args []string) bool {
	fs := pflag.NewFlagSet("srv", pflag.ContinueOnError)
	fs.SetOutput(ctx.Stderr)
	fs.SetInterspersed(false)
	remove := fs.BoolP("remove", "r", false, "remove the named service")
	restricted := fs.BoolP("restricted", "p", false, "post under a restrictive syscall filter")
	if err := fs.Parse(args); err != nil {
		return false
	}
	rest := fs.Args()

	if len(rest) == 0 && !*remove {
		entries, err := ctx.Services.List()
		if err != nil {
			fmt.Fprintf(ctx.Stderr, "srv: %v\n", err)
			return false
		}
		if len(entries) == 0 {
			fmt.Fprintf(ctx.Stdout, "# no services (srv dir: %s)\n", ctx.Services.Dir)
			return true
		}
		for _, e := range entries {
			fmt.Fprintf(ctx.Stdout, "%s\t%s\t(%s)\n", e.Name, e.Path, e.Kind)
		}
		return true
	}

	if len(rest) == 0 {
		fmt.Fprintln(ctx.Stderr, "usage: srv [-r] [name [cmd ...]]")
		return false
	}
	name := rest[0]

	if *remove {
		if err := ctx.Services.Remove(name); err != nil {
			fmt.Fprintf(ctx.Stderr, "srv: %v\n", err)
			return false
		}
		ctx.Log.Debug().Str("service", name).Msg("removed")
		return true
	}

	if len(rest) == 1 {
		if *restricted {
			fmt.Fprintln(ctx.Stderr, "usage: srv -p name cmd [args...]")
			return false
		}
		path, err := ctx.Services.Lookup(name)
		if err != nil {
			fmt.Fprintf(ctx.Stderr, "srv: %v\n", err)
			return false
		}
		ctx.Interp.Assign("srv_"+name, []string{path})
		fmt.Fprintln(ctx.Stdout, path)
		return true
	}

	pid, err := ctx.Services.Post(name, rest[1:], *restricted)
	if err != nil {
		fmt.Fprintf(ctx.Stderr, "srv: %v\n", err)
		return false
	}
	ctx.Interp.Assign("apid", []string{strconv.Itoa(pid)})
	return true
}
