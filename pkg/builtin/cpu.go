package builtin

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/zqzqsb/distns/pkg/cpu"
)

// Cpu executes a command on a remote host, in the spirit of Plan 9's cpu.
//
//	cpu [-h host] [-u user] [-A] cmd [args...]
//
// The host comes from -h or the interpreter's $cpu variable. The local
// search path is projected to the remote as PATH, and the remote exit
// status becomes this command's status (-1 when the transport could not be
// started).
func Cpu(ctx *Context, args []string) bool {
	fs := pflag.NewFlagSet("cpu", pflag.ContinueOnError)
	fs.SetOutput(ctx.Stderr)
	// Everything after the command name belongs to the remote argv.
	fs.SetInterspersed(false)
	host := fs.StringP("host", "h", "", "remote host")
	user := fs.StringP("user", "u", "", "remote user")
	agent := fs.BoolP("agent", "A", false, "forward the ssh agent")
	if err := fs.Parse(args); err != nil {
		return false
	}

	if *host == "" {
		if v := ctx.Interp.Lookup("cpu"); len(v) > 0 {
			*host = v[0]
		}
	}
	if *host == "" {
		fmt.Fprintln(ctx.Stderr, "cpu: no host specified (use -h or set $cpu)")
		return false
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(ctx.Stderr, "usage: cpu [-h host] [-u user] [-A] cmd [args...]")
		return false
	}

	status, err := ctx.Remote.Exec(cpu.Request{
		Host:         *host,
		User:         *user,
		ForwardAgent: *agent,
		Argv:         fs.Args(),
	}, ctx.Interp.SearchPath())
	ctx.LastStatus = status
	if err != nil {
		fmt.Fprintf(ctx.Stderr, "cpu: %v\n", err)
		return false
	}
	return status == 0
}
