// distns brings Plan 9-style namespace commands to Unix: per-process union
// binds, mounts over sshfs/9pfuse, a named-service rendezvous directory,
// remote execution, and an in-place rfork.
//
// Usage:
//
//	distns [--config file] [--debug] [command [args...]]
//
// With a command, distns runs it once and exits with its status. Without
// one it reads commands line by line, standing in for a host interpreter
// that would normally dispatch these builtins itself. The bind table lives
// for the life of the process.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/zqzqsb/distns/pkg/builtin"
	"github.com/zqzqsb/distns/pkg/config"
	"github.com/zqzqsb/distns/pkg/cpu"
	"github.com/zqzqsb/distns/pkg/interp"
	"github.com/zqzqsb/distns/pkg/mount"
	"github.com/zqzqsb/distns/pkg/namespace"
	"github.com/zqzqsb/distns/pkg/observability"
	"github.com/zqzqsb/distns/pkg/srv"
)

func main() {
	handleShim()

	fs := pflag.NewFlagSet("distns", pflag.ExitOnError)
	fs.SetInterspersed(false)
	cfgPath := fs.String("config", "", "path to distns.toml")
	debug := fs.Bool("debug", false, "enable debug logging")
	fs.Parse(os.Args[1:])

	logger := observability.InitLogger("distns", *debug)
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("config")
	}

	table := namespace.NewTable()
	defer table.Clear()
	runner := mount.ExecRunner{Log: logger}

	ctx := &builtin.Context{
		Table: table,
		Mounts: &mount.Orchestrator{
			Table: table,
			Run:   runner,
			Cfg:   cfg,
			Log:   logger,
		},
		Services: &srv.Registry{Dir: cfg.SrvDir, Log: logger},
		Remote: &cpu.Gateway{
			Run: runner,
			Ssh: cfg.Transports.Ssh,
			Log: logger,
		},
		Interp: interp.NewEnv(),
		Cfg:    cfg,
		Log:    logger,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	if fs.NArg() > 0 {
		name := fs.Arg(0)
		ok := ctx.Dispatch(name, fs.Args()[1:])
		os.Exit(exitCode(ctx, name, ok))
	}
	repl(ctx)
}

func repl(ctx *builtin.Context) {
	in := bufio.NewScanner(os.Stdin)
	fmt.Fprint(os.Stderr, "% ")
	for in.Scan() {
		fields := strings.Fields(in.Text())
		if len(fields) > 0 && fields[0] != "" && !strings.HasPrefix(fields[0], "#") {
			name := fields[0]
			if name == "exit" || name == "quit" {
				return
			}
			if _, known := builtin.Commands[name]; !known {
				fmt.Fprintf(os.Stderr, "distns: %s: unknown command\n", name)
			} else {
				ctx.Dispatch(name, fields[1:])
			}
		}
		fmt.Fprint(os.Stderr, "% ")
	}
}

// exitCode maps a handler result to a process exit code. cpu propagates the
// remote command's numeric status; a transport failure (-1) maps to 1.
func exitCode(ctx *builtin.Context, name string, ok bool) int {
	if name == "cpu" && ctx.LastStatus > 0 {
		return ctx.LastStatus
	}
	if ok {
		return 0
	}
	return 1
}
