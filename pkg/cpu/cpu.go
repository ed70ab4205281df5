// Package cpu executes a command on a remote host over ssh, in the spirit
// of Plan 9's cpu: the local search path is projected into the remote
// environment and the remote exit status becomes the local one.
package cpu

import (
	"strings"

	"github.com/rs/zerolog"
)

// Runner is the subprocess transport; satisfied by mount.ExecRunner.
type Runner interface {
	Run(name string, args ...string) (int, error)
}

// Request describes one remote execution.
type Request struct {
	Host         string
	User         string
	ForwardAgent bool
	Argv         []string
}

// Command composes the single remote command string: a PATH assignment
// built from the caller's search path, then the argv re-joined with spaces.
// Arguments containing whitespace are wrapped in single quotes; embedded
// quote characters inside an argument are not escaped (known limitation,
// kept as-is).
func Command(searchPath, argv []string) string {
	var b strings.Builder
	if len(searchPath) > 0 {
		b.WriteString("PATH=")
		b.WriteString(strings.Join(searchPath, ":"))
		b.WriteString("; ")
	}
	for i, arg := range argv {
		if i > 0 {
			b.WriteByte(' ')
		}
		if strings.ContainsAny(arg, " \t") {
			b.WriteByte('\'')
			b.WriteString(arg)
			b.WriteByte('\'')
		} else {
			b.WriteString(arg)
		}
	}
	return b.String()
}

// Gateway invokes the ssh transport.
type Gateway struct {
	Run Runner
	Ssh string
	Log zerolog.Logger
}

// Exec runs the request on its host in batch mode (no password prompt).
// The returned status is the remote command's exit status; a status of -1
// with a non-nil error means the transport itself could not be started,
// which keeps "remote command failed" distinguishable from "transport
// failed".
func (g *Gateway) Exec(req Request, searchPath []string) (int, error) {
	args := []string{}
	if req.ForwardAgent {
		args = append(args, "-A")
	}
	args = append(args, "-o", "BatchMode=yes")
	if req.User != "" {
		args = append(args, "-l", req.User)
	}
	args = append(args, req.Host, Command(searchPath, req.Argv))

	g.Log.Debug().Str("host", req.Host).Strs("ssh", args).Msg("cpu")
	return g.Run.Run(g.Ssh, args...)
}
