package mount

import (
	"errors"
	"os"
	"os/exec"

	"github.com/rs/zerolog"
)

// Runner executes one external command and blocks until it exits. Only the
// exit status is examined; output is never parsed.
type Runner interface {
	// Run returns the command's exit status. The error is non-nil only
	// when the command could not be started at all, in which case the
	// status is -1.
	Run(name string, args ...string) (int, error)
}

// ExecRunner runs commands with the caller's stdin/stdout/stderr inherited,
// so interactive transports (sshfs passphrase prompts and the like) still
// reach the terminal.
type ExecRunner struct {
	Log zerolog.Logger
}

func (r ExecRunner) Run(name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	r.Log.Debug().Str("cmd", name).Strs("args", args).Msg("exec")
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
