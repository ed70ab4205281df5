// Package rfork applies Plan 9 rfork-style attribute flags to the current
// process. Unlike Plan 9's rfork it never forks; subshell semantics belong
// to the host interpreter.
package rfork

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/zqzqsb/distns/pkg/interp"
)

// ErrUnsupported reports a namespace request on a platform without mount
// namespaces. It fails the whole call before any other flag is applied for
// that request.
var ErrUnsupported = errors.New("mount namespace not supported on this platform")

// Flags is the unordered set of independent rfork attribute flags.
type Flags uint

const (
	// NewNamespace requests a fresh mount namespace (letters n and c).
	NewNamespace Flags = 1 << iota
	// CopyNamespace is accepted and is a no-op (N, C): sharing-by-copy is
	// already the Unix default.
	CopyNamespace
	// NewEnv clears the environment and resets the search path (e).
	NewEnv
	// CopyEnv is a no-op (E).
	CopyEnv
	// NewProcessGroup detaches to a fresh process group (s).
	NewProcessGroup
	// NewFDGroup closes every fd numbered 3 and above (f).
	NewFDGroup
	// CopyFDGroup is a no-op (F).
	CopyFDGroup
)

// Parse maps an rfork flag string to a Flags set.
func Parse(s string) (Flags, error) {
	var flags Flags
	for _, c := range s {
		switch c {
		case 'n', 'c':
			flags |= NewNamespace
		case 'N', 'C':
			flags |= CopyNamespace
		case 'e':
			flags |= NewEnv
		case 'E':
			flags |= CopyEnv
		case 's':
			flags |= NewProcessGroup
		case 'f':
			flags |= NewFDGroup
		case 'F':
			flags |= CopyFDGroup
		default:
			return 0, fmt.Errorf("unknown flag %c", c)
		}
	}
	return flags, nil
}

// Apply mutates the current process. Zero flags default to a new process
// group alone. The apply order is fixed: namespace, process group,
// environment, fd group; an unsupported-platform namespace request
// therefore fails before anything else takes effect. A mid-sequence failure leaves
// the earlier flags applied; there is no rollback.
func Apply(flags Flags, it interp.Interp, defaultPath []string, log zerolog.Logger) error {
	if flags == 0 {
		flags = NewProcessGroup
	}

	if flags&NewNamespace != 0 {
		if err := newNamespace(); err != nil {
			return fmt.Errorf("rfork: %w", err)
		}
	}

	if flags&NewProcessGroup != 0 {
		if err := setProcessGroup(); err != nil {
			// Already being a group leader is the benign case.
			log.Debug().Err(err).Msg("rfork: setpgid")
		}
	}

	if flags&NewEnv != 0 {
		os.Clearenv()
		it.Assign("path", defaultPath)
	}

	if flags&NewFDGroup != 0 {
		closeFDs(3)
	}

	return nil
}
