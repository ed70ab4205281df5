//go:build !linux

package srv

import "errors"

// ErrRestrictedUnsupported reports that seccomp-restricted posting needs
// Linux.
var ErrRestrictedUnsupported = errors.New("restricted services not supported on this platform")

func shimCommand(argv []string) (string, []string, error) {
	return "", nil, ErrRestrictedUnsupported
}
