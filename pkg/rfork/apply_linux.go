package rfork

import (
	"errors"

	"golang.org/x/sys/unix"
)

// newNamespace moves the process into a fresh mount namespace.
func newNamespace() error {
	return unix.Unshare(unix.CLONE_NEWNS)
}

// closeFDs closes every fd from first upward. close_range(2) covers the
// whole range in one call; older kernels fall back to a walk bounded by
// RLIMIT_NOFILE.
func closeFDs(first int) {
	if err := unix.CloseRange(uint(first), ^uint(0), 0); err == nil || !errors.Is(err, unix.ENOSYS) {
		return
	}
	for fd := first; fd < fdCeiling(); fd++ {
		unix.Close(fd)
	}
}
