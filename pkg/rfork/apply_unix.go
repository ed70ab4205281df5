//go:build unix

package rfork

import (
	"errors"

	"golang.org/x/sys/unix"
)

// setProcessGroup detaches to a fresh process group. EPERM means the
// process already leads its group, which callers treat as a no-op.
func setProcessGroup() error {
	err := unix.Setpgid(0, unix.Getpid())
	if err != nil && !errors.Is(err, unix.EPERM) {
		return err
	}
	return nil
}

// fdCeiling returns one past the highest fd the close loop must visit,
// taken from RLIMIT_NOFILE rather than a fixed constant.
func fdCeiling() int {
	var lim unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &lim); err != nil {
		return 1024
	}
	const max = 1 << 20
	if lim.Cur == unix.RLIM_INFINITY || lim.Cur > max {
		return max
	}
	return int(lim.Cur)
}
