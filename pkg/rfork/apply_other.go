//go:build unix && !linux

package rfork

import "golang.org/x/sys/unix"

// newNamespace fails: only Linux has mount namespaces.
func newNamespace() error {
	return ErrUnsupported
}

func closeFDs(first int) {
	for fd := first; fd < fdCeiling(); fd++ {
		unix.Close(fd)
	}
}
