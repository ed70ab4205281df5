package builtin

import "fmt"

// Unmount removes a namespace binding and best-effort unmounts the
// mountpoint.
//
//	unmount [from] mountpoint
//
// With from, only that binding is removed; without it, every binding at the
// mountpoint. An OS-level unmount is attempted as well, with fusermount -u
// as the FUSE fallback; success is the union of the two signals.
func Unmount(ctx *Context, args []string) bool {
	var from, mountpoint string
	switch len(args) {
	case 1:
		mountpoint = args[0]
	case 2:
		from, mountpoint = args[0], args[1]
	case 0:
		fmt.Fprintln(ctx.Stderr, "usage: unmount [from] mountpoint")
		return false
	default:
		fmt.Fprintln(ctx.Stderr, "unmount: too many arguments")
		return false
	}

	if err := ctx.Mounts.Detach(from, mountpoint); err != nil {
		fmt.Fprintf(ctx.Stderr, "unmount: %v\n", err)
		return false
	}
	return true
}
