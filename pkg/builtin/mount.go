package builtin

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/zqzqsb/distns/pkg/mount"
)

// Mount attaches an external resource to a mountpoint.
//
//	mount [-a|-b|-c] [-s spec] address mountpoint
//
// A "host:path" address is tried over sshfs first, then a generic mount(8)
// invocation with -s as the filesystem type hint. The mountpoint directory
// is created if absent. -n (Plan 9 no-auth) is accepted and ignored.
func Mount(ctx *Context, args []string) bool {
	fs := pflag.NewFlagSet("mount", pflag.ContinueOnError)
	fs.SetOutput(ctx.Stderr)
	after := fs.BoolP("after", "a", false, "union mount, searched after")
	before := fs.BoolP("before", "b", false, "union mount, searched before")
	fs.BoolP("create", "c", false, "create the mountpoint if missing")
	fs.BoolP("noauth", "n", false, "no-auth; ignored on Unix")
	spec := fs.StringP("spec", "s", "", "filesystem type / mount options")
	if err := fs.Parse(args); err != nil {
		return false
	}
	rest := fs.Args()
	if len(rest) != 2 {
		fmt.Fprintln(ctx.Stderr, "usage: mount [-abc] [-s spec] address mountpoint")
		return false
	}
	address, mountpoint := rest[0], rest[1]

	err := ctx.Mounts.Attach(address, mountpoint, mount.Options{
		Mode:   bindMode(*after, *before),
		Create: true,
		Spec:   *spec,
	})
	if err != nil {
		fmt.Fprintf(ctx.Stderr, "mount: %v\n", err)
		return false
	}
	return true
}
