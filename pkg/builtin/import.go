package builtin

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Import mounts a remote file tree into the local namespace, like Plan 9's
// import.
//
//	import [-a|-b|-c] host path [mountpoint]
//
// The tree is reached as host:path over sshfs, with 9pfuse as the fallback
// for 9P servers. Without a mountpoint the same path is used locally.
func Import(ctx *Context, args []string) bool {
	fs := pflag.NewFlagSet("import", pflag.ContinueOnError)
	fs.SetOutput(ctx.Stderr)
	after := fs.BoolP("after", "a", false, "union mount, searched after")
	before := fs.BoolP("before", "b", false, "union mount, searched before")
	fs.BoolP("create", "c", false, "create the mountpoint if missing")
	if err := fs.Parse(args); err != nil {
		return false
	}
	rest := fs.Args()
	if len(rest) < 2 || len(rest) > 3 {
		fmt.Fprintln(ctx.Stderr, "usage: import [-abc] host path [mountpoint]")
		return false
	}
	host, path := rest[0], rest[1]
	mountpoint := path
	if len(rest) == 3 {
		mountpoint = rest[2]
	}

	ctx.Log.Debug().Str("host", host).Str("path", path).Str("mountpoint", mountpoint).Msg("import")
	if err := ctx.Mounts.Import(host, path, mountpoint, bindMode(*after, *before)); err != nil {
		fmt.Fprintf(ctx.Stderr, "import: %v\n", err)
		return false
	}
	return true
}
