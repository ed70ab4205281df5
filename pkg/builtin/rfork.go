package builtin

import (
	"fmt"

	"github.com/zqzqsb/distns/pkg/rfork"
)

// Rfork applies Plan 9 rfork flags to the current process.
//
//	rfork [cCeEnNsfF]
//
// n/c unshare the mount namespace (Linux), e clears the environment and
// resets the search path, s detaches to a new process group, f closes fds
// 3 and above; the capital "copy" letters are accepted no-ops. No letters
// means s. Unlike Plan 9 this never forks; use the interpreter's subshell
// syntax for that.
func Rfork(ctx *Context, args []string) bool {
	if len(args) > 1 {
		fmt.Fprintln(ctx.Stderr, "usage: rfork [cCeEnNsfF]")
		return false
	}
	var flags rfork.Flags
	if len(args) == 1 {
		var err error
		flags, err = rfork.Parse(args[0])
		if err != nil {
			fmt.Fprintf(ctx.Stderr, "rfork: %v\n", err)
			return false
		}
	}
	if err := rfork.Apply(flags, ctx.Interp, ctx.Cfg.DefaultPath, ctx.Log); err != nil {
		fmt.Fprintf(ctx.Stderr, "%v\n", err)
		return false
	}
	return true
}
