package builtin

import "fmt"

// Addns adds a union namespace entry; shorthand for "bind -a from to",
// meant for namespace setup scripts.
func Addns(ctx *Context, args []string) bool {
	if len(args) != 2 {
		fmt.Fprintln(ctx.Stderr, "usage: addns from to")
		return false
	}
	return Bind(ctx, []string{"-a", args[0], args[1]})
}
