package srv

import "os"

// ShimMode is the hidden first argument that makes the distns binary act as
// the restricted-exec shim: it installs the service seccomp filter on
// itself, then execs the real service command. The filter survives the
// execve, which is the only way to land a filter between fork and exec
// without raw clone plumbing.
const ShimMode = "__service-exec"

func shimCommand(argv []string) (string, []string, error) {
	self, err := os.Executable()
	if err != nil {
		return "", nil, err
	}
	return self, append([]string{ShimMode, "--"}, argv...), nil
}
