package seccomp

import (
	"syscall"

	libseccomp "github.com/elastic/go-seccomp-bpf"
)

// ServiceFilter builds the restricted-service filter: everything allowed
// except DeniedSyscalls, which fail with EPERM rather than killing the
// service outright.
func ServiceFilter() (Filter, error) {
	policy := libseccomp.Policy{
		DefaultAction: libseccomp.ActionAllow,
		Syscalls: []libseccomp.SyscallGroup{
			{
				Action: libseccomp.ActionErrno | libseccomp.Action(syscall.EPERM),
				Names:  DeniedSyscalls,
			},
		},
	}
	program, err := policy.Assemble()
	if err != nil {
		return nil, err
	}
	return exportBPF(program)
}
