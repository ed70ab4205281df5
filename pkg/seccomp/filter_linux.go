package seccomp

import (
	"fmt"
	"unsafe"

	"golang.org/x/net/bpf"
	"golang.org/x/sys/unix"
)

// Filter is a seccomp filter in kernel BPF format.
type Filter []unix.SockFilter

// SockFprog converts the filter to the form seccomp(2) expects. The
// underlying array must stay alive across the syscall, which the caller's
// reference to the Filter guarantees.
func (f Filter) SockFprog() *unix.SockFprog {
	b := []unix.SockFilter(f)
	return &unix.SockFprog{
		Len:    uint16(len(b)),
		Filter: &b[0],
	}
}

// exportBPF assembles bpf instructions into kernel-ready SockFilters.
func exportBPF(insns []bpf.Instruction) (Filter, error) {
	raw, err := bpf.Assemble(insns)
	if err != nil {
		return nil, err
	}
	filter := make(Filter, 0, len(raw))
	for _, ins := range raw {
		filter = append(filter, unix.SockFilter{
			Code: ins.Op,
			Jt:   ins.Jt,
			Jf:   ins.Jf,
			K:    ins.K,
		})
	}
	return filter, nil
}

// Install sets no_new_privs and loads the filter onto the current process.
// The filter is inherited across fork and execve, so installing in the
// re-exec shim confines the service command that is exec'd next.
func Install(f Filter) error {
	if err := unix.Prctl(unix.PR_SET_NO_NEW_PRIVS, 1, 0, 0, 0); err != nil {
		return fmt.Errorf("prctl(NO_NEW_PRIVS): %w", err)
	}
	prog := f.SockFprog()
	if _, _, errno := unix.Syscall(unix.SYS_SECCOMP,
		unix.SECCOMP_SET_MODE_FILTER, 0, uintptr(unsafe.Pointer(prog))); errno != 0 {
		return fmt.Errorf("seccomp(SET_MODE_FILTER): %w", errno)
	}
	return nil
}
