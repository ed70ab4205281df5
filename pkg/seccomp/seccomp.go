// Package seccomp builds and installs the syscall filter used for
// restricted service posting (srv -p).
//
// The policy is allow-by-default and denies, with EPERM, the syscalls a
// posted service has no business making: mount-table and namespace
// mutation, module loading, tracing, reboot. The spawned command still runs
// as an ordinary opaque subprocess; the filter only narrows what it may ask
// of the kernel.
package seccomp

// DeniedSyscalls is the mutating syscall set refused to restricted
// services.
var DeniedSyscalls = []string{
	"mount", "umount2", "pivot_root", "chroot", "setns", "unshare",
	"ptrace", "process_vm_readv", "process_vm_writev",
	"init_module", "finit_module", "delete_module",
	"kexec_load", "kexec_file_load", "reboot", "swapon", "swapoff",
}
