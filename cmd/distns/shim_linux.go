package main

import (
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"

	"github.com/zqzqsb/distns/pkg/seccomp"
	"github.com/zqzqsb/distns/pkg/srv"
)

// handleShim intercepts the hidden restricted-exec mode: install the
// service syscall filter on this process, then exec the real service
// command so the filter is inherited. Does not return in shim mode.
func handleShim() {
	if len(os.Args) < 2 || os.Args[1] != srv.ShimMode {
		return
	}
	argv := os.Args[2:]
	if len(argv) > 0 && argv[0] == "--" {
		argv = argv[1:]
	}
	if len(argv) == 0 {
		fmt.Fprintln(os.Stderr, "distns: shim: no command")
		os.Exit(125)
	}

	filter, err := seccomp.ServiceFilter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "distns: shim: %v\n", err)
		os.Exit(125)
	}
	if err := seccomp.Install(filter); err != nil {
		fmt.Fprintf(os.Stderr, "distns: shim: %v\n", err)
		os.Exit(125)
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "distns: shim: %v\n", err)
		os.Exit(127)
	}
	if err := unix.Exec(path, argv, os.Environ()); err != nil {
		fmt.Fprintf(os.Stderr, "distns: shim: exec %s: %v\n", path, err)
		os.Exit(126)
	}
}
