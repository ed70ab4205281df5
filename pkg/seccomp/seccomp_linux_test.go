package seccomp

import "testing"

// Building the filter validates every syscall name against the running
// architecture's table; install is exercised only by the shim.
func TestServiceFilterAssembles(t *testing.T) {
	filter, err := ServiceFilter()
	if err != nil {
		t.Fatalf("ServiceFilter: %v", err)
	}
	if len(filter) == 0 {
		t.Fatal("empty filter")
	}
	prog := filter.SockFprog()
	if int(prog.Len) != len(filter) {
		t.Errorf("SockFprog.Len = %d, want %d", prog.Len, len(filter))
	}
}
