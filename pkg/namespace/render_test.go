package namespace

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderPlainForm(t *testing.T) {
	tab := NewTable()
	tab.Add("/tmp/a", "/mnt/x", ModeBefore)
	tab.Add("/tmp/b", "/mnt/x", ModeAfter)

	var buf bytes.Buffer
	tab.Render(&buf, false)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if lines[0] != "/tmp/a\t/mnt/x\t(before)" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "/tmp/b\t/mnt/x\t(after)" {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestRenderRecreateForm(t *testing.T) {
	tab := NewTable()
	tab.Add("/tmp/a", "/mnt/x", ModeBefore)
	tab.Add("/tmp/b", "/mnt/y", ModeReplace)

	var buf bytes.Buffer
	tab.Render(&buf, true)

	want := "bind -b /tmp/a /mnt/x\nbind /tmp/b /mnt/y\n"
	if buf.String() != want {
		t.Errorf("recreate form = %q, want %q", buf.String(), want)
	}
}

func TestWalkOrderIsStable(t *testing.T) {
	tab := NewTable()
	tab.Add("/tmp/c", "/mnt/c", ModeReplace)
	tab.Add("/tmp/a", "/mnt/a", ModeReplace)
	tab.Add("/tmp/b", "/mnt/b", ModeReplace)

	var first, second bytes.Buffer
	tab.Render(&first, false)
	tab.Render(&second, false)
	if first.String() != second.String() {
		t.Error("render order not stable across runs")
	}
	if !strings.HasPrefix(first.String(), "/tmp/a") {
		t.Errorf("expected sorted mountpoints, got %q", first.String())
	}
}
