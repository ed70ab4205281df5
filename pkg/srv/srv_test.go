package srv

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

func newRegistry(t *testing.T) *Registry {
	t.Helper()
	return &Registry{Dir: filepath.Join(t.TempDir(), "srv"), Log: zerolog.Nop()}
}

func TestListEmptyDirectory(t *testing.T) {
	r := newRegistry(t)
	entries, err := r.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("entries = %v, want none", entries)
	}
}

func TestListClassifiesNodeKinds(t *testing.T) {
	r := newRegistry(t)
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(r.Dir, "plain"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := unix.Mkfifo(filepath.Join(r.Dir, "pipe"), 0o666); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(r.Dir, ".hidden"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := r.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %v, want pipe and plain", entries)
	}
	if entries[0].Name != "pipe" || entries[0].Kind != "fifo" {
		t.Errorf("entry 0 = %+v, want fifo pipe", entries[0])
	}
	if entries[1].Name != "plain" || entries[1].Kind != "file" {
		t.Errorf("entry 1 = %+v, want plain file", entries[1])
	}
}

func TestLookup(t *testing.T) {
	r := newRegistry(t)
	if _, err := r.Lookup("ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup missing = %v, want ErrNotFound", err)
	}

	os.MkdirAll(r.Dir, 0o755)
	want := filepath.Join(r.Dir, "db")
	if err := os.WriteFile(want, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := r.Lookup("db")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != want {
		t.Errorf("Lookup = %q, want %q", got, want)
	}
}

func TestRemove(t *testing.T) {
	r := newRegistry(t)
	if err := r.Remove("ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove missing = %v, want ErrNotFound", err)
	}

	os.MkdirAll(r.Dir, 0o755)
	path := filepath.Join(r.Dir, "db")
	os.WriteFile(path, nil, 0o644)
	if err := r.Remove("db"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("service object still present after Remove")
	}
}

func TestServiceNamesAreOneSegment(t *testing.T) {
	r := newRegistry(t)
	for _, name := range []string{"", "a/b", "../escape"} {
		if _, err := r.path(name); err == nil {
			t.Errorf("path(%q) accepted, want error", name)
		}
	}
}

func TestPostCreatesFifoAndSpawns(t *testing.T) {
	r := newRegistry(t)
	pid, err := r.Post("clock", []string{"sleep", "0"}, false)
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if pid <= 0 {
		t.Errorf("pid = %d, want a live pid", pid)
	}
	fi, err := os.Stat(filepath.Join(r.Dir, "clock"))
	if err != nil {
		t.Fatalf("stat service object: %v", err)
	}
	if fi.Mode()&os.ModeNamedPipe == 0 {
		t.Errorf("service object mode = %v, want a named pipe", fi.Mode())
	}
}

func TestPostReplacesStaleObject(t *testing.T) {
	r := newRegistry(t)
	os.MkdirAll(r.Dir, 0o755)
	stale := filepath.Join(r.Dir, "clock")
	os.WriteFile(stale, []byte("stale"), 0o644)

	if _, err := r.Post("clock", []string{"sleep", "0"}, false); err != nil {
		t.Fatalf("Post: %v", err)
	}
	fi, err := os.Stat(stale)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Mode()&os.ModeNamedPipe == 0 {
		t.Error("stale object not replaced by a fresh FIFO")
	}
}

func TestPostSpawnFailureRemovesFifo(t *testing.T) {
	r := newRegistry(t)
	_, err := r.Post("broken", []string{"/no/such/command"}, false)
	if err == nil {
		t.Fatal("expected spawn failure")
	}
	if _, statErr := os.Stat(filepath.Join(r.Dir, "broken")); !os.IsNotExist(statErr) {
		t.Error("FIFO should be removed when the spawn fails")
	}
}
