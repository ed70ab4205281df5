package namespace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "empty", path: "", want: "."},
		{name: "root", path: "/", want: "/"},
		{name: "trailing slash", path: "/no/such/dir/", want: "/no/such/dir"},
		{name: "many trailing slashes", path: "/no/such/dir///", want: "/no/such/dir"},
		{name: "remote address untouched", path: "host:/remote/dir", want: "host:/remote/dir"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Canonical(tt.path); got != tt.want {
				t.Errorf("Canonical(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestCanonicalResolvesExistingPaths(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "real")
	if err := os.Mkdir(real, 0o755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "link")
	if err := os.Symlink(real, link); err != nil {
		t.Skipf("symlink: %v", err)
	}

	got := Canonical(link)
	want := Canonical(real)
	if got != want {
		t.Errorf("Canonical(%q) = %q, want %q", link, got, want)
	}
}

func TestCanonicalIdempotent(t *testing.T) {
	paths := []string{"", "/", "/no/such/dir///", t.TempDir(), "host:/remote/dir"}
	for _, p := range paths {
		once := Canonical(p)
		if twice := Canonical(once); twice != once {
			t.Errorf("Canonical not idempotent for %q: %q then %q", p, once, twice)
		}
	}
}
