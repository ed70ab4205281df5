// Package srv is the filesystem-backed service rendezvous registry.
//
// A service is a named pipe (or a pre-existing socket) directly inside a
// well-known directory; there is no in-memory index, so services posted by
// one process are visible to every other. The directory is intentionally
// unlocked: concurrent posts to the same name race, and the last writer
// wins.
package srv

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

// ErrNotFound reports a missing service object.
var ErrNotFound = errors.New("not found")

// Entry describes one service object found in the registry directory.
type Entry struct {
	Name string
	Path string
	Kind string // "fifo", "sock" or "file"
}

// Registry operates on the service directory. It holds no state beyond the
// directory path.
type Registry struct {
	Dir string
	Log zerolog.Logger
}

// List scans the service directory, skipping hidden entries. A missing or
// empty directory yields an empty slice and no error.
func (r *Registry) List() ([]Entry, error) {
	r.ensureDir()
	dirents, err := os.ReadDir(r.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var entries []Entry
	for _, d := range dirents {
		if strings.HasPrefix(d.Name(), ".") {
			continue
		}
		path := filepath.Join(r.Dir, d.Name())
		fi, err := os.Stat(path)
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			Name: d.Name(),
			Path: path,
			Kind: classify(fi.Mode()),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Lookup returns the path of a named service object.
func (r *Registry) Lookup(name string) (string, error) {
	path, err := r.path(name)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return path, nil
}

// Remove deletes the service object.
func (r *Registry) Remove(name string) error {
	path, err := r.path(name)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return os.Remove(path)
}

// Post creates a fresh named pipe for name and spawns argv with both stdin
// and stdout redirected onto it, then returns the child's pid without
// waiting. The first opener of either pipe end blocks until a peer opens
// the other: standard full-duplex FIFO rendezvous.
//
// Restricted posting (Linux only) installs a seccomp filter before the
// service command runs; see pkg/seccomp.
//
// The child's lifetime is unmanaged here: its eventual exit status is
// deliberately unobserved, and reaping is handed to a fire-and-forget wait.
func (r *Registry) Post(name string, argv []string, restricted bool) (int, error) {
	if len(argv) == 0 {
		return 0, fmt.Errorf("post %s: empty command", name)
	}
	r.ensureDir()
	path, err := r.path(name)
	if err != nil {
		return 0, err
	}

	execName, execArgs := argv[0], argv[1:]
	if restricted {
		execName, execArgs, err = shimCommand(argv)
		if err != nil {
			return 0, err
		}
	}

	os.Remove(path) // drop any stale object
	if err := unix.Mkfifo(path, 0o666); err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}

	// O_RDWR on a FIFO never blocks and holds both ends open, so the
	// service itself does not deadlock waiting for a client.
	fifo, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		os.Remove(path)
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer fifo.Close()

	cmd := exec.Command(execName, execArgs...)
	cmd.Stdin = fifo
	cmd.Stdout = fifo
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		os.Remove(path)
		return 0, fmt.Errorf("spawn %s: %w", argv[0], err)
	}
	go cmd.Wait()

	r.Log.Debug().Str("service", name).Str("path", path).
		Int("pid", cmd.Process.Pid).Msg("posted")
	return cmd.Process.Pid, nil
}

// path places name one segment deep inside the registry directory.
func (r *Registry) path(name string) (string, error) {
	if name == "" || strings.ContainsRune(name, os.PathSeparator) {
		return "", fmt.Errorf("bad service name %q", name)
	}
	return filepath.Join(r.Dir, name), nil
}

func (r *Registry) ensureDir() {
	if _, err := os.Stat(r.Dir); err != nil {
		os.MkdirAll(r.Dir, 0o755)
	}
}

func classify(mode os.FileMode) string {
	switch {
	case mode&os.ModeNamedPipe != 0:
		return "fifo"
	case mode&os.ModeSocket != 0:
		return "sock"
	default:
		return "file"
	}
}
