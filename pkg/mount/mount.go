// Package mount attaches and detaches external resources and keeps the bind
// table in sync.
//
// Transports are opaque external commands (sshfs, mount(8), 9pfuse,
// umount(8), fusermount); each attempt is one blocking subprocess and
// attempts are strictly sequential. No timeout is imposed here; retry and
// keepalive behavior belongs to the transport's own options.
package mount

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zqzqsb/distns/pkg/config"
	"github.com/zqzqsb/distns/pkg/namespace"
)

var (
	// ErrTransport reports that every attempted attach mechanism failed.
	ErrTransport = errors.New("all transports failed")

	// ErrNotMounted reports a detach that matched neither the bind table
	// nor an OS-level mount.
	ErrNotMounted = errors.New("not mounted")
)

// Orchestrator composes external transports with the bind table.
type Orchestrator struct {
	Table *namespace.Table
	Run   Runner
	Cfg   config.Config
	Log   zerolog.Logger
}

// Options controls an attach.
type Options struct {
	Mode   namespace.Mode
	Create bool   // create the mountpoint directory if absent
	Spec   string // filesystem type hint / extra sshfs options
}

// Attach mounts address on mountpoint and records the binding.
//
// An address that looks like "host:path" is tried over sshfs first, then a
// generic mount(8) invocation. A mountpoint directory created here is not
// removed when every transport fails.
func (o *Orchestrator) Attach(address, mountpoint string, opts Options) error {
	if err := ensureDir(mountpoint, opts.Create); err != nil {
		return fmt.Errorf("mountpoint %s: %w", mountpoint, err)
	}

	if strings.Contains(address, ":") && strings.Contains(address, "/") {
		args := []string{address, mountpoint, "-o", o.Cfg.SshfsOptions}
		if opts.Spec != "" {
			args = append(args, "-o", opts.Spec)
		}
		if status, err := o.Run.Run(o.Cfg.Transports.Sshfs, args...); err == nil && status == 0 {
			o.record(address, mountpoint, opts.Mode)
			return nil
		}
		o.Log.Debug().Str("address", address).Msg("sshfs failed, trying mount(8)")
	}

	args := []string{}
	if opts.Spec != "" {
		args = append(args, "-t", opts.Spec)
	}
	args = append(args, address, mountpoint)
	if status, err := o.Run.Run(o.Cfg.Transports.Mount, args...); err == nil && status == 0 {
		o.record(address, mountpoint, opts.Mode)
		return nil
	}

	return fmt.Errorf("mount %s on %s: %w", address, mountpoint, ErrTransport)
}

// Import mounts host:path from a remote machine. The sshfs options include
// follow_symlinks so remote symlinks stay usable locally; 9pfuse is the
// fallback for 9P servers.
func (o *Orchestrator) Import(host, path, mountpoint string, mode namespace.Mode) error {
	if err := ensureDir(mountpoint, true); err != nil {
		return fmt.Errorf("mountpoint %s: %w", mountpoint, err)
	}
	address := host + ":" + path

	if status, err := o.Run.Run(o.Cfg.Transports.Sshfs,
		address, mountpoint, "-o", o.Cfg.ImportOptions); err == nil && status == 0 {
		o.record(address, mountpoint, mode)
		return nil
	}
	o.Log.Debug().Str("address", address).Msg("sshfs failed, trying 9pfuse")

	if status, err := o.Run.Run(o.Cfg.Transports.NinePFuse, address, mountpoint); err == nil && status == 0 {
		o.record(address, mountpoint, mode)
		return nil
	}

	return fmt.Errorf("import %s from %s: %w", path, host, ErrTransport)
}

// Detach removes bindings at mountpoint (all of them, or just the one from
// source when source is non-empty) and also attempts an OS-level unmount.
//
// Success is the union of two independent signals: the table removed
// something, or an external unmount exited zero. A caller can therefore see
// success for a mount attached by another agent, and a successful table
// removal can mask an external unmount failure. That is the historical
// behavior and is kept deliberately.
func (o *Orchestrator) Detach(source, mountpoint string) error {
	found := o.Table.Remove(source, mountpoint)

	if status, err := o.Run.Run(o.Cfg.Transports.Umount, mountpoint); err == nil && status == 0 {
		found = true
	}
	if !found {
		if status, err := o.Run.Run(o.Cfg.Transports.Fusermount, "-u", mountpoint); err == nil && status == 0 {
			found = true
		}
	}

	if !found {
		return fmt.Errorf("%s: %w", mountpoint, ErrNotMounted)
	}
	return nil
}

func (o *Orchestrator) record(from, to string, mode namespace.Mode) {
	cf := namespace.Canonical(from)
	ct := namespace.Canonical(to)
	o.Table.Add(cf, ct, mode)
	o.Log.Debug().Str("from", cf).Str("to", ct).Stringer("mode", mode).Msg("bound")
}

// ensureDir makes sure path is a directory, creating it when create is set.
func ensureDir(path string, create bool) error {
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return nil
	}
	if !create {
		return fmt.Errorf("no such directory")
	}
	return os.MkdirAll(path, 0o755)
}
