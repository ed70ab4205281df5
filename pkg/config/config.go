// Package config loads the optional distns.toml configuration file.
//
// Every field has a default that reproduces the stock behavior, so running
// without a config file is the normal case.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Transports names the external commands used to attach, detach and reach
// remote resources. Only their exit status is ever examined.
type Transports struct {
	Sshfs      string `toml:"sshfs"`
	Mount      string `toml:"mount"`
	Umount     string `toml:"umount"`
	Fusermount string `toml:"fusermount"`
	NinePFuse  string `toml:"ninepfuse"`
	Ssh        string `toml:"ssh"`
}

type Config struct {
	// SrvDir is the well-known service rendezvous directory.
	SrvDir string `toml:"srv_dir"`

	// SshfsOptions is passed to sshfs via -o on mount.
	SshfsOptions string `toml:"sshfs_options"`

	// ImportOptions is passed to sshfs via -o on import.
	ImportOptions string `toml:"import_options"`

	// DefaultPath is the minimal search path installed by "rfork e".
	DefaultPath []string `toml:"default_path"`

	Transports Transports `toml:"transports"`
}

// Default returns the built-in configuration: stock transport names, the
// /tmp/rc-srv rendezvous directory, and the usual sshfs keepalive options.
func Default() Config {
	return Config{
		SrvDir:        "/tmp/rc-srv",
		SshfsOptions:  "reconnect,ServerAliveInterval=15",
		ImportOptions: "reconnect,ServerAliveInterval=15,follow_symlinks",
		DefaultPath:   []string{"/usr/local/bin", "/usr/bin", "/bin"},
		Transports: Transports{
			Sshfs:      "sshfs",
			Mount:      "mount",
			Umount:     "umount",
			Fusermount: "fusermount",
			NinePFuse:  "9pfuse",
			Ssh:        "ssh",
		},
	}
}

// Load reads a TOML config file and overlays it on the defaults. An empty
// path or a missing file yields the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.SrvDir == "" {
		cfg.SrvDir = Default().SrvDir
	}
	if len(cfg.DefaultPath) == 0 {
		cfg.DefaultPath = Default().DefaultPath
	}
	return cfg, nil
}
