package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "absent.toml")} {
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q): %v", path, err)
		}
		if cfg.SrvDir != "/tmp/rc-srv" {
			t.Errorf("SrvDir = %q, want /tmp/rc-srv", cfg.SrvDir)
		}
		if cfg.Transports.Sshfs != "sshfs" || cfg.Transports.NinePFuse != "9pfuse" {
			t.Errorf("transports = %+v, want stock names", cfg.Transports)
		}
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "distns.toml")
	body := `
srv_dir = "/var/run/srv"
sshfs_options = "reconnect"

[transports]
ssh = "/usr/local/bin/ssh"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SrvDir != "/var/run/srv" {
		t.Errorf("SrvDir = %q", cfg.SrvDir)
	}
	if cfg.SshfsOptions != "reconnect" {
		t.Errorf("SshfsOptions = %q", cfg.SshfsOptions)
	}
	if cfg.Transports.Ssh != "/usr/local/bin/ssh" {
		t.Errorf("Transports.Ssh = %q", cfg.Transports.Ssh)
	}
	// Unset fields keep their defaults.
	if cfg.Transports.Umount != "umount" {
		t.Errorf("Transports.Umount = %q, want default", cfg.Transports.Umount)
	}
	if len(cfg.DefaultPath) == 0 {
		t.Error("DefaultPath lost its default")
	}
}

func TestLoadRejectsBadToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	os.WriteFile(path, []byte("srv_dir = ["), 0o644)
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
