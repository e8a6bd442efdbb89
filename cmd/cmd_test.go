package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigFromFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alt.yaml")
	if err := os.WriteFile(path, []byte("tool: /opt/bin/xsetwacom\npoll_interval: 2s\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	configFile, logLevel = path, "debug"
	t.Cleanup(func() { configFile, logLevel = "", "" })

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Tool != "/opt/bin/xsetwacom" || cfg.PollInterval != 2*time.Second {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected --log-level override, got %q", cfg.LogLevel)
	}
}

func TestLoadConfigRejectsBadLogLevel(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	logLevel = "shouty"
	t.Cleanup(func() { logLevel = "" })

	if _, err := loadConfig(); err == nil {
		t.Fatal("expected error for invalid --log-level")
	}
}

func TestPrintStatus(t *testing.T) {
	var buf bytes.Buffer
	printStatus(&buf, true)
	printStatus(&buf, false)
	if got := buf.String(); got != "Tablet connected\nNo tablet detected\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"watch", "devices", "status", "switch", "history", "config", "deps", "service"} {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("command %q not registered", name)
		}
	}
}
