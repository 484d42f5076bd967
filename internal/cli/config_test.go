package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/cyclecheck/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := configDir()
	if err != nil {
		t.Fatalf("configDir() error: %v", err)
	}
	if want := filepath.Join("/tmp/xdg", appName); dir != want {
		t.Errorf("configDir() = %q, want %q", dir, want)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg != defaultConfig() {
		t.Errorf("loadConfig() = %+v, want defaults", cfg)
	}
}

func TestLoadConfigFromXDG(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	dir := filepath.Join(home, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFile), []byte("format = \"toml\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Format != "toml" {
		t.Errorf("Format = %q, want toml", cfg.Format)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
verbose = true
format = "text"

[serve]
addr = "127.0.0.1:9000"
read_timeout = "2500ms"
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %q, want text", cfg.Format)
	}
	if cfg.Serve.Addr != "127.0.0.1:9000" {
		t.Errorf("Addr = %q", cfg.Serve.Addr)
	}
	if cfg.Serve.ReadTimeout.Duration != 2500*time.Millisecond {
		t.Errorf("ReadTimeout = %v, want 2.5s", cfg.Serve.ReadTimeout.Duration)
	}
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, "verbose = true\n"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Serve.Addr != defaultAddr || cfg.Serve.ReadTimeout.Duration != defaultReadTimeout {
		t.Errorf("Serve = %+v, want defaults", cfg.Serve)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		code errors.Code
	}{
		{
			name: "Missing",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.toml") },
			code: errors.ErrCodeFileNotFound,
		},
		{
			name: "Syntax",
			path: func(t *testing.T) string { return writeConfig(t, "verbose = \n") },
			code: errors.ErrCodeInvalidFormat,
		},
		{
			name: "UnknownKey",
			path: func(t *testing.T) string { return writeConfig(t, "colour = true\n") },
			code: errors.ErrCodeInvalidFormat,
		},
		{
			name: "BadFormat",
			path: func(t *testing.T) string { return writeConfig(t, "format = \"yaml\"\n") },
			code: errors.ErrCodeInvalidFormat,
		},
		{
			name: "BadDuration",
			path: func(t *testing.T) string { return writeConfig(t, "[serve]\nread_timeout = \"soon\"\n") },
			code: errors.ErrCodeInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(tt.path(t))
			if !errors.Is(err, tt.code) {
				t.Errorf("loadConfig() error = %v, want code %s", err, tt.code)
			}
		})
	}
}
