package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CARDSTACK_DB_PATH",
		"CARDSTACK_LOG_LEVEL",
		"CARDSTACK_SHIFT_STRATEGY",
		"CARDSTACK_BUSY_TIMEOUT_MS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.Ordering.ShiftStrategy != ShiftBulk {
		t.Errorf("ShiftStrategy = %s, want %s (default)", cfg.Ordering.ShiftStrategy, ShiftBulk)
	}
	if cfg.Database.BusyTimeoutMs != 5000 {
		t.Errorf("BusyTimeoutMs = %d, want 5000", cfg.Database.BusyTimeoutMs)
	}
	if filepath.Base(cfg.Database.Path) != "cards.db" {
		t.Errorf("Database.Path = %s, want a cards.db file", cfg.Database.Path)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %s, want info", cfg.Logging.Level)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	clearEnv(t)
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "cardstack")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configContent := `database:
  path: "/tmp/board.db"
ordering:
  shift_strategy: "stepwise"
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.Database.Path != "/tmp/board.db" {
		t.Errorf("Database.Path = %s, want /tmp/board.db", cfg.Database.Path)
	}
	if cfg.Ordering.ShiftStrategy != ShiftStepwise {
		t.Errorf("ShiftStrategy = %s, want %s", cfg.Ordering.ShiftStrategy, ShiftStepwise)
	}
	// Missing fields get defaults
	if cfg.Database.BusyTimeoutMs != 5000 {
		t.Errorf("BusyTimeoutMs = %d, want 5000 (default)", cfg.Database.BusyTimeoutMs)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CARDSTACK_DB_PATH", "/var/lib/cardstack/cards.db")
	t.Setenv("CARDSTACK_SHIFT_STRATEGY", "STEPWISE")
	t.Setenv("CARDSTACK_LOG_LEVEL", "debug")
	t.Setenv("CARDSTACK_BUSY_TIMEOUT_MS", "250")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Database.Path != "/var/lib/cardstack/cards.db" {
		t.Errorf("Database.Path = %s, want env override", cfg.Database.Path)
	}
	if cfg.Ordering.ShiftStrategy != ShiftStepwise {
		t.Errorf("ShiftStrategy = %s, want %s", cfg.Ordering.ShiftStrategy, ShiftStepwise)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %s, want debug", cfg.Logging.Level)
	}
	if cfg.Database.BusyTimeoutMs != 250 {
		t.Errorf("BusyTimeoutMs = %d, want 250", cfg.Database.BusyTimeoutMs)
	}
}

func TestLoadConfigRejectsUnknownStrategy(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ordering:\n  shift_strategy: fractional\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Fatal("Expected error for unknown shift strategy")
	}
}

func TestLoadConfigEnvIsValidatedWithoutFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CARDSTACK_SHIFT_STRATEGY", "bogus")

	if _, err := Load(); err == nil {
		t.Fatal("Expected error for unknown shift strategy from the environment")
	}
}

func TestLoadConfigEnvBusyTimeout(t *testing.T) {
	writeConfig := func(t *testing.T, dir string) {
		t.Helper()
		configDir := filepath.Join(dir, "cardstack")
		if err := os.MkdirAll(configDir, 0o755); err != nil {
			t.Fatalf("Failed to create config dir: %v", err)
		}
		content := "database:\n  busy_timeout_ms: 900\n"
		if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write config file: %v", err)
		}
	}

	tests := []struct {
		name     string
		withFile bool
		env      string
		want     int
		wantErr  bool
	}{
		{name: "explicit zero without file", env: "0", want: 0},
		{name: "explicit zero over file", withFile: true, env: "0", want: 0},
		{name: "file value without env", withFile: true, want: 900},
		{name: "negative", env: "-1", wantErr: true},
		{name: "not a number", env: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			dir := t.TempDir()
			t.Setenv("XDG_CONFIG_HOME", dir)
			if tt.withFile {
				writeConfig(t, dir)
			}
			t.Setenv("CARDSTACK_BUSY_TIMEOUT_MS", tt.env)

			cfg, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if cfg.Database.BusyTimeoutMs != tt.want {
				t.Errorf("BusyTimeoutMs = %d, want %d", cfg.Database.BusyTimeoutMs, tt.want)
			}
		})
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("database: [unterminated"), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Fatal("Expected parse error for malformed YAML")
	}
}

func TestSaveConfig(t *testing.T) {
	clearEnv(t)
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	cfg := Default()
	cfg.Ordering.ShiftStrategy = ShiftStepwise

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}
	if loaded.Ordering.ShiftStrategy != ShiftStepwise {
		t.Errorf("ShiftStrategy = %s, want %s", loaded.Ordering.ShiftStrategy, ShiftStepwise)
	}
}
