package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func withConfigPath(t *testing.T, path string) {
	t.Helper()
	orig := configPath
	configPath = path
	t.Cleanup(func() { configPath = orig })
}

func TestConfigInitThenValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	withConfigPath(t, path)

	var out bytes.Buffer
	configInitCmd.SetOut(&out)
	if err := runConfigInit(configInitCmd, nil); err != nil {
		t.Fatalf("runConfigInit: %v", err)
	}
	if !strings.Contains(out.String(), path) {
		t.Errorf("output = %q", out.String())
	}
	if err := runConfigInit(configInitCmd, nil); err == nil {
		t.Error("expected error when the config already exists")
	}

	out.Reset()
	configValidateCmd.SetOut(&out)
	if err := runConfigValidate(configValidateCmd, nil); err != nil {
		t.Fatalf("runConfigValidate: %v", err)
	}
	if !strings.Contains(out.String(), "Configuration is valid.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestConfigValidate_ReportsEveryError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "dismissal:\n  modes: [swipe]\ndrag:\n  deceleration_rate: 2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	withConfigPath(t, path)

	err := runConfigValidate(configValidateCmd, nil)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, field := range []string{"dismissal.modes", "drag.deceleration_rate"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err.Error(), field)
		}
	}
}
