package config

import (
	"os"
	"path/filepath"
	"testing"

	perrors "github.com/zhubert/popover/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_FileNotExists(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("expected nil error for missing file, got: %v", err)
	}
	if cfg != nil {
		t.Error("expected nil config for missing file")
	}
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfig(t, `
theme: nord
screen_edge_padding:
  top: 2
  bottom: 3
dismissal:
  modes: [tap-outside, drag-down]
  drag_dismissal_proximity: 0.4
rubber_banding: [y]
animation:
  fps: 30
drag:
  minimum_distance: 2
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if cfg.Theme != "nord" {
		t.Errorf("theme: got %q, want nord", cfg.Theme)
	}
	if cfg.ScreenEdgePadding == nil || cfg.ScreenEdgePadding.Top != 2 || cfg.ScreenEdgePadding.Bottom != 3 {
		t.Errorf("screen_edge_padding: got %+v", cfg.ScreenEdgePadding)
	}
	if len(cfg.Dismissal.Modes) != 2 || cfg.Dismissal.Modes[1] != "drag-down" {
		t.Errorf("dismissal.modes: got %v", cfg.Dismissal.Modes)
	}
	if cfg.Dismissal.DragDismissalProximity == nil || *cfg.Dismissal.DragDismissalProximity != 0.4 {
		t.Error("drag_dismissal_proximity: expected 0.4")
	}
	if cfg.Dismissal.DragMovesOffScreen != nil {
		t.Error("drag_moves_off_screen: expected unset")
	}
	if cfg.Animation.FPS == nil || *cfg.Animation.FPS != 30 {
		t.Error("animation.fps: expected 30")
	}
	if cfg.Drag.MinimumDistance == nil || *cfg.Drag.MinimumDistance != 2 {
		t.Error("drag.minimum_distance: expected 2")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "{{invalid yaml")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	if !perrors.Is(err, perrors.KindConfig) {
		t.Errorf("kind: got %v, want config error", perrors.GetKind(err))
	}
}

func TestLoadAndMerge(t *testing.T) {
	cfg, err := LoadAndMerge(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Theme != "dark-purple" || cfg.Animation.FPS == nil || *cfg.Animation.FPS != 60 {
		t.Errorf("expected defaults for a missing file, got %+v", cfg)
	}

	cfg, err = LoadAndMerge(writeConfig(t, "rubber_banding: []\nanimation:\n  damping: 1\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RubberBanding == nil || len(cfg.RubberBanding) != 0 {
		t.Errorf("rubber_banding: got %v, want an explicit empty list", cfg.RubberBanding)
	}
	if *cfg.Animation.Damping != 1 {
		t.Errorf("damping: got %v, want 1", *cfg.Animation.Damping)
	}
	if *cfg.Animation.Frequency != 6 {
		t.Errorf("frequency: got %v, want default 6", *cfg.Animation.Frequency)
	}
}

func TestTemplateIsValid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := WriteTemplate(path); err != nil {
		t.Fatalf("WriteTemplate: %v", err)
	}
	if err := WriteTemplate(path); !perrors.Is(err, perrors.KindExists) {
		t.Errorf("WriteTemplate over an existing file: got %v, want KindExists", err)
	}

	cfg, err := LoadAndMerge(path)
	if err != nil {
		t.Fatalf("template does not load: %v", err)
	}
	if errs := Validate(cfg); len(errs) != 0 {
		t.Errorf("template has validation errors: %v", errs)
	}
}
