package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfig_FileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studioedit.yaml")
	data := []byte(`
base: https://studio.example.com
usage: block-v1:demo
surface: surface.yaml
timeout: 5s
messages:
  es:
    studio.save.saving: Guardando
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.override("", "block-v1:other", "", "", "", "es")

	want := config{
		Base:     "https://studio.example.com",
		Usage:    "block-v1:other",
		Surface:  "surface.yaml",
		Locale:   "es",
		Timeout:  5 * time.Second,
		Messages: messageTable{"es": {"studio.save.saving": "Guardando"}},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}

	msg, err := cfg.Messages.Translate("es", "studio.save.saving")
	if err != nil || msg != "Guardando" {
		t.Fatalf("translate: %q, %v", msg, err)
	}
	if _, err := cfg.Messages.Translate("fr", "studio.save.saving"); err == nil {
		t.Fatalf("expected miss for unknown locale")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("default timeout %s", cfg.Timeout)
	}
}
