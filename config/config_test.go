package config

import "os"
import "errors"
import "testing"
import "path/filepath"

import "github.com/tinne26/etri"

func TestLoadMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil { t.Fatal(err) }
	if cfg != Defaults() { t.Fatalf("expected defaults, got %+v", cfg) }

	cfg, err = Load("")
	if err != nil || cfg != Defaults() { t.Fatalf("expected defaults for empty path, got %+v (%v)", cfg, err) }
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "etri.yaml")
	cfg := Defaults()
	cfg.Render.Sampling = "center"
	cfg.Render.CacheBytes = 1024
	cfg.Window.Title = "test"
	err := cfg.Save(path)
	if err != nil { t.Fatal(err) }

	loaded, err := Load(path)
	if err != nil { t.Fatal(err) }
	if loaded != cfg { t.Fatalf("expected %+v, got %+v", cfg, loaded) }
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "etri.yaml")
	err := os.WriteFile(path, []byte("render:\n  sampling: center\n"), 0o644)
	if err != nil { t.Fatal(err) }
	cfg, err := Load(path)
	if err != nil { t.Fatal(err) }
	if cfg.Render.Sampling != "center" { t.Fatalf("unexpected sampling %q", cfg.Render.Sampling) }
	if cfg.Render.CacheBytes != etri.DefaultCacheBytes { t.Fatal("expected default cache size") }
	if cfg.Window != Defaults().Window { t.Fatal("expected default window config") }
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "etri.yaml")
	err := os.WriteFile(path, []byte("render: [1, 2"), 0o644)
	if err != nil { t.Fatal(err) }
	_, err = Load(path)
	if err == nil { t.Fatal("expected parse error") }
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvSampling, "center")
	t.Setenv(EnvCacheBytes, "4096")
	t.Setenv(EnvWindowWidth, "not a number")
	t.Setenv(EnvLogSource, "true")
	t.Setenv(EnvLogLevel, "debug")

	cfg := Defaults()
	cfg.ApplyEnv()
	if cfg.Render.Sampling != "center" { t.Fatal("sampling override not applied") }
	if cfg.Render.CacheBytes != 4096 { t.Fatal("cache override not applied") }
	if cfg.Window.Width != Defaults().Window.Width { t.Fatal("invalid override should be ignored") }
	if !cfg.Logging.Source || cfg.Logging.Level != "debug" { t.Fatal("logging overrides not applied") }
}

func TestValidate(t *testing.T) {
	tests := []struct {
		modify func(*Config)
		valid bool
	}{
		{ func(*Config) {}, true },
		{ func(cfg *Config) { cfg.Render.Sampling = "Center" }, true },
		{ func(cfg *Config) { cfg.Render.Sampling = "bilinear" }, false },
		{ func(cfg *Config) { cfg.Render.CacheBytes = -1 }, false },
		{ func(cfg *Config) { cfg.Window.Height = 0 }, false },
	}
	for i, test := range tests {
		cfg := Defaults()
		test.modify(&cfg)
		err := cfg.Validate()
		if (err == nil) != test.valid { t.Fatalf("test #%d: unexpected result %v", i, err) }
	}

	cfg := Defaults()
	cfg.Render.Sampling = "linear"
	_, err := cfg.Render.SamplingMode()
	if !errors.Is(err, ErrInvalidSampling) { t.Fatalf("expected ErrInvalidSampling, got %v", err) }
}

func TestTargetOptions(t *testing.T) {
	render := RenderConfig{ Sampling: "center", CacheBytes: 77 }
	opts, err := render.TargetOptions()
	if err != nil { t.Fatal(err) }
	if opts.Sampling != etri.SampleCenter || opts.CacheBytes != 77 {
		t.Fatalf("unexpected options %+v", opts)
	}
}
