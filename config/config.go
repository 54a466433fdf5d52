// Package config defines the YAML configuration used by the etri
// example programs, with environment variable overrides.
package config

import "os"
import "fmt"
import "errors"
import "strconv"
import "strings"
import "path/filepath"

import "gopkg.in/yaml.v3"

import "github.com/tinne26/etri"

// Returned by [Config.Validate]() and [RenderConfig.SamplingMode]()
// when the sampling mode name is not recognized.
var ErrInvalidSampling = errors.New("invalid sampling mode")

// Current configuration version. Bump when the structure changes
// in a backward-incompatible way.
const Version = 1

type RenderConfig struct {
	Sampling   string `yaml:"sampling"` // "compat" or "center"
	CacheBytes int    `yaml:"cache_bytes"`
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type Config struct {
	ConfigVersion int           `yaml:"config_version"`
	Render        RenderConfig  `yaml:"render"`
	Window        WindowConfig  `yaml:"window"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Env var names used as overrides.
const (
	EnvSampling     = "ETRI_SAMPLING"
	EnvCacheBytes   = "ETRI_CACHE_BYTES"
	EnvWindowWidth  = "ETRI_WINDOW_WIDTH"
	EnvWindowHeight = "ETRI_WINDOW_HEIGHT"
	EnvLogLevel     = "ETRI_LOG_LEVEL"
	EnvLogFormat    = "ETRI_LOG_FORMAT"
	EnvLogSource    = "ETRI_LOG_SOURCE"
	EnvLogFile      = "ETRI_LOG_FILE"
)

// Returns the default configuration.
func Defaults() Config {
	return Config{
		ConfigVersion: Version,
		Render:  RenderConfig{ Sampling: "compat", CacheBytes: etri.DefaultCacheBytes },
		Window:  WindowConfig{ Width: 800, Height: 600, Title: "etri", Resizable: true },
		Logging: LoggingConfig{ Level: "info", Format: "text" },
	}
}

// Loads the configuration at the given path. Empty paths and missing
// files are not an error: defaults are returned instead. Fields missing from the
// file keep their default values. Environment overrides are not
// applied, see [Config.ApplyEnv]().
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" { return cfg, nil }
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) { return cfg, nil }
	if err != nil { return cfg, fmt.Errorf("reading config: %w", err) }

	err = yaml.Unmarshal(data, &cfg)
	if err != nil { return Defaults(), fmt.Errorf("parsing config %s: %w", path, err) }
	return cfg, nil
}

// Writes the configuration to the given path as YAML, creating
// the parent directories if necessary.
func (self Config) Save(path string) error {
	data, err := yaml.Marshal(self)
	if err != nil { return fmt.Errorf("encoding config: %w", err) }
	err = os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil { return fmt.Errorf("creating config dir: %w", err) }
	err = os.WriteFile(path, data, 0o644)
	if err != nil { return fmt.Errorf("writing config: %w", err) }
	return nil
}

// Applies the ETRI_* environment variable overrides. Values that
// can't be parsed are ignored.
func (self *Config) ApplyEnv() {
	if v, ok := lookupEnv(EnvSampling); ok { self.Render.Sampling = v }
	if v, ok := lookupEnvInt(EnvCacheBytes); ok { self.Render.CacheBytes = v }
	if v, ok := lookupEnvInt(EnvWindowWidth); ok { self.Window.Width = v }
	if v, ok := lookupEnvInt(EnvWindowHeight); ok { self.Window.Height = v }
	if v, ok := lookupEnv(EnvLogLevel); ok { self.Logging.Level = v }
	if v, ok := lookupEnv(EnvLogFormat); ok { self.Logging.Format = v }
	if v, ok := lookupEnv(EnvLogFile); ok { self.Logging.File = v }
	if v, ok := lookupEnv(EnvLogSource); ok {
		source, err := strconv.ParseBool(v)
		if err == nil { self.Logging.Source = source }
	}
}

// Checks that the configuration values are usable.
func (self Config) Validate() error {
	_, err := self.Render.SamplingMode()
	if err != nil { return err }
	if self.Render.CacheBytes < 0 {
		return fmt.Errorf("render.cache_bytes must not be negative (got %d)", self.Render.CacheBytes)
	}
	if self.Window.Width <= 0 || self.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", self.Window.Width, self.Window.Height)
	}
	return nil
}

// Returns the [etri.SamplingMode] for the configured name. Empty
// names map to the default mode.
func (self RenderConfig) SamplingMode() (etri.SamplingMode, error) {
	switch strings.ToLower(strings.TrimSpace(self.Sampling)) {
	case "", "compat":
		return etri.SampleCompat, nil
	case "center":
		return etri.SampleCenter, nil
	default:
		return etri.SampleCompat, fmt.Errorf("%w %q", ErrInvalidSampling, self.Sampling)
	}
}

// Returns the target options for the render configuration.
func (self RenderConfig) TargetOptions() (*etri.TargetOptions, error) {
	mode, err := self.SamplingMode()
	if err != nil { return nil, err }
	return &etri.TargetOptions{ CacheBytes: self.CacheBytes, Sampling: mode }, nil
}

func lookupEnv(key string) (string, bool) {
	value := strings.TrimSpace(os.Getenv(key))
	return value, value != ""
}

func lookupEnvInt(key string) (int, bool) {
	value, ok := lookupEnv(key)
	if !ok { return 0, false }
	n, err := strconv.Atoi(value)
	if err != nil { return 0, false }
	return n, true
}
