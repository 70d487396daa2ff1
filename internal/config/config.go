// Package config loads the service configuration: a TOML file layered with
// HUNGARIAN_* environment variables (viper), struct validation
// (validator/v10), and hot reload on file change (fsnotify via viper).
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/hungarian/internal/logging"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. HUNGARIAN_SOLVER_MAX_SIZE.
const EnvPrefix = "HUNGARIAN"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the top-level configuration.
type Config struct {
	Log    logging.Config `mapstructure:"log"    toml:"log"`
	Server ServerConfig   `mapstructure:"server" toml:"server"`
	Solver SolverConfig   `mapstructure:"solver" toml:"solver"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"             toml:"addr"             validate:"required"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"     toml:"read_timeout"     validate:"gte=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"    toml:"write_timeout"    validate:"gte=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" toml:"shutdown_timeout" validate:"gte=0"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"   toml:"max_body_bytes"   validate:"gt=0"`
	RateLimit       float64       `mapstructure:"rate_limit"       toml:"rate_limit"       validate:"gte=0"` // requests/s, 0 disables
	Burst           int           `mapstructure:"burst"            toml:"burst"            validate:"gte=0"`
}

// SolverConfig holds the defaults applied to every solve.
type SolverConfig struct {
	Epsilon     float64 `mapstructure:"epsilon"      toml:"epsilon"      validate:"gte=0"`
	MaxSize     int     `mapstructure:"max_size"     toml:"max_size"     validate:"gte=0"`
	DefaultMode string  `mapstructure:"default_mode" toml:"default_mode" validate:"oneof=float int decimal"`
	Workers     int     `mapstructure:"workers"      toml:"workers"      validate:"gte=0"`
}

// defaults are registered for every key so env overrides reach Unmarshal
// even when the file omits the key.
var defaults = map[string]any{
	"log.service":             "hungarian",
	"log.level":               "info",
	"log.format":              "json",
	"log.file":                "",
	"log.max_size":            100,
	"log.max_backups":         3,
	"log.max_age":             28,
	"log.compress":            false,
	"server.addr":             ":8080",
	"server.read_timeout":     "5s",
	"server.write_timeout":    "30s",
	"server.shutdown_timeout": "10s",
	"server.max_body_bytes":   int64(4 << 20),
	"server.rate_limit":       50.0,
	"server.burst":            100,
	"solver.epsilon":          1e-9,
	"solver.max_size":         2000,
	"solver.default_mode":     "float",
	"solver.workers":          0,
}

var validate = validator.New()

// Validate checks c against its struct tags.
func Validate(c *Config) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Loader owns one viper instance and the last valid Config read through it.
type Loader struct {
	v      *viper.Viper
	path   string
	logger *slog.Logger

	mu      sync.RWMutex
	current *Config
	hooks   []func(*Config)
}

// NewLoader prepares a loader for the TOML file at path. An empty path means
// defaults plus environment only. A nil logger discards.
func NewLoader(path string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
	}

	return &Loader{v: v, path: path, logger: logger}
}

// Load reads, decodes and validates the configuration.
func (l *Loader) Load() (*Config, error) {
	if l.path != "" {
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", l.path, err)
		}
	}
	cfg, err := l.decode()
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.current = cfg
	l.mu.Unlock()

	return cfg, nil
}

func (l *Loader) decode() (*Config, error) {
	cfg := new(Config)
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SetLogger replaces the logger used by Watch, typically once the logger
// built from the loaded Config exists.
func (l *Loader) SetLogger(logger *slog.Logger) {
	l.mu.Lock()
	l.logger = logger
	l.mu.Unlock()
}

// Current returns the last valid configuration, or nil before Load.
func (l *Loader) Current() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.current
}

// OnReload registers fn to run after every successful hot reload.
func (l *Loader) OnReload(fn func(*Config)) {
	l.mu.Lock()
	l.hooks = append(l.hooks, fn)
	l.mu.Unlock()
}

// Watch starts watching the config file. A changed file that fails to decode
// or validate is logged and ignored; the previous Config stays current.
// Without a file Watch is a no-op.
func (l *Loader) Watch() {
	if l.path == "" {
		return
	}
	l.v.OnConfigChange(func(event fsnotify.Event) {
		l.mu.RLock()
		logger := l.logger
		l.mu.RUnlock()
		logger.Info("config change detected", "file", event.Name, "op", event.Op.String())
		cfg, err := l.decode()
		if err != nil {
			logger.Error("config reload rejected", "error", err)
			return
		}
		l.mu.Lock()
		l.current = cfg
		hooks := slices.Clone(l.hooks)
		l.mu.Unlock()
		for _, hook := range hooks {
			hook(cfg)
		}
		logger.Info("config reloaded", "log_level", cfg.Log.Level)
	})
	l.v.WatchConfig()
}

// Load is NewLoader(path, nil).Load().
func Load(path string) (*Config, error) {
	return NewLoader(path, nil).Load()
}
