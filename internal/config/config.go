package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"tilemap.dev/internal/theme"
	"tilemap.dev/internal/tiles"
	"tilemap.dev/internal/viewport"
)

// EnvPrefix prefixes environment overrides: MAPVIEW_SERVER__ADDR -> server.addr
const EnvPrefix = "MAPVIEW_"

// Config holds all application configuration
type Config struct {
	Server ServerConfig    `koanf:"server"`
	Tiles  TilesConfig     `koanf:"tiles"`
	Viewer viewport.Config `koanf:"viewer"`
	Theme  theme.Classes   `koanf:"theme"`
	Log    LogConfig       `koanf:"log"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Addr            string `koanf:"addr"`
	StaticDir       string `koanf:"static_dir"`
	AllowAllOrigins bool   `koanf:"allow_all_origins"`
}

// TilesConfig holds tile storage and generation settings
type TilesConfig struct {
	Dir        string `koanf:"dir"`
	OnDemand   bool   `koanf:"on_demand"`
	Seed       int64  `koanf:"seed"`
	RegionSize int    `koanf:"region_size"`
	CacheBytes int64  `koanf:"cache_bytes"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string `koanf:"level"`
	File  string `koanf:"file"` // empty logs to stderr
}

// DefaultConfig returns a Config with the stock viewer settings
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:      ":8080",
			StaticDir: "static",
		},
		Tiles: TilesConfig{
			Dir:        "tiles",
			OnDemand:   true,
			Seed:       1,
			RegionSize: tiles.DefaultRegionSize,
			CacheBytes: 64 << 20,
		},
		Viewer: viewport.DefaultConfig(),
		Theme:  theme.DefaultClasses(),
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (if it
// exists), the dotenv file at envFile (if it exists) and MAPVIEW_* variables.
func Load(path, envFile string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks that the configuration contains usable values
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Tiles.Dir == "" && !c.Tiles.OnDemand {
		return fmt.Errorf("tiles.dir is required when tiles.on_demand is off")
	}
	if c.Tiles.RegionSize <= 0 {
		return fmt.Errorf("tiles.region_size must be positive")
	}
	if c.Tiles.CacheBytes < 0 {
		return fmt.Errorf("tiles.cache_bytes must be non-negative")
	}

	v := c.Viewer
	if v.TileSize <= 0 {
		return fmt.Errorf("viewer.tile_size must be positive")
	}
	if v.MinZoom < 0 || v.MaxZoom > tiles.MaxLevel || v.MinZoom > v.MaxZoom {
		return fmt.Errorf("viewer zoom range [%d, %d] must lie within [0, %d]", v.MinZoom, v.MaxZoom, tiles.MaxLevel)
	}
	if v.DefaultZoom < v.MinZoom || v.DefaultZoom > v.MaxZoom {
		return fmt.Errorf("viewer.default_zoom %d outside [%d, %d]", v.DefaultZoom, v.MinZoom, v.MaxZoom)
	}

	if c.Theme.Light == "" || c.Theme.Dark == "" || c.Theme.Light == c.Theme.Dark {
		return fmt.Errorf("theme classes must be two distinct non-empty names")
	}

	if !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}

// Levels is the number of zoom levels in the tile pyramid
func (c *Config) Levels() int {
	return c.Viewer.MaxZoom + 1
}
