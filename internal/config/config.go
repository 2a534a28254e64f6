// Package config holds the consistfix option surface: resolver thresholds,
// strict-mode flags, scan and cache behavior. Values layer as
// defaults < config file < CONSISTFIX_* environment < command flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for consistfix
type Config struct {
	Resolver ResolverConfig `mapstructure:"resolver"`
	Scan     ScanConfig     `mapstructure:"scan"`
	Rewrite  RewriteConfig  `mapstructure:"rewrite"`
}

// ResolverConfig holds resolution engine options
type ResolverConfig struct {
	LocalThreshold  int    `mapstructure:"local_threshold"`
	GlobalThreshold int    `mapstructure:"global_threshold"`
	StrictClass     bool   `mapstructure:"strict_class"`
	StrictType      bool   `mapstructure:"strict_type"`
	Explain         bool   `mapstructure:"explain"`
	AliasOverlay    string `mapstructure:"alias_overlay"`
}

// ScanConfig holds catalog scan options
type ScanConfig struct {
	Deep           bool   `mapstructure:"deep"`
	UseCache       bool   `mapstructure:"use_cache"`
	CacheFile      string `mapstructure:"cache_file"`
	DefaultsFolder string `mapstructure:"defaults_folder"`
}

// RewriteConfig holds content rewrite options
type RewriteConfig struct {
	Preview     bool   `mapstructure:"preview"`
	ConsistGlob string `mapstructure:"consist_glob"`
}

var defaultConfig = Config{
	Resolver: ResolverConfig{
		LocalThreshold:  120,
		GlobalThreshold: 90,
		StrictClass:     false,
		StrictType:      false,
		Explain:         false,
	},
	Scan: ScanConfig{
		Deep:           false,
		UseCache:       true,
		DefaultsFolder: "_DEFAULTS",
	},
	Rewrite: RewriteConfig{
		Preview:     false,
		ConsistGlob: "**/*.con",
	},
}

// Load loads configuration from defaults, config file, and environment.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("resolver.local_threshold", defaultConfig.Resolver.LocalThreshold)
	v.SetDefault("resolver.global_threshold", defaultConfig.Resolver.GlobalThreshold)
	v.SetDefault("resolver.strict_class", defaultConfig.Resolver.StrictClass)
	v.SetDefault("resolver.strict_type", defaultConfig.Resolver.StrictType)
	v.SetDefault("resolver.explain", defaultConfig.Resolver.Explain)
	v.SetDefault("resolver.alias_overlay", defaultConfig.Resolver.AliasOverlay)
	v.SetDefault("scan.deep", defaultConfig.Scan.Deep)
	v.SetDefault("scan.use_cache", defaultConfig.Scan.UseCache)
	v.SetDefault("scan.cache_file", defaultConfig.Scan.CacheFile)
	v.SetDefault("scan.defaults_folder", defaultConfig.Scan.DefaultsFolder)
	v.SetDefault("rewrite.preview", defaultConfig.Rewrite.Preview)
	v.SetDefault("rewrite.consist_glob", defaultConfig.Rewrite.ConsistGlob)

	v.SetConfigName("consistfix")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")
	if configDir, err := GetConfigDir(); err == nil {
		v.AddConfigPath(configDir)
	}

	v.SetEnvPrefix("CONSISTFIX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional; defaults apply when absent
	_ = v.ReadInConfig()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %v", err)
	}

	return &config, nil
}

// GetConsistfixHome returns the consistfix home directory
func GetConsistfixHome() (string, error) {
	if home := os.Getenv("CONSISTFIX_HOME"); home != "" {
		return home, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %v", err)
	}

	return filepath.Join(homeDir, ".consistfix"), nil
}

// EnsureConsistfixHome creates the consistfix home directory if it doesn't exist
func EnsureConsistfixHome() (string, error) {
	homeDir, err := GetConsistfixHome()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(homeDir, 0750); err != nil {
		return "", fmt.Errorf("failed to create consistfix home directory: %v", err)
	}

	return homeDir, nil
}

// GetCacheDir returns the directory used for catalog snapshots
func GetCacheDir() (string, error) {
	homeDir, err := EnsureConsistfixHome()
	if err != nil {
		return "", err
	}
	cacheDir := filepath.Join(homeDir, "cache")
	if err := os.MkdirAll(cacheDir, 0750); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %v", err)
	}
	return cacheDir, nil
}

// GetConfigDir returns the config directory
func GetConfigDir() (string, error) {
	homeDir, err := EnsureConsistfixHome()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(homeDir, "config")
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "", fmt.Errorf("failed to create config directory: %v", err)
	}
	return configDir, nil
}

// SnapshotPath resolves the snapshot location for a trainset directory. An
// explicit cache_file wins; otherwise the snapshot lives in the cache dir under
// a name derived from the trainset path.
func (c *Config) SnapshotPath(trainsetDir string) (string, error) {
	if c.Scan.CacheFile != "" {
		return c.Scan.CacheFile, nil
	}
	cacheDir, err := GetCacheDir()
	if err != nil {
		return "", err
	}
	base := filepath.Base(filepath.Clean(trainsetDir))
	if base == "." || base == string(filepath.Separator) {
		base = "trainset"
	}
	return filepath.Join(cacheDir, base+"-catalog.json"), nil
}
