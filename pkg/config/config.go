/*
Package config manages the TOML config for the trigram engine and its
stdio server.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/EnaiaInc/trigram/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Engine EngineConfig `toml:"engine"`
	Server ServerConfig `toml:"server"`
	CLI    CliConfig    `toml:"cli"`
}

// EngineConfig tunes the scoring core.
type EngineConfig struct {
	// ParallelThreshold is the batch/candidate count at which scoring fans
	// out across workers. It only affects speed, never values.
	ParallelThreshold int `toml:"parallel_threshold"`
	// Workers caps the fan-out; 0 means one per CPU.
	Workers int `toml:"workers"`
}

// ServerConfig bounds what a single IPC request may carry.
type ServerConfig struct {
	MaxBatch      int `toml:"max_batch"`
	MaxCandidates int `toml:"max_candidates"`
	MaxTextLen    int `toml:"max_text_len"`
}

// CliConfig holds debug CLI defaults.
type CliConfig struct {
	DefaultLimit     int     `toml:"default_limit"`
	DefaultThreshold float64 `toml:"default_threshold"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			ParallelThreshold: 250,
			Workers:           0,
		},
		Server: ServerConfig{
			MaxBatch:      100000,
			MaxCandidates: 100000,
			MaxTextLen:    1 << 20,
		},
		CLI: CliConfig{
			DefaultLimit:     10,
			DefaultThreshold: 0.1,
		},
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/trigramserve
// 2. Current executable dir
// 3. builtin defaults (handled by callers)
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "trigramserve")
	if err := utils.EnsureDir(primaryPath); err == nil {
		return primaryPath, nil
	}
	return utils.GetExecutableDir()
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: ~/.config/trigramserve/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse salvages valid sections from a broken TOML file
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if engineSection, ok := utils.ExtractSection(tempConfig, "engine"); ok {
		extractEngineConfig(engineSection, &config.Engine)
	}
	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	return config, nil
}

// extractEngineConfig extracts engine configuration from a map
func extractEngineConfig(data map[string]any, engine *EngineConfig) {
	if val, ok := utils.ExtractInt64(data, "parallel_threshold"); ok {
		engine.ParallelThreshold = val
	}
	if val, ok := utils.ExtractInt64(data, "workers"); ok {
		engine.Workers = val
	}
}

// extractServerConfig extracts server configuration from a map
func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_batch"); ok {
		server.MaxBatch = val
	}
	if val, ok := utils.ExtractInt64(data, "max_candidates"); ok {
		server.MaxCandidates = val
	}
	if val, ok := utils.ExtractInt64(data, "max_text_len"); ok {
		server.MaxTextLen = val
	}
}

// extractCliConfig extracts CLI config from a map
func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractFloat64(data, "default_threshold"); ok {
		cli.DefaultThreshold = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}
