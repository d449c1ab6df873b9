package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with durations as strings for TOML.
type FileConfig struct {
	Endpoint     string `toml:"endpoint"`
	SecretKey    string `toml:"secret_key"`
	Timeout      string `toml:"timeout"`
	MaxBodyBytes int    `toml:"max_body_bytes"`
	Catalog      string `toml:"catalog"`
	TrialsFile   string `toml:"trials_file"`
	Watch        *bool  `toml:"watch"`
	Debounce     string `toml:"debounce"`
	CPF          string `toml:"cpf"`
	Amount       int    `toml:"amount"`
	LogLevel     string `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.payprobe/config.toml, or "" when the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".payprobe", "config.toml")
	}
	return ""
}

// ApplyFileConfig copies file values into cfg, skipping flags in changed.
// A relative trials_file is resolved against the config file's directory
// when configDir is not empty.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool, configDir string) error {
	s := newConfigSetter(changed)

	if fc.TrialsFile != "" && configDir != "" && !filepath.IsAbs(fc.TrialsFile) {
		fc.TrialsFile = filepath.Join(configDir, fc.TrialsFile)
	}

	s.setString("endpoint", fc.Endpoint, &cfg.Endpoint)
	s.setString("secret-key", fc.SecretKey, &cfg.SecretKey)
	s.setString("catalog", fc.Catalog, &cfg.Catalog)
	s.setString("trials", fc.TrialsFile, &cfg.TrialsFile)
	s.setString("cpf", fc.CPF, &cfg.CPF)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	if err := s.setDuration("timeout", fc.Timeout, &cfg.Timeout); err != nil {
		return err
	}
	if err := s.setDuration("debounce", fc.Debounce, &cfg.Debounce); err != nil {
		return err
	}

	s.setInt("max-body-bytes", fc.MaxBodyBytes, &cfg.MaxBodyBytes)
	s.setInt("amount", fc.Amount, &cfg.Amount)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	return nil
}

// FileExists reports whether p exists.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
