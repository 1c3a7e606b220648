package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Endpoint      string `yaml:"endpoint"`
	FormatType    string `yaml:"format_type"`
	AcceptedFiles string `yaml:"accepted_files"`
	Language      string `yaml:"language"`
	HistoryLimit  int    `yaml:"history_limit"`
	ExportDir     string `yaml:"export_dir"`
}

func DefaultConfig() Config {
	return Config{
		Endpoint:      "http://localhost:8000/chat",
		FormatType:    "markdown",
		AcceptedFiles: ".pdf,.doc,.docx,.txt",
		Language:      "en",
		HistoryLimit:  DefaultHistoryLimit,
	}
}

func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = "http://localhost:8000/chat"
	}
	if cfg.FormatType == "" {
		cfg.FormatType = "markdown"
	}
	if cfg.AcceptedFiles == "" {
		cfg.AcceptedFiles = ".pdf,.doc,.docx,.txt"
	}
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	return cfg, nil
}

func SaveConfig(cfg Config, path string) error {
	if path == "" {
		return errors.New("no path provided for config")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func DefaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "cvchat", "config.yml")
}

// AcceptedExtensions splits the accept-list into normalized lowercase
// extensions.
func (c Config) AcceptedExtensions() []string {
	parts := strings.Split(c.AcceptedFiles, ",")
	exts := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if !strings.HasPrefix(p, ".") {
			p = "." + p
		}
		exts = append(exts, p)
	}
	return exts
}
