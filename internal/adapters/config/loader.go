// Package config provides the configuration loader for markcheck.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/markcheck/internal/core/domain"
	"go.trai.ch/markcheck/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// knownProfiles lists the profiles accepted by the W3C CSS validator.
var knownProfiles = []string{
	"none", "css1", "css2", "css21", "css3", "css3svg",
	"svg", "svgbasic", "svgtiny", "mobile", "atsc-tv", "tv",
}

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load discovers markcheck.yaml walking up from cwd and returns the resulting configuration.
// Without a config file the defaults are returned.
func (l *Loader) Load(cwd string) (domain.Config, error) {
	configPath, found, err := findConfiguration(cwd)
	if err != nil {
		return domain.Config{}, err
	}
	if !found {
		return domain.DefaultConfig(), nil
	}
	return l.LoadFile(configPath)
}

// LoadFile reads the configuration from an explicit file path.
func (l *Loader) LoadFile(configPath string) (domain.Config, error) {
	var file File
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return domain.Config{}, zerr.With(err, "path", configPath)
	}

	cfg, err := l.apply(domain.DefaultConfig(), filepath.Dir(configPath), &file)
	if err != nil {
		return domain.Config{}, zerr.With(err, "path", configPath)
	}
	return cfg, nil
}

func (l *Loader) apply(cfg domain.Config, configDir string, file *File) (domain.Config, error) {
	if file.CacheDir != "" {
		cfg.CacheDir = resolveDir(configDir, file.CacheDir)
	}

	if file.Timeout != "" {
		timeout, err := time.ParseDuration(file.Timeout)
		if err != nil {
			return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "field", "timeout")
		}
		if timeout <= 0 {
			return domain.Config{}, zerr.With(zerr.With(domain.ErrConfigParseFailed, "field", "timeout"), "timeout", file.Timeout)
		}
		cfg.Timeout = timeout
	}

	if file.Proxy != nil {
		proxy, err := parseProxy(file.Proxy)
		if err != nil {
			return domain.Config{}, err
		}
		cfg.Proxy = proxy
	}

	if file.Markup != nil && file.Markup.Endpoint != "" {
		cfg.Markup.Endpoint = file.Markup.Endpoint
	}

	if file.CSS != nil {
		applyCSS(&cfg.CSS, file.CSS)
		if !slices.Contains(knownProfiles, cfg.CSS.Profile) {
			l.Logger.Warn(fmt.Sprintf("css profile %q is not known to the W3C CSS validator", cfg.CSS.Profile))
		}
	}

	return cfg, nil
}

func applyCSS(cfg *domain.CSSConfig, dto *CSSDTO) {
	if dto.Endpoint != "" {
		cfg.Endpoint = dto.Endpoint
	}
	if dto.Warning != "" {
		cfg.Warning = dto.Warning
	}
	if dto.Profile != "" {
		cfg.Profile = dto.Profile
	}
	if dto.UserMedium != "" {
		cfg.UserMedium = dto.UserMedium
	}
}

func parseProxy(dto *ProxyDTO) (*domain.ProxyConfig, error) {
	host := strings.TrimSpace(dto.Host)
	switch {
	case host == "" && dto.Port == 0:
		return nil, nil
	case host == "":
		return nil, zerr.With(domain.ErrConfigParseFailed, "field", "proxy.host")
	case dto.Port <= 0 || dto.Port > 65535:
		return nil, zerr.With(zerr.With(domain.ErrConfigParseFailed, "field", "proxy.port"), "port", dto.Port)
	}
	return &domain.ProxyConfig{Host: host, Port: dto.Port}, nil
}

// findConfiguration walks up from cwd and returns the first markcheck.yaml found.
func findConfiguration(cwd string) (string, bool, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", false, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "cwd", cwd)
	}

	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		info, statErr := os.Stat(configPath)
		switch {
		case statErr == nil && !info.IsDir():
			return configPath, true, nil
		case statErr != nil && !errors.Is(statErr, fs.ErrNotExist):
			return "", false, zerr.With(zerr.Wrap(statErr, domain.ErrConfigReadFailed.Error()), "path", configPath)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false, nil
		}
		currentDir = parentDir
	}
}

func resolveDir(configDir, configured string) string {
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(configDir, configured))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered or given explicitly by the caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
