// Package config loads server settings from an optional YAML file
package config

import (
	"bytes"
	stderrors "errors"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	catalogclient "github.com/muutmoku/ao-build-share/internal/clients/catalog"
	"github.com/muutmoku/ao-build-share/internal/entities/catalog"
	"github.com/muutmoku/ao-build-share/internal/errors"
	"github.com/muutmoku/ao-build-share/internal/orchestrators/preview"
	catalogrepo "github.com/muutmoku/ao-build-share/internal/repositories/catalog"
)

// Default ports
const (
	DefaultHTTPPort = 8080
	DefaultGRPCPort = 50051
)

// Config is the full server configuration
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Redis   RedisConfig   `yaml:"redis"`
	Server  ServerConfig  `yaml:"server"`
	Preview PreviewConfig `yaml:"preview"`
}

// CatalogConfig controls where item documents come from and how long they are cached
type CatalogConfig struct {
	BaseURL     string        `yaml:"baseURL"`
	HTTPTimeout time.Duration `yaml:"httpTimeout"`
	CacheTTL    time.Duration `yaml:"cacheTTL"`
}

// RedisConfig selects the snapshot cache. An empty Addr keeps the cache in memory;
// a comma separated list connects to a cluster.
type RedisConfig struct {
	Addr   string `yaml:"addr"`
	UseTLS bool   `yaml:"useTLS"`
}

// Addrs splits Addr into its endpoints
func (r RedisConfig) Addrs() []string {
	var out []string
	for _, a := range strings.Split(r.Addr, ",") {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

// ServerConfig holds listener ports. A zero HTTP port disables the HTTP API.
type ServerConfig struct {
	HTTPPort int `yaml:"httpPort"`
	GRPCPort int `yaml:"grpcPort"`
}

// PreviewConfig controls preview rendering
type PreviewConfig struct {
	RenderBaseURL string `yaml:"renderBaseURL"`
	DefaultLang   string `yaml:"defaultLang"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL:     catalogclient.DefaultBaseURL,
			HTTPTimeout: catalogclient.DefaultHTTPTimeout,
			CacheTTL:    catalogrepo.DefaultTTL,
		},
		Server: ServerConfig{
			HTTPPort: DefaultHTTPPort,
			GRPCPort: DefaultGRPCPort,
		},
		Preview: PreviewConfig{
			RenderBaseURL: preview.DefaultRenderBaseURL,
			DefaultLang:   catalog.DefaultLanguage,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.NotFoundf("config file %s does not exist", path)
		}
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}

	if err := Parse(b, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping values the document omits
func Parse(data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid config yaml")
	}
	return nil
}

// Validate checks every field and reports all problems at once
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if !isHTTPURL(c.Catalog.BaseURL) {
		vb.InvalidField("catalog.baseURL", "must be an http(s) URL")
	}
	if c.Catalog.HTTPTimeout <= 0 {
		vb.InvalidField("catalog.httpTimeout", "must be positive")
	}
	if c.Catalog.CacheTTL <= 0 {
		vb.InvalidField("catalog.cacheTTL", "must be positive")
	}
	vb.Range("server.httpPort", c.Server.HTTPPort, 0, 65535)
	vb.Range("server.grpcPort", c.Server.GRPCPort, 1, 65535)
	if c.Server.HTTPPort != 0 && c.Server.HTTPPort == c.Server.GRPCPort {
		vb.InvalidField("server.httpPort", "must differ from server.grpcPort")
	}
	if !isHTTPURL(c.Preview.RenderBaseURL) {
		vb.InvalidField("preview.renderBaseURL", "must be an http(s) URL")
	}
	vb.OneOf("preview.defaultLang", c.Preview.DefaultLang, catalog.Languages)

	return vb.Build()
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
