// Package config loads the engine's YAML configuration, following the
// teacher's load-then-validate pattern (pkg/spec/loader.go): read the
// file, unmarshal, validate, return a single wrapped error on any
// failure.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bdrmapit-go/bdrmapit/pkg/util"
)

// Config carries every inference-affecting flag named in spec.md §6, plus
// the ambient fields (logging, optional cache, output) SPEC_FULL.md adds.
type Config struct {
	// Inference flags (spec.md §6).
	Strict        bool     `yaml:"strict"`
	SkipUA        bool     `yaml:"skipua"`
	HiddenReverse bool     `yaml:"hidden_reverse"`
	NorelPeer     []int    `yaml:"norelpeer"`
	IxpAsnsPath   string   `yaml:"ixpasns_path"`
	MaxIterations int      `yaml:"max_iterations"`
	UseHints      bool     `yaml:"usehints"`
	UseProvider   bool     `yaml:"use_provider"`

	// External data sources.
	PrefixMapPath string `yaml:"prefixmap_path"`
	BGPPath       string `yaml:"bgp_path"`
	AS2OrgPath    string `yaml:"as2org_path"`

	// Ambient fields (SPEC_FULL.md §B.2).
	LogLevel     string `yaml:"log_level"`
	LogJSON      bool   `yaml:"log_json"`
	RedisAddr    string `yaml:"redis_addr"`
	OutputPath   string `yaml:"output_path"`
	OutputFormat string `yaml:"output_format"`
}

// Default returns a Config with the headline defaults from spec.md §6:
// strict mode on, hidden_reverse on, 10 iterations.
func Default() *Config {
	return &Config{
		Strict:        true,
		HiddenReverse: true,
		MaxIterations: 10,
		OutputFormat:  "csv",
		LogLevel:      "info",
	}
}

// Load reads and validates a Config from path. Any failure — missing
// file, unparseable YAML, a failed Validate — is wrapped as a
// *util.ConfigError (spec.md §7's Configuration error: fails fast,
// surfaces one message).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, util.WrapConfigError(path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, util.WrapConfigError(path, fmt.Errorf("parsing YAML: %w", err))
	}
	if err := cfg.Validate(); err != nil {
		return nil, util.WrapConfigError(path, err)
	}
	return cfg, nil
}

// Validate checks internal consistency of the config. It does not check
// that referenced files exist; Load's caller does that when it opens
// them, keeping Validate file-system-free for use by `bdrmapit validate`.
func (c *Config) Validate() error {
	v := &util.ValidationBuilder{}
	v.Add(c.MaxIterations > 0, "max_iterations must be positive")
	v.Add(c.OutputFormat == "" || c.OutputFormat == "csv" || c.OutputFormat == "table",
		"output_format must be \"csv\" or \"table\"")
	return v.Build()
}

// NorelPeerSet returns NorelPeer as a lookup set, for the router
// annotator's isnorelpeer predicate.
func (c *Config) NorelPeerSet() map[int]struct{} {
	set := make(map[int]struct{}, len(c.NorelPeer))
	for _, asn := range c.NorelPeer {
		set[asn] = struct{}{}
	}
	return set
}
