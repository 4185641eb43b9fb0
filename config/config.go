package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"csv2sql/dialects"
)

// Config represents the application configuration.
type Config struct {
	Engine        string `hcl:"engine,optional"`   // mysql or postgresql
	Database      string `hcl:"database,optional"` // name used in CREATE DATABASE / connect directives
	Table         string `hcl:"table,optional"`    // name used in CREATE TABLE / INSERT INTO
	BatchSize     int    `hcl:"batch_size,optional"`
	SampleSize    int    `hcl:"sample_size,optional"` // data rows sampled for type inference
	Delimiter     string `hcl:"delimiter,optional"`   // empty = auto-detect
	SanitizeNames bool   `hcl:"sanitize_names,optional"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Engine:     "postgres",
		Database:   "csv2sql",
		Table:      "imported",
		BatchSize:  1000,
		SampleSize: 1,
	}
}

// Load reads the configuration from the given HCL file.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(content, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	cfg := DefaultConfig()
	diags = gohcl.DecodeBody(file.Body, nil, cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	return cfg, nil
}

// Validate checks the configuration before any input is read. An unknown
// engine surfaces here as dialects.ErrUnsupportedEngine rather than as
// silently incomplete output later.
func (c *Config) Validate() error {
	if _, err := dialects.Lookup(c.Engine); err != nil {
		return err
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("batch_size must be a positive integer, got %d", c.BatchSize)
	}
	if c.SampleSize < 1 {
		return fmt.Errorf("sample_size must be a positive integer, got %d", c.SampleSize)
	}
	if len([]rune(c.Delimiter)) > 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	if c.Database == "" || c.Table == "" {
		return fmt.Errorf("database and table names are required")
	}
	return nil
}

// DelimiterRune returns the configured delimiter, or 0 for auto-detection.
func (c *Config) DelimiterRune() rune {
	r := []rune(c.Delimiter)
	if len(r) == 0 {
		return 0
	}
	return r[0]
}

// Export writes the configuration to the specified file in HCL format.
func Export(path string, cfg *Config) error {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	root.SetAttributeValue("engine", cty.StringVal(cfg.Engine))
	root.SetAttributeValue("database", cty.StringVal(cfg.Database))
	root.SetAttributeValue("table", cty.StringVal(cfg.Table))
	root.SetAttributeValue("batch_size", cty.NumberIntVal(int64(cfg.BatchSize)))
	root.SetAttributeValue("sample_size", cty.NumberIntVal(int64(cfg.SampleSize)))
	if cfg.Delimiter != "" {
		root.SetAttributeValue("delimiter", cty.StringVal(cfg.Delimiter))
	}
	if cfg.SanitizeNames {
		root.SetAttributeValue("sanitize_names", cty.BoolVal(true))
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	_, err = file.Write(f.Bytes())
	if err != nil {
		return fmt.Errorf("failed to write config to file: %w", err)
	}

	return nil
}
