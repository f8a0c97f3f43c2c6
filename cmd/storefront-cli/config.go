package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// pipelineConfig mirrors the YAML file a storefront deployment checks in
// alongside its templates.
type pipelineConfig struct {
	Locale   string   `yaml:"locale"`
	Template string   `yaml:"template"`
	Blocks   []string `yaml:"blocks"`
	Theme    string   `yaml:"theme"`
	Variant  string   `yaml:"variant"`
}

func loadConfig(path string) (pipelineConfig, error) {
	var cfg pipelineConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// merge applies flag values over the config file; flags win when set.
func (c pipelineConfig) merge(locale, template, blocks string) pipelineConfig {
	out := c
	if locale != "" {
		out.Locale = locale
	}
	if template != "" {
		out.Template = template
	}
	if blocks != "" {
		out.Blocks = splitBlocks(blocks)
	}
	return out
}

func splitBlocks(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
