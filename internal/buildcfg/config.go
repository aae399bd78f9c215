// SPDX-License-Identifier: AGPL-3.0-or-later

package buildcfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults for local development.
const (
	DefaultPort = 3000
	DefaultOpen = true
)

// Config is the resolved build configuration handed to the surrounding
// build tool.
type Config struct {
	// BasePath is the URL prefix for emitted asset URLs.
	BasePath string `yaml:"base_path"`
	// Port is the local dev-server port.
	Port int `yaml:"port"`
	// Open controls whether the dev server opens a browser on start.
	Open bool `yaml:"open"`
}

// fileConfig matches the optional crmtool.yaml build file. Pointer fields
// distinguish "not set" from zero values so defaults survive a partial file.
type fileConfig struct {
	BasePath *string `yaml:"base_path"`
	Port     *int    `yaml:"port"`
	Open     *bool   `yaml:"open"`
}

// Resolve produces the build configuration for the given context,
// optionally overridden by a yaml build file at path. An empty path or a
// missing file means defaults apply; a file that exists but cannot be
// read or parsed is a configuration error.
func Resolve(ctx BuildContext, path string) (Config, error) {
	cfg := Config{
		BasePath: ResolveBasePath(ctx),
		Port:     DefaultPort,
		Open:     DefaultOpen,
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading build file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parsing build file %s: %w", path, err)
	}

	if fc.BasePath != nil {
		cfg.BasePath = *fc.BasePath
	}
	if fc.Port != nil {
		cfg.Port = *fc.Port
	}
	if fc.Open != nil {
		cfg.Open = *fc.Open
	}

	return cfg, nil
}
