// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package internal contains code shared by the license hooks.
package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/goccy/go-yaml"
	"golang.org/x/tools/txtar"
)

// ConfigFile is the default path of the project configuration archive.
const ConfigFile = ".devtools.txtar"

// configMember is the name of the file inside the archive holding hook
// settings.
const configMember = "license-header.yaml"

// Config holds project-wide defaults for the hooks. Command-line flags take
// precedence over it.
type Config struct {
	Template    string            `yaml:"template"`
	LicenseFile string            `yaml:"license_file"`
	StartYear   int               `yaml:"start_year"`
	AuthorName  []string          `yaml:"author_name"`
	AuthorEmail string            `yaml:"author_email"`
	UpdateYear  *bool             `yaml:"update_year"`
	Markers     map[string]string `yaml:"markers"`
}

// StartYearString returns StartYear formatted for substitution, or an empty
// string if it is not set.
func (c *Config) StartYearString() string {
	if c.StartYear == 0 {
		return ""
	}
	return strconv.Itoa(c.StartYear)
}

// LoadConfig reads hook settings from the txtar archive at path. A missing
// archive or an archive without hook settings yields an empty Config.
func LoadConfig(path string) (*Config, error) {
	cfg := new(Config)
	ar, err := txtar.ParseFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	for _, f := range ar.Files {
		if f.Name != configMember {
			continue
		}
		if err := yaml.Unmarshal(f.Data, cfg); err != nil {
			return nil, fmt.Errorf("%s: %s: %w", path, configMember, err)
		}
	}
	return cfg, nil
}
