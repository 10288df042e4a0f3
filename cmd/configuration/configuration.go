// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gavinbunney/docsite/pkg/siteconfig"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFileName is the name of the overrides file in DocsiteHomeDir
	DefaultConfigFileName = "config"
	// DocsiteHomeDir is the docsite directory in the user home
	DocsiteHomeDir = ".docsite"
	// DocsiteConfigEnv names the environment variable pointing to the overrides file
	DocsiteConfigEnv = "DOCSITECONFIG"
)

// Loader loads the overrides configuration
type Loader interface {
	Load() (*Config, error)
}

// DefaultConfigurationLoader reads the file named by DOCSITECONFIG or
// $HOME/.docsite/config
type DefaultConfigurationLoader struct{}

// Load implements Loader
func (d *DefaultConfigurationLoader) Load() (*Config, error) {
	path, err := d.Path()
	if err != nil {
		return nil, err
	}
	return load(path)
}

// Path returns the overrides file path the loader would read
func (d *DefaultConfigurationLoader) Path() (string, error) {
	if configFilePath, found := os.LookupEnv(DocsiteConfigEnv); found {
		if configFilePath == "" {
			return "", fmt.Errorf("the provided environment variable %s is set to empty string", DocsiteConfigEnv)
		}
		return configFilePath, nil
	}
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(userHomeDir, DocsiteHomeDir, DefaultConfigFileName), nil
}

// FileLoader reads the overrides from an explicit path
type FileLoader struct {
	Path string
}

// Load implements Loader
func (f *FileLoader) Load() (*Config, error) {
	return load(f.Path)
}

func load(configFilePath string) (*Config, error) {
	stat, err := os.Stat(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to get file info for configuration file path %s: %w", configFilePath, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("the config file path %s is directory, instead of file", configFilePath)
	}
	configFile, err := os.ReadFile(configFilePath)
	if err != nil {
		return nil, err
	}
	config := &Config{}
	if err := yaml.Unmarshal(configFile, config); err != nil {
		return nil, fmt.Errorf("can't parse configuration file %s: %w", configFilePath, err)
	}
	return config, nil
}

// Apply returns a copy of d with the overrides applied. year is used to
// recompute the copyright line when the holder is overridden.
func (c *Config) Apply(d siteconfig.Descriptor, year int) siteconfig.Descriptor {
	out := d.Clone()
	if c == nil {
		return out
	}
	setString(&out.Title, c.Title)
	setString(&out.URL, c.URL)
	setString(&out.BaseURL, c.BaseURL)
	setString(&out.ProjectName, c.ProjectName)
	setString(&out.OrganizationName, c.OrganizationName)
	setString(&out.EditURL, c.EditURL)
	setString(&out.Favicon, c.Favicon)
	setString(&out.Highlight.Theme, c.HighlightTheme)
	if c.HeaderLinks != nil {
		out.HeaderLinks = make([]siteconfig.HeaderLink, 0, len(c.HeaderLinks))
		for _, l := range c.HeaderLinks {
			out.HeaderLinks = append(out.HeaderLinks, siteconfig.HeaderLink{Href: l.Href, Label: l.Label})
		}
	}
	if c.Colors != nil {
		setString(&out.Colors.PrimaryColor, c.Colors.PrimaryColor)
		setString(&out.Colors.SecondaryColor, c.Colors.SecondaryColor)
	}
	if c.UsePrism != nil {
		out.UsePrism = siteconfig.NewLanguages(c.UsePrism...)
	}
	if c.CopyrightHolder != nil {
		out.Copyright = siteconfig.Copyright(*c.CopyrightHolder, year)
	}
	if c.Scripts != nil {
		out.Scripts = append([]string{}, c.Scripts...)
	}
	if c.Stylesheets != nil {
		out.Stylesheets = append([]string{}, c.Stylesheets...)
	}
	if c.OnPageNav != nil {
		out.OnPageNav = siteconfig.OnPageNav(*c.OnPageNav)
	}
	if c.CleanURL != nil {
		out.CleanURL = *c.CleanURL
	}
	if c.DocsSideNavCollapsible != nil {
		out.DocsSideNavCollapsible = *c.DocsSideNavCollapsible
	}
	return out
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
