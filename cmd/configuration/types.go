// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration

// Config holds descriptor overrides read from the user configuration file.
// A nil field keeps the built-in value.
type Config struct {
	Title                  *string      `yaml:"title,omitempty"`
	URL                    *string      `yaml:"url,omitempty"`
	BaseURL                *string      `yaml:"baseUrl,omitempty"`
	ProjectName            *string      `yaml:"projectName,omitempty"`
	OrganizationName       *string      `yaml:"organizationName,omitempty"`
	EditURL                *string      `yaml:"editUrl,omitempty"`
	HeaderLinks            []HeaderLink `yaml:"headerLinks,omitempty"`
	Favicon                *string      `yaml:"favicon,omitempty"`
	Colors                 *Colors      `yaml:"colors,omitempty"`
	UsePrism               []string     `yaml:"usePrism,omitempty"`
	CopyrightHolder        *string      `yaml:"copyrightHolder,omitempty"`
	HighlightTheme         *string      `yaml:"highlightTheme,omitempty"`
	Scripts                []string     `yaml:"scripts,omitempty"`
	Stylesheets            []string     `yaml:"stylesheets,omitempty"`
	OnPageNav              *string      `yaml:"onPageNav,omitempty"`
	CleanURL               *bool        `yaml:"cleanUrl,omitempty"`
	DocsSideNavCollapsible *bool        `yaml:"docsSideNavCollapsible,omitempty"`
}

// HeaderLink overrides a navigation entry
type HeaderLink struct {
	Href  string `yaml:"href"`
	Label string `yaml:"label"`
}

// Colors overrides the theme colors individually
type Colors struct {
	PrimaryColor   *string `yaml:"primaryColor,omitempty"`
	SecondaryColor *string `yaml:"secondaryColor,omitempty"`
}
