// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package siteconfig

// Descriptor models the site configuration consumed by the documentation
// site generator. It is built once per generation and never mutated
// afterwards; use Clone when a modified copy is needed.
type Descriptor struct {
	// Title is the human-readable site name.
	Title string `json:"title" yaml:"title"`
	// URL is the absolute base URL of the published site.
	URL string `json:"url" yaml:"url"`
	// BaseURL is the root-relative path prefix. It starts and ends with "/".
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	// ProjectName identifies the hosting project (repository).
	ProjectName string `json:"projectName" yaml:"projectName"`
	// OrganizationName identifies the account or organization owning the project.
	OrganizationName string `json:"organizationName" yaml:"organizationName"`
	// EditURL is the prefix for "edit this page" links.
	EditURL string `json:"editUrl" yaml:"editUrl"`
	// HeaderLinks are the top navigation links in display order.
	HeaderLinks []HeaderLink `json:"headerLinks" yaml:"headerLinks"`
	// Favicon is a relative path to the favicon image.
	Favicon string `json:"favicon" yaml:"favicon"`
	// Colors are the theme colors.
	Colors Colors `json:"colors" yaml:"colors"`
	// UsePrism is the set of languages highlighted with Prism.
	UsePrism Languages `json:"usePrism" yaml:"usePrism"`
	// Copyright is the footer and feed copyright line.
	Copyright string `json:"copyright" yaml:"copyright"`
	// Highlight configures the highlight.js fallback.
	Highlight Highlight `json:"highlight" yaml:"highlight"`
	// Scripts are absolute script URLs injected on every page.
	Scripts []string `json:"scripts" yaml:"scripts"`
	// Stylesheets are absolute stylesheet URLs injected on every page.
	Stylesheets []string `json:"stylesheets" yaml:"stylesheets"`
	// OnPageNav controls the in-page navigation.
	OnPageNav OnPageNav `json:"onPageNav" yaml:"onPageNav"`
	// CleanURL drops the .html extension from generated links.
	CleanURL bool `json:"cleanUrl" yaml:"cleanUrl"`
	// DocsSideNavCollapsible makes the docs sidebar sections collapsible.
	DocsSideNavCollapsible bool `json:"docsSideNavCollapsible" yaml:"docsSideNavCollapsible"`
}

// HeaderLink is a navigation bar entry
type HeaderLink struct {
	Href  string `json:"href" yaml:"href"`
	Label string `json:"label" yaml:"label"`
}

// Colors are the site theme colors as #RRGGBB literals
type Colors struct {
	PrimaryColor   string `json:"primaryColor" yaml:"primaryColor"`
	SecondaryColor string `json:"secondaryColor" yaml:"secondaryColor"`
}

// Highlight holds the syntax highlighting options
type Highlight struct {
	Theme string `json:"theme" yaml:"theme"`
}

// OnPageNav is the in-page navigation rendering mode
type OnPageNav string

const (
	// OnPageNavSeparate renders the page table of contents in a separate column
	OnPageNavSeparate OnPageNav = "separate"
	// OnPageNavNone disables the in-page navigation
	OnPageNavNone OnPageNav = "none"
)

// Valid reports whether o is a known mode
func (o OnPageNav) Valid() bool {
	switch o {
	case OnPageNavSeparate, OnPageNavNone:
		return true
	}
	return false
}

// Clone returns a deep copy of d
func (d Descriptor) Clone() Descriptor {
	c := d
	if d.HeaderLinks != nil {
		c.HeaderLinks = append([]HeaderLink{}, d.HeaderLinks...)
	}
	c.UsePrism = d.UsePrism.Clone()
	if d.Scripts != nil {
		c.Scripts = append([]string{}, d.Scripts...)
	}
	if d.Stylesheets != nil {
		c.Stylesheets = append([]string{}, d.Stylesheets...)
	}
	return c
}
