// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package siteconfig

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"
)

var (
	hexColor   = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	identifier = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
)

// prismLanguages are the Prism language ids (and aliases) accepted in usePrism
var prismLanguages = map[string]struct{}{
	"bash": {}, "sh": {}, "shell": {}, "c": {}, "clike": {}, "cpp": {}, "csharp": {}, "cs": {},
	"css": {}, "diff": {}, "docker": {}, "dockerfile": {}, "go": {}, "graphql": {}, "hcl": {},
	"html": {}, "ini": {}, "java": {}, "javascript": {}, "js": {}, "json": {}, "jsx": {},
	"kotlin": {}, "makefile": {}, "markdown": {}, "md": {}, "markup": {}, "powershell": {},
	"properties": {}, "protobuf": {}, "python": {}, "py": {}, "ruby": {}, "rb": {}, "rust": {},
	"scss": {}, "sql": {}, "swift": {}, "toml": {}, "tsx": {}, "typescript": {}, "ts": {},
	"xml": {}, "yaml": {}, "yml": {},
}

// highlightThemes are the highlight.js themes shipped with the site generator
var highlightThemes = map[string]struct{}{
	"default": {}, "a11y-dark": {}, "a11y-light": {}, "atom-one-dark": {}, "atom-one-light": {},
	"darcula": {}, "dracula": {}, "github": {}, "github-gist": {}, "googlecode": {},
	"monokai": {}, "monokai-sublime": {}, "nord": {}, "obsidian": {}, "solarized-dark": {},
	"solarized-light": {}, "tomorrow": {}, "tomorrow-night": {}, "vs": {}, "vs2015": {},
	"xcode": {},
}

// IsPrismLanguage reports whether id is a recognized Prism language
func IsPrismLanguage(id string) bool {
	_, ok := prismLanguages[id]
	return ok
}

// IsHighlightTheme reports whether name is a recognized highlight.js theme
func IsHighlightTheme(name string) bool {
	_, ok := highlightThemes[name]
	return ok
}

// Validate checks the descriptor fields and returns all violations
// aggregated in a single error, or nil
func (d Descriptor) Validate() error {
	var errs *multierror.Error
	if strings.TrimSpace(d.Title) == "" {
		errs = multierror.Append(errs, fmt.Errorf("title must not be empty"))
	}
	if err := validateAbsoluteURL(d.URL); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("url: %w", err))
	}
	if !strings.HasPrefix(d.BaseURL, "/") || !strings.HasSuffix(d.BaseURL, "/") {
		errs = multierror.Append(errs, fmt.Errorf("baseUrl %q must start and end with /", d.BaseURL))
	}
	if !identifier.MatchString(d.ProjectName) {
		errs = multierror.Append(errs, fmt.Errorf("projectName %q is not a valid identifier", d.ProjectName))
	}
	if !identifier.MatchString(d.OrganizationName) {
		errs = multierror.Append(errs, fmt.Errorf("organizationName %q is not a valid identifier", d.OrganizationName))
	}
	if err := validateAbsoluteURL(d.EditURL); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("editUrl: %w", err))
	}
	for i, l := range d.HeaderLinks {
		if strings.TrimSpace(l.Label) == "" {
			errs = multierror.Append(errs, fmt.Errorf("headerLinks[%d]: label must not be empty", i))
		}
		if err := validateAbsoluteURL(l.Href); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("headerLinks[%d]: %w", i, err))
		}
	}
	if err := validateRelativePath(d.Favicon); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("favicon: %w", err))
	}
	if !hexColor.MatchString(d.Colors.PrimaryColor) {
		errs = multierror.Append(errs, fmt.Errorf("colors.primaryColor %q is not a #RRGGBB color", d.Colors.PrimaryColor))
	}
	if !hexColor.MatchString(d.Colors.SecondaryColor) {
		errs = multierror.Append(errs, fmt.Errorf("colors.secondaryColor %q is not a #RRGGBB color", d.Colors.SecondaryColor))
	}
	for _, id := range d.UsePrism.Items() {
		if !IsPrismLanguage(id) {
			errs = multierror.Append(errs, fmt.Errorf("usePrism: unknown language %q", id))
		}
	}
	if strings.TrimSpace(d.Copyright) == "" {
		errs = multierror.Append(errs, fmt.Errorf("copyright must not be empty"))
	}
	if !IsHighlightTheme(d.Highlight.Theme) {
		errs = multierror.Append(errs, fmt.Errorf("highlight.theme: unknown theme %q", d.Highlight.Theme))
	}
	for i, s := range d.Scripts {
		if err := validateAbsoluteURL(s); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("scripts[%d]: %w", i, err))
		}
	}
	for i, s := range d.Stylesheets {
		if err := validateAbsoluteURL(s); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("stylesheets[%d]: %w", i, err))
		}
	}
	if !d.OnPageNav.Valid() {
		errs = multierror.Append(errs, fmt.Errorf("onPageNav: unknown mode %q", d.OnPageNav))
	}
	return errs.ErrorOrNil()
}

func validateAbsoluteURL(s string) error {
	if s == "" {
		return fmt.Errorf("must not be empty")
	}
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %v", s, err)
	}
	if (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return fmt.Errorf("%q is not an absolute http(s) URL", s)
	}
	return nil
}

func validateRelativePath(s string) error {
	if s == "" {
		return fmt.Errorf("must not be empty")
	}
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid path %q: %v", s, err)
	}
	if u.IsAbs() || u.Host != "" || strings.HasPrefix(s, "/") {
		return fmt.Errorf("%q is not a relative path", s)
	}
	return nil
}
