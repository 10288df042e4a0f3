// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package siteconfig

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DefaultCopyrightHolder is the name printed in the copyright line
	DefaultCopyrightHolder = "Gavin Bunney"

	organization = "gavinbunney"
	project      = "terraform-provider-kubectl"
	repository   = "https://github.com/" + organization + "/" + project
)

// ComputeCopyright returns the copyright line of the site for year
func ComputeCopyright(year int) string {
	return Copyright(DefaultCopyrightHolder, year)
}

// Copyright returns the copyright line for holder and year
func Copyright(holder string, year int) string {
	return fmt.Sprintf("Copyright © %d %s", year, holder)
}

// New creates the site descriptor. year is the only input that is not
// a literal and only affects the copyright line.
func New(year int) Descriptor {
	return Descriptor{
		Title:            "Kubectl Terraform Provider",
		URL:              "https://" + organization + ".github.io",
		BaseURL:          "/" + project + "/",
		ProjectName:      project,
		OrganizationName: organization,
		EditURL:          repository + "/edit/master/docusaurus/docs/",
		HeaderLinks: []HeaderLink{
			{Href: repository + "/releases", Label: "Releases"},
			{Href: repository, Label: "GitHub"},
		},
		Favicon: "img/favicon.png",
		Colors: Colors{
			PrimaryColor:   "#5C4EE5",
			SecondaryColor: "#66246c",
		},
		UsePrism:  NewLanguages("yaml", "js", "bash", "sh", "hcl"),
		Copyright: ComputeCopyright(year),
		Highlight: Highlight{
			Theme: "default",
		},
		Scripts: []string{"https://buttons.github.io/buttons.js"},
		Stylesheets: []string{
			"https://fonts.googleapis.com/css?family=Lato:400,400i,700,700i,900,900i&display=swap",
		},
		OnPageNav:              OnPageNavSeparate,
		CleanURL:               true,
		DocsSideNavCollapsible: true,
	}
}

// Current creates the site descriptor for the current calendar year
func Current() Descriptor {
	return New(time.Now().Year())
}

// SiteURL is the absolute URL of the site root
func (d Descriptor) SiteURL() string {
	return strings.TrimSuffix(d.URL, "/") + d.BaseURL
}

// RepositoryURL is the GitHub URL of the hosting project
func (d Descriptor) RepositoryURL() string {
	return fmt.Sprintf("https://github.com/%s/%s", d.OrganizationName, d.ProjectName)
}

// EditPageURL returns the "edit this page" link for a document path
// relative to the docs directory
func (d Descriptor) EditPageURL(docPath string) string {
	docPath = strings.TrimLeft(docPath, "/")
	if d.EditURL == "" || strings.HasSuffix(d.EditURL, "/") {
		return d.EditURL + docPath
	}
	return d.EditURL + "/" + docPath
}

// Links returns every absolute URL referenced by the descriptor, in
// declaration order. The site URL comes first.
func (d Descriptor) Links() []string {
	links := []string{d.SiteURL(), d.EditURL}
	for _, l := range d.HeaderLinks {
		links = append(links, l.Href)
	}
	links = append(links, d.Scripts...)
	links = append(links, d.Stylesheets...)
	return links
}
