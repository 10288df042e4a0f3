// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package siteconfig_test

import (
	"github.com/gavinbunney/docsite/pkg/siteconfig"
	"github.com/hashicorp/go-multierror"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Validate", func() {
	DescribeTable("rejects invalid fields",
		func(mutate func(d *siteconfig.Descriptor), message string) {
			d := siteconfig.New(2021)
			mutate(&d)
			err := d.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(message))
		},
		Entry("empty title", func(d *siteconfig.Descriptor) { d.Title = " " }, "title must not be empty"),
		Entry("relative url", func(d *siteconfig.Descriptor) { d.URL = "gavinbunney.github.io" }, "url:"),
		Entry("base url without leading slash", func(d *siteconfig.Descriptor) { d.BaseURL = "docs/" }, "baseUrl"),
		Entry("base url without trailing slash", func(d *siteconfig.Descriptor) { d.BaseURL = "/docs" }, "baseUrl"),
		Entry("project name", func(d *siteconfig.Descriptor) { d.ProjectName = "a b" }, "projectName"),
		Entry("organization name", func(d *siteconfig.Descriptor) { d.OrganizationName = "" }, "organizationName"),
		Entry("edit url", func(d *siteconfig.Descriptor) { d.EditURL = "/edit" }, "editUrl"),
		Entry("header link label", func(d *siteconfig.Descriptor) { d.HeaderLinks[1].Label = "" }, "headerLinks[1]: label"),
		Entry("header link href", func(d *siteconfig.Descriptor) { d.HeaderLinks[0].Href = "releases" }, "headerLinks[0]"),
		Entry("absolute favicon", func(d *siteconfig.Descriptor) { d.Favicon = "/img/favicon.png" }, "favicon"),
		Entry("favicon url", func(d *siteconfig.Descriptor) { d.Favicon = "https://example.com/favicon.png" }, "favicon"),
		Entry("short color", func(d *siteconfig.Descriptor) { d.Colors.PrimaryColor = "#5C4" }, "colors.primaryColor"),
		Entry("named color", func(d *siteconfig.Descriptor) { d.Colors.SecondaryColor = "purple" }, "colors.secondaryColor"),
		Entry("unknown prism language", func(d *siteconfig.Descriptor) { d.UsePrism.Add("cobol") }, `unknown language "cobol"`),
		Entry("empty copyright", func(d *siteconfig.Descriptor) { d.Copyright = "" }, "copyright"),
		Entry("unknown theme", func(d *siteconfig.Descriptor) { d.Highlight.Theme = "neon" }, "highlight.theme"),
		Entry("relative script", func(d *siteconfig.Descriptor) { d.Scripts = append(d.Scripts, "js/buttons.js") }, "scripts[1]"),
		Entry("ftp stylesheet", func(d *siteconfig.Descriptor) { d.Stylesheets[0] = "ftp://example.com/a.css" }, "stylesheets[0]"),
		Entry("unknown on page nav", func(d *siteconfig.Descriptor) { d.OnPageNav = "inline" }, "onPageNav"),
	)

	It("reports all violations at once", func() {
		d := siteconfig.New(2021)
		d.Title = ""
		d.BaseURL = "docs"
		d.Colors.PrimaryColor = "red"
		err := d.Validate()
		Expect(err).To(HaveOccurred())
		merr, ok := err.(*multierror.Error)
		Expect(ok).To(BeTrue())
		Expect(merr.Errors).To(HaveLen(3))
	})

	It("accepts the disabled on page nav", func() {
		d := siteconfig.New(2021)
		d.OnPageNav = siteconfig.OnPageNavNone
		Expect(d.Validate()).To(Succeed())
	})
})
