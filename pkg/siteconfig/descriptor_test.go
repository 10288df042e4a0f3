// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package siteconfig_test

import (
	"strconv"
	"strings"
	"time"

	"github.com/gavinbunney/docsite/pkg/siteconfig"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Descriptor", func() {
	var d siteconfig.Descriptor

	BeforeEach(func() {
		d = siteconfig.New(2021)
	})

	Describe("ComputeCopyright", func() {
		It("interpolates the year", func() {
			Expect(siteconfig.ComputeCopyright(2019)).To(Equal("Copyright © 2019 Gavin Bunney"))
		})
		It("uses a four digit year", func() {
			Expect(siteconfig.ComputeCopyright(2026)).To(MatchRegexp(`\b2026\b`))
		})
	})

	Describe("New", func() {
		It("puts the year in the copyright", func() {
			Expect(d.Copyright).To(ContainSubstring("2021"))
		})
		It("uses a base URL wrapped in slashes", func() {
			Expect(d.BaseURL).To(HavePrefix("/"))
			Expect(d.BaseURL).To(HaveSuffix("/"))
		})
		It("keeps header links in declaration order", func() {
			Expect(d.HeaderLinks).To(HaveLen(2))
			Expect(d.HeaderLinks[0].Label).To(Equal("Releases"))
			Expect(d.HeaderLinks[1].Label).To(Equal("GitHub"))
			for _, l := range d.HeaderLinks {
				Expect(l.Href).NotTo(BeEmpty())
				Expect(l.Label).NotTo(BeEmpty())
			}
		})
		It("has the theme colors", func() {
			Expect(d.Colors.PrimaryColor).To(Equal("#5C4EE5"))
			Expect(d.Colors.SecondaryColor).To(Equal("#66246c"))
		})
		It("highlights exactly the expected languages", func() {
			Expect(d.UsePrism.Items()).To(ConsistOf("yaml", "js", "bash", "sh", "hcl"))
		})
		It("is valid", func() {
			Expect(d.Validate()).To(Succeed())
		})
		It("is idempotent within a year", func() {
			Expect(siteconfig.New(2021)).To(Equal(d))
			first, err := siteconfig.Encode(siteconfig.New(2021), siteconfig.FormatJS)
			Expect(err).NotTo(HaveOccurred())
			second, err := siteconfig.Encode(siteconfig.New(2021), siteconfig.FormatJS)
			Expect(err).NotTo(HaveOccurred())
			Expect(first).To(Equal(second))
		})
		It("only changes the copyright across years", func() {
			next := siteconfig.New(2022)
			Expect(next.Copyright).NotTo(Equal(d.Copyright))
			next.Copyright = d.Copyright
			Expect(next).To(Equal(d))
		})
	})

	Describe("Current", func() {
		It("uses the current year", func() {
			Expect(siteconfig.Current().Copyright).To(ContainSubstring(strconv.Itoa(time.Now().Year())))
		})
	})

	Describe("Clone", func() {
		It("does not share slices", func() {
			c := d.Clone()
			c.HeaderLinks[0].Label = "changed"
			c.Scripts[0] = "changed"
			c.UsePrism.Add("go")
			Expect(d.HeaderLinks[0].Label).To(Equal("Releases"))
			Expect(d.Scripts[0]).To(Equal("https://buttons.github.io/buttons.js"))
			Expect(d.UsePrism.Has("go")).To(BeFalse())
		})
	})

	Describe("URLs", func() {
		It("builds the site URL", func() {
			Expect(d.SiteURL()).To(Equal("https://gavinbunney.github.io/terraform-provider-kubectl/"))
		})
		It("builds the repository URL", func() {
			Expect(d.RepositoryURL()).To(Equal("https://github.com/gavinbunney/terraform-provider-kubectl"))
		})
		It("builds edit page links", func() {
			Expect(d.EditPageURL("/usage/resource.md")).To(Equal("https://github.com/gavinbunney/terraform-provider-kubectl/edit/master/docusaurus/docs/usage/resource.md"))
			d.EditURL = strings.TrimSuffix(d.EditURL, "/")
			Expect(d.EditPageURL("index.md")).To(HaveSuffix("/docs/index.md"))
		})
		It("lists every referenced link", func() {
			Expect(d.Links()).To(Equal([]string{
				"https://gavinbunney.github.io/terraform-provider-kubectl/",
				"https://github.com/gavinbunney/terraform-provider-kubectl/edit/master/docusaurus/docs/",
				"https://github.com/gavinbunney/terraform-provider-kubectl/releases",
				"https://github.com/gavinbunney/terraform-provider-kubectl",
				"https://buttons.github.io/buttons.js",
				"https://fonts.googleapis.com/css?family=Lato:400,400i,700,700i,900,900i&display=swap",
			}))
		})
	})
})

var _ = Describe("Languages", func() {
	It("drops duplicates and keeps insertion order", func() {
		l := siteconfig.NewLanguages("yaml", "js", "yaml")
		Expect(l.Items()).To(Equal([]string{"yaml", "js"}))
		Expect(l.Slice()).To(Equal([]string{"js", "yaml"}))
	})
	It("compares regardless of order", func() {
		Expect(siteconfig.NewLanguages("js", "sh").Equal(siteconfig.NewLanguages("sh", "js"))).To(BeTrue())
		Expect(siteconfig.NewLanguages("js").Equal(siteconfig.NewLanguages("sh", "js"))).To(BeFalse())
	})
})
