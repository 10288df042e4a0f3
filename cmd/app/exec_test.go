// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/gavinbunney/docsite/cmd/configuration"
	"github.com/gavinbunney/docsite/pkg/siteconfig"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type fakeVerifier struct {
	calls int
	err   error
}

func (f *fakeVerifier) Verify(_ context.Context, _ siteconfig.Descriptor) error {
	f.calls++
	return f.err
}

var _ = Describe("generator", func() {
	var (
		o    *options
		out  *bytes.Buffer
		dest string
		g    *generator
		fv   *fakeVerifier
	)

	BeforeEach(func() {
		var err error
		dest, err = os.MkdirTemp("", "docsite")
		Expect(err).NotTo(HaveOccurred())
		o = &options{
			DestinationPath: dest,
			Format:          "js",
			Year:            2020,
			OverridesPath:   "testdata/overrides.yaml",
		}
		out = &bytes.Buffer{}
		fv = &fakeVerifier{}
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dest)).To(Succeed())
	})

	JustBeforeEach(func() {
		g = newGenerator(o, out)
		g.now = func() time.Time { return time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC) }
		g.newVerifier = func(context.Context, *options) (verifier, error) { return fv, nil }
	})

	Describe("build", func() {
		It("applies the overrides to the defaults", func() {
			d, err := g.build()
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Title).To(Equal("Kubectl Provider"))
			Expect(d.Copyright).To(Equal("Copyright © 2020 Kubectl Provider Authors"))
			Expect(d.UsePrism.Items()).To(Equal([]string{"hcl", "yaml"}))
			Expect(d.BaseURL).To(Equal("/terraform-provider-kubectl/"))
		})

		When("no year is given", func() {
			BeforeEach(func() {
				o.Year = 0
				o.OverridesPath = ""
			})
			It("uses the current year", func() {
				d, err := g.build()
				Expect(err).NotTo(HaveOccurred())
				Expect(d).To(Equal(siteconfig.New(2031)))
			})
		})

		When("the overrides are invalid", func() {
			BeforeEach(func() {
				o.OverridesPath = "testdata/invalid.yaml"
			})
			It("reports every violation", func() {
				_, err := g.build()
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("baseUrl"))
				Expect(err.Error()).To(ContainSubstring("colors.primaryColor"))
			})
		})
	})

	Describe("generate", func() {
		It("writes the site config", func() {
			Expect(g.generate(context.Background())).To(Succeed())
			blob, err := os.ReadFile(filepath.Join(dest, "siteConfig.js"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(blob)).To(ContainSubstring(`"title": "Kubectl Provider"`))
			Expect(string(blob)).To(HaveSuffix("module.exports = siteConfig;\n"))
		})

		It("is idempotent", func() {
			Expect(g.generate(context.Background())).To(Succeed())
			first, err := os.ReadFile(filepath.Join(dest, "siteConfig.js"))
			Expect(err).NotTo(HaveOccurred())
			Expect(g.generate(context.Background())).To(Succeed())
			second, err := os.ReadFile(filepath.Join(dest, "siteConfig.js"))
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
		})

		When("dry running", func() {
			BeforeEach(func() {
				o.DryRun = true
				o.Format = "yaml"
			})
			It("prints the file hierarchy without writing", func() {
				Expect(g.generate(context.Background())).To(Succeed())
				Expect(out.String()).To(ContainSubstring("siteConfig.yaml"))
				Expect(out.String()).To(ContainSubstring("Build finished"))
				entries, err := os.ReadDir(dest)
				Expect(err).NotTo(HaveOccurred())
				Expect(entries).To(BeEmpty())
			})
		})

		When("a check fails", func() {
			BeforeEach(func() {
				o.VerifyGitHub = true
				fv.err = errors.New("repository gavinbunney/terraform-provider-kubectl not found")
			})
			It("does not write", func() {
				Expect(g.generate(context.Background())).To(MatchError(ContainSubstring("not found")))
				Expect(filepath.Join(dest, "siteConfig.js")).NotTo(BeAnExistingFile())
			})
		})
	})

	Describe("print", func() {
		BeforeEach(func() {
			o.Format = "json"
		})
		It("encodes to the output", func() {
			d, err := g.build()
			Expect(err).NotTo(HaveOccurred())
			Expect(g.print(d)).To(Succeed())
			parsed, err := siteconfig.Parse(out.Bytes())
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(d))
		})
	})

	Describe("check", func() {
		var repoDir string

		BeforeEach(func() {
			var err error
			repoDir, err = os.MkdirTemp("", "docsite-repo")
			Expect(err).NotTo(HaveOccurred())
			o.OverridesPath = ""
			o.VerifyGitRemote = repoDir
			o.VerifyGitHub = true
		})

		AfterEach(func() {
			Expect(os.RemoveAll(repoDir)).To(Succeed())
		})

		initRepo := func(remoteURL string) {
			repo, err := gogit.PlainInit(repoDir, false)
			Expect(err).NotTo(HaveOccurred())
			_, err = repo.CreateRemote(&config.RemoteConfig{Name: "origin", URLs: []string{remoteURL}})
			Expect(err).NotTo(HaveOccurred())
		}

		It("passes for the matching repository", func() {
			initRepo("https://github.com/gavinbunney/terraform-provider-kubectl.git")
			d, err := g.build()
			Expect(err).NotTo(HaveOccurred())
			Expect(g.check(context.Background(), d)).To(Succeed())
			Expect(fv.calls).To(Equal(1))
		})

		It("aggregates failures", func() {
			initRepo("git@github.com:someone/elsewhere.git")
			fv.err = errors.New("branch master not found")
			d, err := g.build()
			Expect(err).NotTo(HaveOccurred())
			err = g.check(context.Background(), d)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("does not match remote"))
			Expect(err.Error()).To(ContainSubstring("branch master not found"))
		})

		When("failing fast", func() {
			BeforeEach(func() {
				o.FailFast = true
			})
			It("stops at the first failure", func() {
				initRepo("git@github.com:someone/elsewhere.git")
				d, err := g.build()
				Expect(err).NotTo(HaveOccurred())
				Expect(g.check(context.Background(), d)).NotTo(Succeed())
				Expect(fv.calls).To(BeZero())
			})
		})
	})
})

var _ = Describe("generator metrics", func() {
	var (
		dest string
		o    *options
	)

	BeforeEach(func() {
		var err error
		dest, err = os.MkdirTemp("", "docsite")
		Expect(err).NotTo(HaveOccurred())
		o = &options{
			DestinationPath: filepath.Join(dest, "out"),
			Format:          "json",
			Year:            2020,
			OverridesPath:   "testdata/overrides.yaml",
			MetricsTextfile: filepath.Join(dest, "docsite.prom"),
		}
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dest)).To(Succeed())
	})

	It("writes the metrics textfile after each generation", func() {
		g := newGenerator(o, &bytes.Buffer{})
		g.withMetrics()
		Expect(g.generate(context.Background())).To(Succeed())
		o.OverridesPath = "testdata/invalid.yaml"
		g.loader = &configuration.FileLoader{Path: o.OverridesPath}
		Expect(g.generate(context.Background())).NotTo(Succeed())

		b, err := os.ReadFile(o.MetricsTextfile)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(b)).To(ContainSubstring(`docsite_generations_total{result="success"} 1`))
		Expect(string(b)).To(ContainSubstring(`docsite_generations_total{result="failure"} 1`))
	})
})
