// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration_test

import (
	"errors"
	"os"

	"github.com/gavinbunney/docsite/cmd/configuration"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"
	"k8s.io/utils/pointer"
)

var _ = Describe("Configuration Loader", func() {
	var (
		file   string
		setEnv bool
		loader configuration.Loader
		cfg    *configuration.Config
		err    error
	)
	BeforeEach(func() {
		loader = new(configuration.DefaultConfigurationLoader)
	})
	JustBeforeEach(func() {
		if setEnv {
			Expect(os.Setenv(configuration.DocsiteConfigEnv, file)).To(Succeed())
		}
		cfg, err = loader.Load()
	})
	JustAfterEach(func() {
		if setEnv {
			Expect(os.Unsetenv(configuration.DocsiteConfigEnv)).To(Succeed())
		}
	})
	When("environment not set", func() {
		BeforeEach(func() {
			setEnv = false
		})
		It("creates empty configuration", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg).To(Equal(&configuration.Config{}))
		})
	})
	When("configuration file name is empty", func() {
		BeforeEach(func() {
			setEnv = true
			file = ""
		})
		It("errors", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(configuration.DocsiteConfigEnv))
			Expect(cfg).To(BeNil())
		})
	})
	When("configuration file name is directory", func() {
		BeforeEach(func() {
			setEnv = true
			file = "testdata"
		})
		It("errors", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("directory"))
			Expect(cfg).To(BeNil())
		})
	})
	When("configuration file is missing", func() {
		BeforeEach(func() {
			setEnv = true
			file = "testdata/missing.yaml"
		})
		It("creates empty configuration", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg).To(Equal(&configuration.Config{}))
		})
	})
	When("configuration file is not yaml", func() {
		BeforeEach(func() {
			setEnv = true
			file = "testdata/invalid.yaml"
		})
		It("errors", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("invalid.yaml"))
		})
	})
	When("load configuration file", func() {
		BeforeEach(func() {
			setEnv = true
			file = "testdata/config_full.yaml"
		})
		It("creates the configuration", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg).To(Equal(&configuration.Config{
				Title:            pointer.StringPtr("Kubectl Provider (preview)"),
				URL:              pointer.StringPtr("https://preview.example.com"),
				BaseURL:          pointer.StringPtr("/kubectl/"),
				OrganizationName: pointer.StringPtr("example"),
				HeaderLinks:      []configuration.HeaderLink{{Href: "https://github.com/example/terraform-provider-kubectl", Label: "Source"}},
				Colors:           &configuration.Colors{SecondaryColor: pointer.StringPtr("#112233")},
				UsePrism:         []string{"hcl", "yaml", "hcl"},
				CopyrightHolder:  pointer.StringPtr("Example Inc."),
				HighlightTheme:   pointer.StringPtr("github"),
				OnPageNav:        pointer.StringPtr("none"),
				CleanURL:         pointer.BoolPtr(false),
			}))
		})
	})
	When("load default configuration file", func() {
		var (
			expCfg *configuration.Config
		)
		BeforeEach(func() {
			setEnv = false
			file = defaultCfgFile
			_, err = os.Stat(file)
			Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
			expCfg = &configuration.Config{Title: pointer.StringPtr("Local")}
			var cnt []byte
			cnt, err = yaml.Marshal(expCfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(os.WriteFile(file, cnt, 0644)).To(Succeed())
		})
		AfterEach(func() {
			Expect(os.Remove(file)).To(Succeed())
		})
		It("creates the default configuration", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg).To(Equal(expCfg))
		})
	})
	When("using an explicit file", func() {
		BeforeEach(func() {
			setEnv = false
			loader = &configuration.FileLoader{Path: "testdata/config_full.yaml"}
		})
		It("reads it", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(*cfg.Title).To(Equal("Kubectl Provider (preview)"))
		})
	})
})
