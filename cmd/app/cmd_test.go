// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"bytes"
	"context"
	"os"

	"github.com/gavinbunney/docsite/pkg/version"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("docsite command", func() {
	var out *bytes.Buffer

	run := func(args ...string) error {
		cmd := NewCommand(context.Background())
		cmd.SetOut(out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		return cmd.Execute()
	}

	BeforeEach(func() {
		out = &bytes.Buffer{}
	})

	It("prints the site config", func() {
		Expect(run("print", "--format", "json", "--year", "2020")).To(Succeed())
		Expect(out.String()).To(ContainSubstring(`"copyright": "Copyright © 2020 Gavin Bunney"`))
	})

	It("validates the site config", func() {
		Expect(run("validate", "--overrides", "testdata/overrides.yaml")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("site config is valid"))
	})

	It("rejects invalid overrides", func() {
		Expect(run("validate", "--overrides", "testdata/invalid.yaml")).To(MatchError(ContainSubstring("invalid site config")))
	})

	It("rejects an unknown format", func() {
		Expect(run("print", "--format", "toml")).To(HaveOccurred())
	})

	It("requires a destination", func() {
		Expect(run()).To(MatchError(ContainSubstring("destination")))
	})

	It("dry runs without a destination", func() {
		Expect(run("--dry-run", "--format", "json")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("siteConfig.json"))
	})

	It("reads flags from the environment", func() {
		Expect(os.Setenv("DOCSITE_YEAR", "2019")).To(Succeed())
		defer os.Unsetenv("DOCSITE_YEAR")
		Expect(run("print", "--format", "yaml")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("Copyright © 2019 Gavin Bunney"))
	})

	It("prints the version", func() {
		Expect(run("version")).To(Succeed())
		Expect(out.String()).To(Equal(version.Version + "\n"))
	})

	It("generates completions", func() {
		Expect(run("completion", "bash")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("docsite"))
	})
})
