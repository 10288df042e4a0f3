// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/gavinbunney/docsite/cmd/configuration"
	"github.com/gavinbunney/docsite/pkg/github"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix prefixes the environment variables overriding flags,
// e.g. DOCSITE_GITHUB_OAUTH_TOKEN
const envPrefix = "DOCSITE"

func configureFlags(command *cobra.Command, vip *viper.Viper) {
	flags := command.Flags()
	flags.StringP("destination", "d", "",
		"Destination directory of the generated site config. Required unless --dry-run is set.")
	bind(vip, flags, "destination")

	flags.Bool("dry-run", false,
		"Runs the command end-to-end but instead of writing files, it will output the projected file hierarchy to the standard output.")
	bind(vip, flags, "dry-run")

	flags.Bool("watch", false,
		"Keeps running and regenerates the site config whenever the overrides file changes.")
	bind(vip, flags, "watch")

	persistent := command.PersistentFlags()
	persistent.String("format", "js",
		"Output format. Must be one of: js, json, yaml.")
	bind(vip, persistent, "format")

	persistent.Int("year", 0,
		"Year in the copyright line. 0 uses the current year.")
	bind(vip, persistent, "year")

	persistent.String("overrides", "",
		"Path to a YAML overrides file. Defaults to $"+configuration.DocsiteConfigEnv+" or $HOME/"+configuration.DocsiteHomeDir+"/"+configuration.DefaultConfigFileName+".")
	bind(vip, persistent, "overrides")

	persistent.Bool("check-links", false,
		"Checks that every absolute link in the site config answers successfully.")
	bind(vip, persistent, "check-links")

	persistent.Int("link-workers", 10,
		"Number of parallel workers checking links.")
	bind(vip, persistent, "link-workers")

	persistent.Bool("fail-fast", false,
		"Fail-fast vs fault tolerant checks.")
	bind(vip, persistent, "fail-fast")

	persistent.StringSlice("hosts-to-report", []string{},
		"When a link has a host from the given array it will get reported")
	bind(vip, persistent, "hosts-to-report")

	persistent.String("verify-git-remote", "",
		"Path to a local git repository whose origin remote must match organizationName and projectName.")
	bind(vip, persistent, "verify-git-remote")

	persistent.Bool("verify-github", false,
		"Verifies on GitHub that the repository, the edit branch and the repository header links exist.")
	bind(vip, persistent, "verify-github")

	persistent.String("github-host", github.DefaultHost,
		"GitHub instance used by --verify-github.")
	bind(vip, persistent, "github-host")

	persistent.String("github-oauth-token", "",
		"GitHub personal token used by --verify-github. Falls back to $GITHUB_TOKEN.")
	bind(vip, persistent, "github-oauth-token")

	cacheDir := ""
	userHomeDir, err := os.UserHomeDir()
	if err == nil {
		// default value $HOME/.docsite/cache
		cacheDir = filepath.Join(userHomeDir, configuration.DocsiteHomeDir, "cache")
	}
	persistent.String("cache-dir", cacheDir,
		"Cache directory, used for GitHub API responses.")
	bind(vip, persistent, "cache-dir")

	persistent.String("metrics-textfile", "",
		"If specified, HTTP client and generation metrics are written to this file in the Prometheus text format.")
	bind(vip, persistent, "metrics-textfile")

	vip.SetEnvPrefix(envPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()
}

func bind(vip *viper.Viper, flags *pflag.FlagSet, name string) {
	_ = vip.BindPFlag(name, flags.Lookup(name))
}

// AddFlags adds go flags to rootCmd
func AddFlags(rootCmd *cobra.Command) {
	flag.CommandLine.VisitAll(func(gf *flag.Flag) {
		rootCmd.PersistentFlags().AddGoFlag(gf)
	})
}
