// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

// options is the set of parameters controlling a generation
type options struct {
	DestinationPath  string   `mapstructure:"destination"`
	Format           string   `mapstructure:"format"`
	Year             int      `mapstructure:"year"`
	OverridesPath    string   `mapstructure:"overrides"`
	DryRun           bool     `mapstructure:"dry-run"`
	Watch            bool     `mapstructure:"watch"`
	CheckLinks       bool     `mapstructure:"check-links"`
	LinkWorkers      int      `mapstructure:"link-workers"`
	FailFast         bool     `mapstructure:"fail-fast"`
	HostsToReport    []string `mapstructure:"hosts-to-report"`
	VerifyGitRemote  string   `mapstructure:"verify-git-remote"`
	VerifyGitHub     bool     `mapstructure:"verify-github"`
	GitHubHost       string   `mapstructure:"github-host"`
	GitHubOAuthToken string   `mapstructure:"github-oauth-token"`
	CacheDir         string   `mapstructure:"cache-dir"`
	MetricsTextfile  string   `mapstructure:"metrics-textfile"`
}
