// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"path/filepath"

	"github.com/gavinbunney/docsite/pkg/github"
	"github.com/gavinbunney/docsite/pkg/siteconfig"
)

// verifier checks a site config against its hosting service
type verifier interface {
	Verify(ctx context.Context, d siteconfig.Descriptor) error
}

type verifierFactory func(ctx context.Context, o *options) (verifier, error)

func newGitHubVerifier(ctx context.Context, o *options) (verifier, error) {
	host := o.GitHubHost
	if host == "" {
		host = github.DefaultHost
	}
	cachePath := filepath.Join(o.CacheDir, "diskv", host)
	client, err := github.NewClient(ctx, o.GitHubOAuthToken, host, cachePath)
	if err != nil {
		return nil, err
	}
	return github.NewVerifier(host, client), nil
}
