// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package github

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gavinbunney/docsite/pkg/siteconfig"
	gogithub "github.com/google/go-github/v43/github"
	"github.com/hashicorp/go-multierror"
	"k8s.io/klog/v2"
)

// DefaultHost is the public GitHub instance
const DefaultHost = "github.com"

//counterfeiter:generate . Repositories

// Repositories is an interface needed for faking
type Repositories interface {
	Get(ctx context.Context, owner, repo string) (*gogithub.Repository, *gogithub.Response, error)
}

//counterfeiter:generate . Git

// Git is an interface needed for faking
type Git interface {
	GetRef(ctx context.Context, owner string, repo string, ref string) (*gogithub.Reference, *gogithub.Response, error)
}

//counterfeiter:generate . RateLimitSource

// RateLimitSource is an interface needed for faking
type RateLimitSource interface {
	RateLimits(ctx context.Context) (*gogithub.RateLimits, *gogithub.Response, error)
}

// Verifier checks that the repository a descriptor points to exists on GitHub
type Verifier struct {
	Host         string
	Repositories Repositories
	Git          Git
	// RateLimit is optional, remaining requests are logged when set
	RateLimit RateLimitSource
}

// NewVerifier creates a Verifier backed by a GitHub client
func NewVerifier(host string, client *gogithub.Client) *Verifier {
	return &Verifier{
		Host:         host,
		Repositories: client.Repositories,
		Git:          client.Git,
		RateLimit:    client,
	}
}

// Verify confirms that the repository <organizationName>/<projectName>
// exists, that the editUrl branch exists and that header links to the
// GitHub host stay in that repository
func (v *Verifier) Verify(ctx context.Context, d siteconfig.Descriptor) error {
	owner, repo := d.OrganizationName, d.ProjectName
	repository, resp, err := v.Repositories.Get(ctx, owner, repo)
	if err != nil {
		if notFound(resp) {
			return fmt.Errorf("repository %s/%s not found on %s", owner, repo, v.host())
		}
		return fmt.Errorf("failed to get repository %s/%s: %w", owner, repo, err)
	}
	if repository.GetArchived() {
		klog.Warningf("repository %s is archived", repository.GetFullName())
	}

	var errs *multierror.Error
	branch, err := EditBranch(d.EditURL, owner, repo)
	if err != nil {
		errs = multierror.Append(errs, err)
	} else if _, resp, err := v.Git.GetRef(ctx, owner, repo, "heads/"+branch); err != nil {
		if notFound(resp) {
			errs = multierror.Append(errs, fmt.Errorf("editUrl: branch %s not found in %s/%s", branch, owner, repo))
		} else {
			errs = multierror.Append(errs, fmt.Errorf("editUrl: failed to get branch %s: %w", branch, err))
		}
	}
	for i, l := range d.HeaderLinks {
		u, err := url.Parse(l.Href)
		if err != nil || !strings.EqualFold(u.Hostname(), v.host()) {
			continue
		}
		o, r := ownerAndRepo(u.Path)
		if !strings.EqualFold(o, owner) || !strings.EqualFold(r, repo) {
			errs = multierror.Append(errs, fmt.Errorf("headerLinks[%d]: %s does not point to %s/%s", i, l.Href, owner, repo))
		}
	}
	v.logRateLimit(ctx)
	return errs.ErrorOrNil()
}

// EditBranch extracts the branch from an edit URL of the form
// https://<host>/<owner>/<repo>/edit/<branch>/<path>
func EditBranch(editURL, owner, repo string) (string, error) {
	u, err := url.Parse(editURL)
	if err != nil {
		return "", fmt.Errorf("editUrl: %w", err)
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) < 4 || segments[2] != "edit" || segments[3] == "" {
		return "", fmt.Errorf("editUrl: %s is not of the form /<owner>/<repo>/edit/<branch>/", editURL)
	}
	if !strings.EqualFold(segments[0], owner) || !strings.EqualFold(segments[1], repo) {
		return "", fmt.Errorf("editUrl: %s does not point to %s/%s", editURL, owner, repo)
	}
	return segments[3], nil
}

func ownerAndRepo(path string) (string, string) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) < 2 {
		return "", ""
	}
	return segments[0], strings.TrimSuffix(segments[1], ".git")
}

func notFound(resp *gogithub.Response) bool {
	return resp != nil && resp.Response != nil && resp.StatusCode == http.StatusNotFound
}

func (v *Verifier) host() string {
	if v.Host == "" {
		return DefaultHost
	}
	return v.Host
}

func (v *Verifier) logRateLimit(ctx context.Context) {
	if v.RateLimit == nil {
		return
	}
	limits, _, err := v.RateLimit.RateLimits(ctx)
	if err != nil {
		var rle *gogithub.RateLimitError
		if errors.As(err, &rle) {
			klog.Warningf("%s rate limit exceeded, resets at %s", v.host(), rle.Rate.Reset)
			return
		}
		klog.V(4).Infof("failed to read %s rate limits: %v", v.host(), err)
		return
	}
	if limits.Core != nil {
		klog.V(2).Infof("%s rate limit: %d/%d, resets at %s", v.host(), limits.Core.Remaining, limits.Core.Limit, limits.Core.Reset)
	}
}
