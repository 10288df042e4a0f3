// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package git

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gavinbunney/docsite/pkg/siteconfig"
	gogit "github.com/go-git/go-git/v5"
	"github.com/hashicorp/go-multierror"
	"k8s.io/klog/v2"
)

// DefaultRemoteName is the remote compared with the descriptor
const DefaultRemoteName = "origin"

// Git interface defines gogit git API
type Git interface {
	PlainOpen(path string) (Repository, error)
}

// Repository interface defines gogit repository API
type Repository interface {
	RemoteURLs(name string) ([]string, error)
}

type git struct {
	repository *gogit.Repository
}

// NewGit creates new git struct
func NewGit() Git {
	return &git{}
}

// PlainOpen calls git repository API PlainOpenWithOptions, looking up parent
// directories for the .git folder
func (g *git) PlainOpen(path string) (Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	return &git{repository: repo}, err
}

// RemoteURLs returns the configured URLs of a remote
func (g *git) RemoteURLs(name string) ([]string, error) {
	remote, err := g.repository.Remote(name)
	if err != nil {
		return nil, err
	}
	return remote.Config().URLs, nil
}

// Remote is a repository hosted on a git server
type Remote struct {
	Host         string
	Organization string
	Project      string
}

func (r *Remote) String() string {
	return fmt.Sprintf("%s/%s/%s", r.Host, r.Organization, r.Project)
}

// ParseRemote parses https://host/org/project(.git) and git@host:org/project(.git)
// remote URLs
func ParseRemote(remoteURL string) (*Remote, error) {
	var host, path string
	if strings.Contains(remoteURL, "://") {
		u, err := url.Parse(remoteURL)
		if err != nil {
			return nil, fmt.Errorf("invalid remote %s: %w", remoteURL, err)
		}
		host, path = u.Hostname(), u.Path
	} else {
		// scp-like syntax
		at := strings.Index(remoteURL, "@")
		colon := strings.Index(remoteURL, ":")
		if colon < 0 || colon < at {
			return nil, fmt.Errorf("invalid remote %s: unsupported format", remoteURL)
		}
		host, path = remoteURL[at+1:colon], remoteURL[colon+1:]
	}
	segments := strings.Split(strings.Trim(strings.TrimSuffix(path, ".git"), "/"), "/")
	if host == "" || len(segments) != 2 || segments[0] == "" || segments[1] == "" {
		return nil, fmt.Errorf("invalid remote %s: expected <host>/<organization>/<project>", remoteURL)
	}
	return &Remote{Host: strings.ToLower(host), Organization: segments[0], Project: segments[1]}, nil
}

// Origin reads the origin remote of the repository at path
func Origin(g Git, path string) (*Remote, error) {
	repo, err := g.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository %s: %w", path, err)
	}
	urls, err := repo.RemoteURLs(DefaultRemoteName)
	if err != nil {
		return nil, fmt.Errorf("failed to read remote %s of %s: %w", DefaultRemoteName, path, err)
	}
	if len(urls) == 0 {
		return nil, fmt.Errorf("remote %s of %s has no URL", DefaultRemoteName, path)
	}
	klog.V(4).Infof("remote %s of %s is %s", DefaultRemoteName, path, urls[0])
	return ParseRemote(urls[0])
}

// VerifyRemote checks that the descriptor organization and project name
// match the remote repository. Names are compared case-insensitively like
// GitHub does.
func VerifyRemote(d siteconfig.Descriptor, remote *Remote) error {
	if remote == nil {
		return errors.New("no remote to verify")
	}
	var errs *multierror.Error
	if !strings.EqualFold(d.OrganizationName, remote.Organization) {
		errs = multierror.Append(errs, fmt.Errorf("organizationName %q does not match remote organization %q", d.OrganizationName, remote.Organization))
	}
	if !strings.EqualFold(d.ProjectName, remote.Project) {
		errs = multierror.Append(errs, fmt.Errorf("projectName %q does not match remote project %q", d.ProjectName, remote.Project))
	}
	if err := errs.ErrorOrNil(); err != nil {
		return fmt.Errorf("site config does not match remote %s: %w", remote, err)
	}
	return nil
}
