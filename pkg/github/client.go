// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	gogithub "github.com/google/go-github/v43/github"
	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"
	"github.com/peterbourgon/diskv"
	"golang.org/x/oauth2"
	"k8s.io/klog/v2"
)

// NewClient builds a GitHub client for host whose responses are cached on
// disk under cachePath. An empty accessToken gives unauthenticated access.
func NewClient(ctx context.Context, accessToken string, host string, cachePath string) (*gogithub.Client, error) {
	base := http.DefaultTransport
	if len(accessToken) > 0 {
		// if token provided replace base RoundTripper
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
		base = oauth2.NewClient(ctx, ts).Transport
	}

	flatTransform := func(s string) []string { return []string{} }
	d := diskv.New(diskv.Options{
		BasePath:     cachePath,
		Transform:    flatTransform,
		CacheSizeMax: 100 * 1024 * 1024,
	})

	cacheTransport := &httpcache.Transport{
		Transport:           withHTTPLogging(base),
		Cache:               diskcache.NewWithDiskv(d),
		MarkCachedResponses: true,
	}
	httpClient := cacheTransport.Client()

	instance := host
	if !strings.HasPrefix(instance, "https://") && !strings.HasPrefix(instance, "http://") {
		instance = "https://" + instance
	}
	if instance == "https://"+DefaultHost {
		return gogithub.NewClient(httpClient), nil
	}
	client, err := gogithub.NewEnterpriseClient(instance, "", httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create client for GitHub instance %s: %w", host, err)
	}
	return client, nil
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

// RoundTrip implements the RoundTripper interface.
func (rt roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return rt(r)
}

func withHTTPLogging(next http.RoundTripper) http.RoundTripper {
	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		var respStatus string
		resp, err := next.RoundTrip(r)
		if err == nil {
			respStatus = resp.Status
		}
		klog.V(6).Infof("HTTP %s %s %s", r.Method, r.URL, respStatus)
		return resp, err
	})
}
