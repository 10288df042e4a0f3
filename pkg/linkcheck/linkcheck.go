// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package linkcheck

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gavinbunney/docsite/pkg/jobs"
	"github.com/gavinbunney/docsite/pkg/util/httpclient"
	"k8s.io/klog/v2"
)

// DefaultBackoff are the waits between attempts when a host answers 429
var DefaultBackoff = []time.Duration{1 * time.Second, 5 * time.Second, 10 * time.Second, 20 * time.Second}

// maxRetryAfter caps the honoured Retry-After header
const maxRetryAfter = 5 * time.Minute

// Checker validates that absolute links answer successfully
type Checker struct {
	// Client performs the requests. http.DefaultClient when nil.
	Client httpclient.Client
	// Workers is the number of links checked in parallel
	Workers int
	// FailFast stops at the first broken link
	FailFast bool
	// HostsToReport are hosts that must not be linked to
	HostsToReport []string
	// CheckLocal also checks links to localhost, which are skipped otherwise
	CheckLocal bool
	// Timeout bounds each request
	Timeout time.Duration
	// Backoff are the waits between retries on HTTP 429
	Backoff []time.Duration
}

// Failure is a link that could not be validated
type Failure struct {
	Link   string
	Status int
	Err    error
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %v", f.Link, f.Err)
}

// Report is the outcome of a check
type Report struct {
	// Checked is the number of distinct links checked
	Checked int
	// Failures are the broken links, ordered by link
	Failures []Failure
}

// OK reports whether every link was valid
func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

type task struct {
	link string
}

// Check validates links. Duplicates (ignoring fragment and trailing
// slash) are checked once. With FailFast the check stops at the first
// broken link and links still in flight are not reported.
// The returned error is set only when the check itself could not complete,
// e.g. on context cancellation; broken links are listed in the Report.
func (c *Checker) Check(ctx context.Context, links []string) (*Report, error) {
	var (
		seen     = map[string]struct{}{}
		tasks    []interface{}
		failures []Failure
		mux      sync.Mutex
	)
	for _, l := range links {
		key := unify(l)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		tasks = append(tasks, &task{link: l})
	}

	workers := c.Workers
	if workers < 1 {
		workers = 1
	}
	job := &jobs.Job{
		MinWorkers: 1,
		MaxWorkers: workers,
		FailFast:   c.FailFast,
		Worker: jobs.WorkerFunc(func(ctx context.Context, t interface{}) *jobs.WorkerError {
			link := t.(*task).link
			err := c.validate(ctx, link)
			if err == nil {
				return nil
			}
			// links cut short by a cancelled check are not judged
			if ctx.Err() != nil {
				return jobs.NewWorkerError(ctx.Err(), 0)
			}
			mux.Lock()
			failures = append(failures, Failure{Link: link, Status: err.Code(), Err: err.Unwrap()})
			mux.Unlock()
			return err
		}),
	}
	klog.V(2).Infof("checking %d links with %d workers", len(tasks), workers)
	werr := job.Dispatch(ctx, tasks)

	mux.Lock()
	report := &Report{Checked: len(tasks), Failures: append([]Failure(nil), failures...)}
	mux.Unlock()
	sort.Slice(report.Failures, func(i, j int) bool { return report.Failures[i].Link < report.Failures[j].Link })
	if ctx.Err() != nil {
		return report, ctx.Err()
	}
	if werr != nil {
		klog.V(4).Infof("link check finished with errors: %v", werr)
	}
	return report, nil
}

func (c *Checker) validate(ctx context.Context, link string) *jobs.WorkerError {
	u, err := url.Parse(link)
	if err != nil {
		return jobs.NewWorkerError(fmt.Errorf("error when parsing link: %w", err), 0)
	}
	host := u.Hostname()
	if !c.CheckLocal && (host == "localhost" || host == "127.0.0.1") {
		return nil
	}
	if slices.Contains(c.HostsToReport, u.Host) {
		return jobs.NewWorkerError(fmt.Errorf("link with host to report %s", u.Host), 0)
	}
	resp, err := c.do(ctx, http.MethodHead, link)
	if err != nil {
		return jobs.NewWorkerError(err, 0)
	}
	if failed(resp.StatusCode) {
		// some hosts reject HEAD, retry with GET
		klog.V(4).Infof("HEAD %s returned %d, retrying with GET", link, resp.StatusCode)
		if resp, err = c.do(ctx, http.MethodGet, link); err != nil {
			return jobs.NewWorkerError(err, 0)
		}
		if failed(resp.StatusCode) {
			return jobs.NewWorkerError(fmt.Errorf("HTTP Status %s", resp.Status), resp.StatusCode)
		}
	}
	return nil
}

// failed treats authorization errors as valid links to private resources
func failed(status int) bool {
	return status >= 400 && status != http.StatusForbidden && status != http.StatusUnauthorized
}

// do performs the request, retrying while the host answers 429
func (c *Checker) do(ctx context.Context, method, link string) (*http.Response, error) {
	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	backoff := c.Backoff
	if backoff == nil {
		backoff = DefaultBackoff
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	for attempt := 0; ; attempt++ {
		resp, err := func() (*http.Response, error) {
			reqCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			req, err := http.NewRequestWithContext(reqCtx, method, link, nil)
			if err != nil {
				return nil, fmt.Errorf("failed to prepare %s validation request: %w", method, err)
			}
			resp, err := client.Do(req)
			if err != nil {
				return nil, err
			}
			resp.Body.Close()
			return resp, nil
		}()
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusTooManyRequests || attempt >= len(backoff) {
			return resp, nil
		}
		sleep := backoff[attempt]
		if sleep > 0 {
			sleep += time.Duration(rand.Int63n(int64(sleep)/10 + 1))
		}
		if after, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && after >= 0 && time.Duration(after)*time.Second <= maxRetryAfter {
			sleep = time.Duration(after) * time.Second
		}
		klog.Warningf("%s %s: too many requests, retrying in %s", method, link, sleep)
		select {
		case <-time.After(sleep):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// unify drops fragment, user info and trailing slash
func unify(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return link
	}
	key := &url.URL{Scheme: u.Scheme, Host: u.Host, Path: strings.TrimSuffix(u.Path, "/"), RawQuery: u.RawQuery}
	return key.String()
}
