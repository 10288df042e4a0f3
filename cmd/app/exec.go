// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gavinbunney/docsite/cmd/configuration"
	"github.com/gavinbunney/docsite/pkg/git"
	"github.com/gavinbunney/docsite/pkg/linkcheck"
	"github.com/gavinbunney/docsite/pkg/metrics"
	"github.com/gavinbunney/docsite/pkg/siteconfig"
	"github.com/gavinbunney/docsite/pkg/util/httpclient"
	"github.com/gavinbunney/docsite/pkg/watch"
	"github.com/gavinbunney/docsite/pkg/writers"
	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

func exec(ctx context.Context, vip *viper.Viper, out io.Writer) error {
	o, err := newOptions(vip)
	if err != nil {
		return err
	}
	if o.DestinationPath == "" && !o.DryRun {
		return errors.New("required flag \"destination\" not set")
	}
	g := newGenerator(o, out)
	if o.MetricsTextfile != "" {
		g.withMetrics()
	}
	if err = g.generate(ctx); err != nil {
		return err
	}
	if !o.Watch {
		return nil
	}
	path, err := g.overridesPath()
	if err != nil {
		return err
	}
	klog.Infof("Watching %s", path)
	return watch.NewFileWatcher(path).Watch(ctx, func() error {
		klog.Infof("%s changed, regenerating", path)
		return g.generate(ctx)
	})
}

func newOptions(vip *viper.Viper) (*options, error) {
	o := &options{}
	if err := vip.Unmarshal(o); err != nil {
		return nil, fmt.Errorf("failed to read options: %w", err)
	}
	if o.Year < 0 {
		return nil, fmt.Errorf("invalid year %d", o.Year)
	}
	if _, err := siteconfig.ParseFormat(o.Format); err != nil {
		return nil, err
	}
	if o.GitHubOAuthToken == "" {
		o.GitHubOAuthToken = os.Getenv("GITHUB_TOKEN")
	}
	return o, nil
}

// generator runs the pipeline: load overrides, build the defaults, apply
// the overrides, validate, run the enabled checks, encode and write
type generator struct {
	options     *options
	loader      configuration.Loader
	out         io.Writer
	now         func() time.Time
	git         git.Git
	httpClient  httpclient.Client
	newVerifier verifierFactory
	registry    *prometheus.Registry
}

func newGenerator(o *options, out io.Writer) *generator {
	var loader configuration.Loader = &configuration.DefaultConfigurationLoader{}
	if o.OverridesPath != "" {
		loader = &configuration.FileLoader{Path: o.OverridesPath}
	}
	return &generator{
		options:     o,
		loader:      loader,
		out:         out,
		now:         time.Now,
		git:         git.NewGit(),
		newVerifier: newGitHubVerifier,
	}
}

// withMetrics meters the link check requests and records each generation
func (g *generator) withMetrics() {
	g.registry = prometheus.NewRegistry()
	metrics.RegisterClientMetrics(g.registry)
	metrics.RegisterRunMetrics(g.registry)
	g.httpClient = metrics.InstrumentClient(&http.Client{})
}

func (g *generator) year() int {
	if g.options.Year > 0 {
		return g.options.Year
	}
	return g.now().Year()
}

func (g *generator) overridesPath() (string, error) {
	if g.options.OverridesPath != "" {
		return g.options.OverridesPath, nil
	}
	return (&configuration.DefaultConfigurationLoader{}).Path()
}

func (g *generator) build() (siteconfig.Descriptor, error) {
	config, err := g.loader.Load()
	if err != nil {
		return siteconfig.Descriptor{}, err
	}
	year := g.year()
	d := config.Apply(siteconfig.New(year), year)
	if err = d.Validate(); err != nil {
		return siteconfig.Descriptor{}, fmt.Errorf("invalid site config: %w", err)
	}
	return d, nil
}

func (g *generator) check(ctx context.Context, d siteconfig.Descriptor) error {
	o := g.options
	var errs *multierror.Error
	if o.CheckLinks {
		checker := &linkcheck.Checker{
			Client:        g.httpClient,
			Workers:       o.LinkWorkers,
			FailFast:      o.FailFast,
			HostsToReport: o.HostsToReport,
		}
		report, err := checker.Check(ctx, d.Links())
		if err != nil {
			return err
		}
		klog.Infof("Checked %d links, %d broken", report.Checked, len(report.Failures))
		metrics.ObserveLinkCheck(report.Checked, len(report.Failures))
		for _, f := range report.Failures {
			errs = multierror.Append(errs, fmt.Errorf("broken link %s", f))
		}
		if o.FailFast && errs != nil {
			return errs
		}
	}
	if o.VerifyGitRemote != "" {
		remote, err := git.Origin(g.git, o.VerifyGitRemote)
		if err == nil {
			err = git.VerifyRemote(d, remote)
		}
		if err != nil {
			errs = multierror.Append(errs, err)
			if o.FailFast {
				return errs
			}
		}
	}
	if o.VerifyGitHub {
		v, err := g.newVerifier(ctx, o)
		if err == nil {
			err = v.Verify(ctx, d)
		}
		if err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}

func (g *generator) encode(d siteconfig.Descriptor) (siteconfig.Format, []byte, error) {
	format, err := siteconfig.ParseFormat(g.options.Format)
	if err != nil {
		return "", nil, err
	}
	blob, err := siteconfig.Encode(d, format)
	return format, blob, err
}

func (g *generator) print(d siteconfig.Descriptor) error {
	_, blob, err := g.encode(d)
	if err != nil {
		return err
	}
	_, err = g.out.Write(blob)
	return err
}

func (g *generator) write(d siteconfig.Descriptor) error {
	format, blob, err := g.encode(d)
	if err != nil {
		return err
	}
	if g.options.DryRun {
		dryRun := writers.NewDryRunWritersFactory(g.out)
		if err = dryRun.GetWriter(g.options.DestinationPath).Write(format.FileName(), "", blob); err != nil {
			return err
		}
		return dryRun.Flush()
	}
	w := &writers.FSWriter{Root: g.options.DestinationPath}
	return w.Write(format.FileName(), "", blob)
}

func (g *generator) generate(ctx context.Context) error {
	start := time.Now()
	err := g.run(ctx)
	if g.registry != nil {
		metrics.ObserveGeneration(g.now(), err)
		if werr := metrics.WriteTextfile(g.options.MetricsTextfile, g.registry); werr != nil {
			klog.Warningf("failed to write metrics to %s: %v", g.options.MetricsTextfile, werr)
		}
	}
	if err != nil {
		return err
	}
	klog.V(2).Infof("Generated site config in %s", time.Since(start))
	return nil
}

func (g *generator) run(ctx context.Context) error {
	d, err := g.build()
	if err != nil {
		return err
	}
	if err = g.check(ctx, d); err != nil {
		return err
	}
	return g.write(d)
}
