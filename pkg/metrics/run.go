// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	linksChecked = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "links_checked",
		Help:      "Number of distinct links checked by the last generation.",
	})

	linksBroken = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "links_broken",
		Help:      "Number of broken links found by the last generation.",
	})

	generations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "generations_total",
		Help:      "A counter of site config generations by result.",
	},
		[]string{"result"},
	)

	lastGeneration = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "last_generation_timestamp_seconds",
		Help:      "Unix time of the last successful generation.",
	})
)

// RegisterRunMetrics registers the generation metrics in registry,
// the default registry when nil
func RegisterRunMetrics(registry prometheus.Registerer) {
	linksChecked.Set(0)
	linksBroken.Set(0)
	generations.Reset()
	lastGeneration.Set(0)
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	registry.MustRegister(linksChecked, linksBroken, generations, lastGeneration)
}

// ObserveLinkCheck records the outcome of a link check
func ObserveLinkCheck(checked, broken int) {
	linksChecked.Set(float64(checked))
	linksBroken.Set(float64(broken))
}

// ObserveGeneration records the outcome of a generation finished at t
func ObserveGeneration(t time.Time, err error) {
	if err != nil {
		generations.WithLabelValues("failure").Inc()
		return
	}
	generations.WithLabelValues("success").Inc()
	lastGeneration.Set(float64(t.Unix()))
}

// WriteTextfile writes the metrics gathered by g to path in the text
// exposition format, atomically
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
