// Copyright 2021 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metric

import (
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds every metric created through this package. Board bring-up
// runs before any HTTP server exists, so the registry is dumped to a
// textfile once instead of being scraped.
var Registry = prometheus.NewRegistry()

var (
	mu       sync.Mutex
	counters = map[string]*prometheus.CounterVec{}
	gauges   = map[string]*prometheus.GaugeVec{}
)

// MetricOpts contains naming pieces of the exposed metric
type MetricOpts struct {
	Namespace string
	Subsystem string
	Name      string
	Help      string
}

// CounterVec creates and registers a counter vector, or returns the one
// already registered under the same name
func CounterVec(opts MetricOpts, labels ...string) *prometheus.CounterVec {
	mu.Lock()
	defer mu.Unlock()
	name := optsToString(opts)
	if c, ok := counters[name]; ok {
		return c
	}
	c := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: opts.Namespace,
		Subsystem: opts.Subsystem,
		Name:      opts.Name,
		Help:      help(opts),
	}, labels)
	Registry.MustRegister(c)
	counters[name] = c
	return c
}

// GaugeVec creates and registers a gauge vector, or returns the one already
// registered under the same name
func GaugeVec(opts MetricOpts, labels ...string) *prometheus.GaugeVec {
	mu.Lock()
	defer mu.Unlock()
	name := optsToString(opts)
	if g, ok := gauges[name]; ok {
		return g
	}
	g := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: opts.Namespace,
		Subsystem: opts.Subsystem,
		Name:      opts.Name,
		Help:      help(opts),
	}, labels)
	Registry.MustRegister(g)
	gauges[name] = g
	return g
}

// WriteTextfile dumps the registry in the text exposition format so a
// textfile collector can pick it up later
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}

func help(opts MetricOpts) string {
	if opts.Help != "" {
		return opts.Help
	}
	return strings.ReplaceAll(optsToString(opts), "_", " ")
}

func optsToString(opts MetricOpts) string {
	if opts.Name == "" {
		return ""
	}
	switch {
	case opts.Namespace != "" && opts.Subsystem != "":
		return strings.Join([]string{opts.Namespace, opts.Subsystem, opts.Name}, "_")
	case opts.Namespace != "":
		return strings.Join([]string{opts.Namespace, opts.Name}, "_")
	case opts.Subsystem != "":
		return strings.Join([]string{opts.Subsystem, opts.Name}, "_")
	}
	return opts.Name
}
