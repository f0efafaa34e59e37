// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

// Package collectors provides prometheus collectors for binding and
// connector statistics.
package collectors

import (
	"fmt"
	"strings"

	"github.com/SAP/go-nwrfc/rfc"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "go_nwrfc"

type collector struct {
	fn func() *rfc.Stats

	openConnections *prometheus.Desc
	functionLookups *prometheus.Desc
	readBytes       *prometheus.Desc
	writtenBytes    *prometheus.Desc
	callTimes       *prometheus.Desc
}

func newCollector(fn func() *rfc.Stats, subsystem string, labels prometheus.Labels) prometheus.Collector {
	// fqName: namespace, subsystem, name
	fqName := func(name string) string { return strings.Join([]string{namespace, subsystem, name}, "_") }
	return &collector{
		fn: fn,
		openConnections: prometheus.NewDesc(
			fqName("open_connections"),
			fmt.Sprintf("The number of established %s connections.", subsystem),
			nil,
			labels,
		),
		functionLookups: prometheus.NewDesc(
			fqName("function_lookups"),
			fmt.Sprintf("The total number of looked up %s function modules.", subsystem),
			nil,
			labels,
		),
		readBytes: prometheus.NewDesc(
			fqName("bytes_read"),
			fmt.Sprintf("The total marshalled bytes received from the %s capability.", subsystem),
			nil,
			labels,
		),
		writtenBytes: prometheus.NewDesc(
			fqName("bytes_written"),
			fmt.Sprintf("The total marshalled bytes handed to the %s capability.", subsystem),
			nil,
			labels,
		),
		callTimes: prometheus.NewDesc(
			fqName("call_time"),
			fmt.Sprintf("The time spent measured in milliseconds for the different %s call categories.", subsystem),
			[]string{"call"},
			labels,
		),
	}
}

// Describe implements Collector.
func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.openConnections
	ch <- c.functionLookups
	ch <- c.readBytes
	ch <- c.writtenBytes
	ch <- c.callTimes
}

func buckets(stat *rfc.DurationStat) map[float64]uint64 {
	rv := make(map[float64]uint64, len(stat.Buckets))
	for k, v := range stat.Buckets {
		rv[float64(k)] = v
	}
	return rv
}

// Collect implements Collector.
func (c *collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.fn()
	ch <- prometheus.MustNewConstMetric(c.openConnections, prometheus.GaugeValue, float64(stats.OpenConnections))
	ch <- prometheus.MustNewConstMetric(c.functionLookups, prometheus.CounterValue, float64(stats.FunctionLookups))
	ch <- prometheus.MustNewConstMetric(c.readBytes, prometheus.CounterValue, float64(stats.BytesRead))
	ch <- prometheus.MustNewConstMetric(c.writtenBytes, prometheus.CounterValue, float64(stats.BytesWritten))
	for i, stat := range stats.CallDurations {
		ch <- prometheus.MustNewConstHistogram(c.callTimes, stat.Count, float64(stat.Sum), buckets(stat), rfc.StatsCallTexts[i])
	}
}

// NewStatsCollector returns a collector that exports the binding
// statistics aggregated over all connectors.
func NewStatsCollector() prometheus.Collector {
	return newCollector(rfc.StdStats, "rfc", prometheus.Labels{})
}

// NewConnectorStatsCollector returns a collector that exports the
// statistics of one connector.
func NewConnectorStatsCollector(c *rfc.Connector, name string) prometheus.Collector {
	return newCollector(c.Stats, "connector", prometheus.Labels{"connector_name": name})
}
