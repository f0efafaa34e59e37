// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package rfc

import (
	"sort"
	"sync"
	"sync/atomic"
)

// constants for call duration statistics.
const (
	statOpen = iota
	statDescribe
	statCall
	statPing
)

const (
	counterFunctionLookup = iota
	counterBytesRead
	counterBytesWritten
	numCounter
)

const (
	gaugeConn = iota
	numGauge
)

type counter struct {
	n atomic.Uint64
}

func (c *counter) add(n uint64)  { c.n.Add(n) }
func (c *counter) value() uint64 { return c.n.Load() }

type gauge struct {
	v atomic.Int64
}

func (g *gauge) add(n int64)  { g.v.Add(n) }
func (g *gauge) value() int64 { return g.v.Load() }

type durationHistogram struct {
	mu              sync.Mutex
	count           uint64
	sum             uint64
	durationBuckets []uint64
	buckets         []uint64
	underflow       uint64 // in case of negative duration (will add to zero bucket)
}

func newDurationHistogram(durationBuckets []uint64) *durationHistogram {
	numBuckets := len(durationBuckets)
	if numBuckets == 0 {
		panic("number of duration buckets cannot be zero")
	}
	clone := make([]uint64, numBuckets)
	copy(clone, durationBuckets)
	return &durationHistogram{durationBuckets: clone, buckets: make([]uint64, numBuckets)}
}

func (h *durationHistogram) stats() *DurationStat {
	h.mu.Lock()
	rv := &DurationStat{
		Count:   h.count,
		Sum:     h.sum,
		Buckets: make(map[uint64]uint64, len(h.buckets)),
	}
	for i, durationBucket := range h.durationBuckets {
		rv.Buckets[durationBucket] = h.buckets[i]
	}
	h.mu.Unlock()
	return rv
}

func (h *durationHistogram) add(ms int64) {
	h.mu.Lock()
	h.count++
	if ms < 0 {
		h.underflow++
		h.mu.Unlock()
		return
	}
	h.sum += uint64(ms)
	i := sort.Search(len(h.durationBuckets), func(i int) bool { return h.durationBuckets[i] >= uint64(ms) })
	if i < len(h.durationBuckets) {
		h.buckets[i]++
	}
	h.mu.Unlock()
}

type metrics struct {
	parent             *metrics
	counters           []*counter
	gauges             []*gauge
	durationHistograms []*durationHistogram
}

func newMetrics(parent *metrics) *metrics {
	rv := &metrics{
		parent:             parent,
		counters:           make([]*counter, numCounter),
		gauges:             make([]*gauge, numGauge),
		durationHistograms: make([]*durationHistogram, StatsNumCall),
	}
	for i := 0; i < int(numCounter); i++ {
		rv.counters[i] = &counter{}
	}
	for i := 0; i < int(numGauge); i++ {
		rv.gauges[i] = &gauge{}
	}
	for i := 0; i < StatsNumCall; i++ {
		rv.durationHistograms[i] = newDurationHistogram(StatsDurationBuckets)
	}
	return rv
}

func (m *metrics) addCounterValue(kind int, v uint64) {
	m.counters[kind].add(v)
	if m.parent != nil {
		m.parent.counters[kind].add(v)
	}
}

func (m *metrics) addGaugeValue(kind int, v int64) {
	m.gauges[kind].add(v)
	if m.parent != nil {
		m.parent.gauges[kind].add(v)
	}
}

func (m *metrics) addDurationHistogramValue(kind int, ms int64) {
	m.durationHistograms[kind].add(ms)
	if m.parent != nil {
		m.parent.durationHistograms[kind].add(ms)
	}
}

func (m *metrics) stats() *Stats {
	callDurations := make([]*DurationStat, StatsNumCall)
	for i := 0; i < StatsNumCall; i++ {
		callDurations[i] = m.durationHistograms[i].stats()
	}
	return &Stats{
		OpenConnections: int(m.gauges[gaugeConn].value()),
		FunctionLookups: m.counters[counterFunctionLookup].value(),
		BytesRead:       m.counters[counterBytesRead].value(),
		BytesWritten:    m.counters[counterBytesWritten].value(),
		CallDurations:   callDurations,
	}
}

// package global metrics, aggregating over all connectors.
var stdMetrics = newMetrics(nil)

// StdStats returns the binding statistics aggregated over all connectors.
func StdStats() *Stats { return stdMetrics.stats() }
