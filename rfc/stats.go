// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package rfc

import (
	"fmt"
	"strings"
)

// StatsNumCall is the number of call duration categories.
const StatsNumCall = 4

// StatsCallTexts are the texts used for the call duration categories.
var StatsCallTexts = [StatsNumCall]string{"open", "describe", "call", "ping"}

// StatsDurationBuckets are the used duration buckets in milliseconds.
var StatsDurationBuckets = []uint64{1, 10, 100, 1000, 10000, 100000}

// DurationStat represents a duration statistic.
type DurationStat struct {
	Count   uint64
	Sum     uint64            // Values in milliseconds.
	Buckets map[uint64]uint64 // map[<duration in ms>]<counter>.
}

func (s *DurationStat) String() string {
	return fmt.Sprintf("count %d sum %d values %v", s.Count, s.Sum, s.Buckets)
}

// Stats contains binding statistics.
type Stats struct {
	// Gauges
	OpenConnections int // The number of established connections.
	// Counter
	FunctionLookups uint64 // Total function module descriptions looked up.
	BytesRead       uint64 // Total marshalled bytes received from the capability.
	BytesWritten    uint64 // Total marshalled bytes handed to the capability.
	//
	CallDurations []*DurationStat // Call duration statistics.
}

func (s Stats) String() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("\nopenConnections %d", s.OpenConnections))
	sb.WriteString(fmt.Sprintf("\nfunctionLookups %d", s.FunctionLookups))
	sb.WriteString(fmt.Sprintf("\nbytesRead       %d", s.BytesRead))
	sb.WriteString(fmt.Sprintf("\nbytesWritten    %d", s.BytesWritten))
	sb.WriteString("\ncallDurations")
	for i, durationStat := range s.CallDurations {
		sb.WriteString(fmt.Sprintf("\n  %-8s %s", StatsCallTexts[i], durationStat.String()))
	}
	return sb.String()
}
