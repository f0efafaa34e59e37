// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package capi

import "fmt"

// TraceLevel is the verbosity of the native capability trace.
type TraceLevel int

// TraceLevel constants, ordered by verbosity.
const (
	TraceOff TraceLevel = iota
	TraceBrief
	TraceVerbose
	TraceFull
)

var traceLevelStrs = []string{"off", "brief", "verbose", "full"}

func (l TraceLevel) String() string {
	if l < TraceOff || l > TraceFull {
		return fmt.Sprintf("TraceLevel(%d)", int(l))
	}
	return traceLevelStrs[l]
}

// ParseTraceLevel converts the textual or numeric representation of a trace
// level ("off", "2", ...) into a TraceLevel.
func ParseTraceLevel(s string) (TraceLevel, error) {
	for i, t := range traceLevelStrs {
		if s == t {
			return TraceLevel(i), nil
		}
	}
	switch s {
	case "0", "1", "2", "3":
		return TraceLevel(s[0] - '0'), nil
	}
	return TraceOff, fmt.Errorf("invalid trace level %q", s)
}
