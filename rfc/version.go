// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package rfc

import (
	"fmt"
	"strconv"
	"strings"
)

// BindingVersion is the version of the go-nwrfc bindings.
const BindingVersion = "1.2.0"

const (
	versionMajor = iota
	versionMinor
	versionPatch
	versionCount
)

// A SDKVersion holds the semantic version of the native capability,
// format MAJOR.MINOR.PATCH (example: 7.50.12).
type SDKVersion [versionCount]uint64

// ParseSDKVersion parses a semantic version string field.
func ParseSDKVersion(s string) SDKVersion {
	var v SDKVersion
	parts := strings.SplitN(s, ".", versionCount)
	for i := range parts {
		v[i], _ = strconv.ParseUint(parts[i], 10, 64)
	}
	return v
}

func (v SDKVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v[versionMajor], v[versionMinor], v[versionPatch])
}

// Major returns the major field of a SDKVersion.
func (v SDKVersion) Major() uint64 { return v[versionMajor] }

// Minor returns the minor field of a SDKVersion.
func (v SDKVersion) Minor() uint64 { return v[versionMinor] }

// Patch returns the patch field of a SDKVersion.
func (v SDKVersion) Patch() uint64 { return v[versionPatch] }

// IsEmpty returns true if all version fields are zero.
func (v SDKVersion) IsEmpty() bool {
	for _, e := range v {
		if e != 0 {
			return false
		}
	}
	return true
}

// Compare returns an integer comparing two versions, -1 if v < v2,
// 0 if v == v2, +1 if v > v2.
func (v SDKVersion) Compare(v2 SDKVersion) int {
	for i := 0; i < int(versionCount); i++ {
		switch {
		case v[i] < v2[i]:
			return -1
		case v[i] > v2[i]:
			return 1
		}
	}
	return 0
}
