// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package encoding

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// The RFC protocol transfers text as SAP_UC, which is UTF-16 in little
// endian byte order without byte order mark.
var sapUC = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// NewTextEncoder returns a transformer converting UTF-8 to SAP_UC.
func NewTextEncoder() transform.Transformer { return sapUC.NewEncoder() }

// NewTextDecoder returns a transformer converting SAP_UC to UTF-8.
func NewTextDecoder() transform.Transformer { return sapUC.NewDecoder() }

// UnitSize is the size of one SAP_UC code unit in bytes.
const UnitSize = 2

// blankUnit is the SAP_UC encoding of the padding blank.
var blankUnit = [UnitSize]byte{0x20, 0x00}
