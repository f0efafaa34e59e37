// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package capi

import "fmt"

// TypeCode identifies the wire type of a parameter or structure field
// transferred to or from the ABAP system. The values match the RFCTYPE
// constants of the NW RFC SDK.
type TypeCode byte

// TypeCode constants.
const (
	TcChar      TypeCode = 0  // fixed length, blank padded text
	TcDate      TypeCode = 1  // date, wire format YYYYMMDD
	TcBCD       TypeCode = 2  // packed decimal
	TcTime      TypeCode = 3  // time, wire format HHMMSS
	TcByte      TypeCode = 4  // fixed length raw bytes
	TcTable     TypeCode = 5  // table of structure rows
	TcNum       TypeCode = 6  // fixed length, digits only
	TcFloat     TypeCode = 7  // IEEE 754 double
	TcInt       TypeCode = 8  // 4 byte integer
	TcInt2      TypeCode = 9  // 2 byte integer
	TcInt1      TypeCode = 10 // 1 byte unsigned integer
	TcNull      TypeCode = 14
	TcStructure TypeCode = 17 // ABAP structure
	TcDecF16    TypeCode = 23 // decimal floating point, 8 bytes (not supported)
	TcDecF34    TypeCode = 24 // decimal floating point, 16 bytes (not supported)
	TcXMLData   TypeCode = 28
	TcString    TypeCode = 29 // variable length text
	TcXString   TypeCode = 30 // variable length raw bytes
)

var typeCodeStrs = map[TypeCode]string{
	TcChar:      "CHAR",
	TcDate:      "DATE",
	TcBCD:       "BCD",
	TcTime:      "TIME",
	TcByte:      "BYTE",
	TcTable:     "TABLE",
	TcNum:       "NUM",
	TcFloat:     "FLOAT",
	TcInt:       "INT",
	TcInt2:      "INT2",
	TcInt1:      "INT1",
	TcNull:      "NULL",
	TcStructure: "STRUCTURE",
	TcDecF16:    "DECF16",
	TcDecF34:    "DECF34",
	TcXMLData:   "XMLDATA",
	TcString:    "STRING",
	TcXString:   "XSTRING",
}

func (tc TypeCode) String() string {
	if s, ok := typeCodeStrs[tc]; ok {
		return s
	}
	return fmt.Sprintf("TypeCode(%d)", byte(tc))
}

// IsFixedText returns true if the TypeCode represents a fixed width text
// type padded to its declared length, false otherwise.
func (tc TypeCode) IsFixedText() bool {
	return tc == TcChar || tc == TcNum || tc == TcDate || tc == TcTime
}

// IsVariableLength returns true if the wire size of the TypeCode depends on
// the value, false otherwise.
func (tc TypeCode) IsVariableLength() bool {
	return tc == TcString || tc == TcXString || tc == TcTable
}

// IsIntegerType returns true for the native integer TypeCodes.
func (tc TypeCode) IsIntegerType() bool {
	return tc == TcInt || tc == TcInt2 || tc == TcInt1
}

// IsCompound returns true for STRUCTURE and TABLE.
func (tc TypeCode) IsCompound() bool {
	return tc == TcStructure || tc == TcTable
}
