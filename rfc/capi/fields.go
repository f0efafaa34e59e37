// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package capi

import "fmt"

// Direction describes the transfer direction of a parameter. The values
// match the RFC_DIRECTION constants of the NW RFC SDK.
type Direction byte

// Direction constants.
const (
	DirImport   Direction = 0x01 // client to server only
	DirExport   Direction = 0x02 // server to client only
	DirChanging Direction = 0x03 // client to server, server may modify
	DirTables   Direction = 0x07 // table rows, server may modify
)

var directionStrs = map[Direction]string{
	DirImport:   "IMPORT",
	DirExport:   "EXPORT",
	DirChanging: "CHANGING",
	DirTables:   "TABLES",
}

func (d Direction) String() string {
	if s, ok := directionStrs[d]; ok {
		return s
	}
	return fmt.Sprintf("Direction(%d)", byte(d))
}

// IsInput returns true if a value is transferred from client to server.
func (d Direction) IsInput() bool {
	return d == DirImport || d == DirChanging || d == DirTables
}

// IsOutput returns true if a value is transferred from server to client.
func (d Direction) IsOutput() bool {
	return d == DirExport || d == DirChanging || d == DirTables
}

// A FieldDescription describes one field of a structure or table row.
type FieldDescription struct {
	// Name is the field name, case-sensitive as declared in the data
	// dictionary.
	Name string
	// TypeCode is the wire type of the field.
	TypeCode TypeCode
	// Length is the declared length: characters for fixed width text
	// types, bytes for BYTE and BCD. Zero for variable length types.
	Length int
	// Decimals is the number of fraction digits of a BCD field.
	Decimals int
	// Fields describes the row or structure layout of compound fields.
	Fields []*FieldDescription
}

func (f *FieldDescription) String() string {
	return fmt.Sprintf("name %s typeCode %s length %d decimals %d", f.Name, f.TypeCode, f.Length, f.Decimals)
}

// A ParameterDescription describes one parameter of a remote function
// module signature.
type ParameterDescription struct {
	FieldDescription
	// Direction is the transfer direction of the parameter.
	Direction Direction
	// Optional is true if the ABAP signature declares a default value.
	Optional bool
}

func (p *ParameterDescription) String() string {
	return fmt.Sprintf("%s direction %s optional %t", p.FieldDescription.String(), p.Direction, p.Optional)
}

// A FunctionDescription is the immutable signature of a remote function
// module as returned by Connection.Describe.
type FunctionDescription struct {
	// Name is the name of the function module.
	Name string
	// Parameters holds the parameter descriptions in signature order.
	Parameters []*ParameterDescription
}

// Parameter returns the description of the named parameter (case-sensitive
// exact match) or nil if the signature does not declare it.
func (d *FunctionDescription) Parameter(name string) *ParameterDescription {
	for _, p := range d.Parameters {
		if p.Name == name {
			return p
		}
	}
	return nil
}
