// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package rfctest

import (
	"fmt"
	"maps"
	"strings"

	"github.com/SAP/go-nwrfc/rfc/capi"
)

func field(name string, tc capi.TypeCode, length, decimals int, fields ...*capi.FieldDescription) *capi.FieldDescription {
	return &capi.FieldDescription{Name: name, TypeCode: tc, Length: length, Decimals: decimals, Fields: fields}
}

func parameter(name string, direction capi.Direction, tc capi.TypeCode, length, decimals int, fields ...*capi.FieldDescription) *capi.ParameterDescription {
	return &capi.ParameterDescription{
		FieldDescription: capi.FieldDescription{Name: name, TypeCode: tc, Length: length, Decimals: decimals, Fields: fields},
		Direction:        direction,
	}
}

// rfcTestFields is the field layout of the RFCTEST dictionary structure
// used by STFC_STRUCTURE.
func rfcTestFields() []*capi.FieldDescription {
	return []*capi.FieldDescription{
		field("RFCFLOAT", capi.TcFloat, 0, 0),
		field("RFCCHAR1", capi.TcChar, 1, 0),
		field("RFCINT2", capi.TcInt2, 0, 0),
		field("RFCINT1", capi.TcInt1, 0, 0),
		field("RFCCHAR4", capi.TcChar, 4, 0),
		field("RFCINT4", capi.TcInt, 0, 0),
		field("RFCHEX3", capi.TcByte, 3, 0),
		field("RFCCHAR2", capi.TcChar, 2, 0),
		field("RFCTIME", capi.TcTime, 6, 0),
		field("RFCDATE", capi.TcDate, 8, 0),
		field("RFCDATA1", capi.TcChar, 50, 0),
		field("RFCDATA2", capi.TcChar, 50, 0),
	}
}

func registerStdModules(d *Driver) {
	d.Register(
		&capi.FunctionDescription{Name: "RFC_PING"},
		func(inputs map[string]any) (map[string]any, error) {
			return nil, nil
		},
	)

	d.Register(
		&capi.FunctionDescription{
			Name: "STFC_CONNECTION",
			Parameters: []*capi.ParameterDescription{
				parameter("REQUTEXT", capi.DirImport, capi.TcChar, 255, 0),
				parameter("ECHOTEXT", capi.DirExport, capi.TcChar, 255, 0),
				parameter("RESPTEXT", capi.DirExport, capi.TcChar, 255, 0),
			},
		},
		func(inputs map[string]any) (map[string]any, error) {
			requtext, _ := inputs["REQUTEXT"].(string)
			return map[string]any{
				"ECHOTEXT": requtext,
				"RESPTEXT": fmt.Sprintf("go-nwrfc test backend, %d characters received", len(strings.TrimRight(requtext, " "))),
			}, nil
		},
	)

	d.Register(
		&capi.FunctionDescription{
			Name: "STFC_CHANGING",
			Parameters: []*capi.ParameterDescription{
				parameter("START_VALUE", capi.DirImport, capi.TcInt, 0, 0),
				parameter("COUNTER", capi.DirChanging, capi.TcInt, 0, 0),
				parameter("RESULT", capi.DirExport, capi.TcInt, 0, 0),
			},
		},
		func(inputs map[string]any) (map[string]any, error) {
			startValue, _ := inputs["START_VALUE"].(int64)
			counter, _ := inputs["COUNTER"].(int64)
			return map[string]any{
				"RESULT":  startValue + counter,
				"COUNTER": counter + 1,
			}, nil
		},
	)

	d.Register(
		&capi.FunctionDescription{
			Name: "STFC_STRUCTURE",
			Parameters: []*capi.ParameterDescription{
				parameter("IMPORTSTRUCT", capi.DirImport, capi.TcStructure, 0, 0, rfcTestFields()...),
				parameter("ECHOSTRUCT", capi.DirExport, capi.TcStructure, 0, 0, rfcTestFields()...),
				parameter("RESPTEXT", capi.DirExport, capi.TcChar, 255, 0),
				parameter("RFCTABLE", capi.DirTables, capi.TcTable, 0, 0, rfcTestFields()...),
			},
		},
		func(inputs map[string]any) (map[string]any, error) {
			outputs := map[string]any{}
			table, _ := inputs["RFCTABLE"].([]map[string]any)
			if s, ok := inputs["IMPORTSTRUCT"].(map[string]any); ok {
				outputs["ECHOSTRUCT"] = maps.Clone(s)
				row := maps.Clone(s)
				if i, ok := row["RFCINT1"].(int64); ok {
					row["RFCINT1"] = i + 1
				}
				if i, ok := row["RFCINT2"].(int64); ok {
					row["RFCINT2"] = i + 1
				}
				if i, ok := row["RFCINT4"].(int64); ok {
					row["RFCINT4"] = i + 1
				}
				table = append(table, row)
				outputs["RESPTEXT"] = "go-nwrfc test backend: structure received"
			}
			outputs["RFCTABLE"] = table
			return outputs, nil
		},
	)
}
