// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"

	"github.com/SAP/go-nwrfc/rfc/capi"
)

// integer field ranges.
const (
	minInt1 = 0
	maxInt1 = math.MaxUint8
	minInt2 = math.MinInt16
	maxInt2 = math.MaxInt16
	minInt4 = math.MinInt32
	maxInt4 = math.MaxInt32
)

var (
	stringReflectType = reflect.TypeOf("")
	bytesReflectType  = reflect.TypeOf([]byte(nil))
	ratReflectType    = reflect.TypeOf(big.Rat{})
)

// ErrUint64OutOfRange means that a uint64 exceeds the size of a int64.
var ErrUint64OutOfRange = errors.New("uint64 values with high bit set are not supported")

// ErrIntegerOutOfRange means that an integer exceeds the range of the rfc integer field.
var ErrIntegerOutOfRange = errors.New("integer out of range error")

// A ConvertError is returned by conversion methods if a go datatype to rfc datatype conversion fails.
type ConvertError struct {
	err error
	tc  capi.TypeCode
	v   any
}

func (e *ConvertError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("unsupported %[1]s conversion: %[2]T %[2]v", e.tc, e.v)
	}
	return fmt.Sprintf("unsupported %[1]s conversion: %[2]T %[2]v - %[3]s", e.tc, e.v, e.err)
}

// Unwrap returns the nested error.
func (e *ConvertError) Unwrap() error { return e.err }
func newConvertError(tc capi.TypeCode, v any, err error) *ConvertError {
	return &ConvertError{tc: tc, v: v, err: err}
}

func convertInteger(tc capi.TypeCode, v any, min, max int64) (int64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i64 := rv.Int()
		if i64 > max || i64 < min {
			return 0, newConvertError(tc, v, ErrIntegerOutOfRange)
		}
		return i64, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u64 := rv.Uint()
		if u64 >= 1<<63 {
			return 0, newConvertError(tc, v, ErrUint64OutOfRange)
		}
		if int64(u64) > max || int64(u64) < min {
			return 0, newConvertError(tc, v, ErrIntegerOutOfRange)
		}
		return int64(u64), nil
	case reflect.Float32, reflect.Float64:
		f64 := rv.Float()
		i64 := int64(f64)
		if f64 != float64(i64) { // should work for overflow, NaN, +-INF as well
			return 0, newConvertError(tc, v, nil)
		}
		if i64 > max || i64 < min {
			return 0, newConvertError(tc, v, ErrIntegerOutOfRange)
		}
		return i64, nil
	case reflect.String:
		i64, err := strconv.ParseInt(rv.String(), 10, 64)
		if err != nil {
			return 0, newConvertError(tc, v, err)
		}
		if i64 > max || i64 < min {
			return 0, newConvertError(tc, v, ErrIntegerOutOfRange)
		}
		return i64, nil
	case reflect.Ptr:
		// indirect pointers
		if rv.IsNil() {
			return 0, newConvertError(tc, v, nil)
		}
		return convertInteger(tc, rv.Elem().Interface(), min, max)
	}
	return 0, newConvertError(tc, v, nil)
}

func convertFloat(tc capi.TypeCode, v any) (float64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.String:
		f64, err := strconv.ParseFloat(rv.String(), 64)
		if err != nil {
			return 0, newConvertError(tc, v, err)
		}
		return f64, nil
	case reflect.Ptr:
		// indirect pointers
		if rv.IsNil() {
			return 0, newConvertError(tc, v, nil)
		}
		return convertFloat(tc, rv.Elem().Interface())
	}
	return 0, newConvertError(tc, v, nil)
}

func convertString(tc capi.TypeCode, v any) (string, error) {
	if v == nil { // rfc fields do not support NULL
		return "", newConvertError(tc, v, nil)
	}
	if v, ok := v.(string); ok {
		return v, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Slice:
		// []byte, []rune - but no numeric to rune string conversion
		if rv.Type().ConvertibleTo(stringReflectType) {
			return rv.Convert(stringReflectType).String(), nil
		}
	case reflect.Ptr:
		// indirect pointers
		if rv.IsNil() {
			return "", newConvertError(tc, v, nil)
		}
		return convertString(tc, rv.Elem().Interface())
	}
	return "", newConvertError(tc, v, nil)
}

func convertBytes(tc capi.TypeCode, v any) ([]byte, error) {
	if v == nil { // rfc fields do not support NULL
		return nil, newConvertError(tc, v, nil)
	}
	switch v := v.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return []byte(rv.String()), nil
	case reflect.Slice:
		if rv.Type() == bytesReflectType {
			return rv.Bytes(), nil
		}
	case reflect.Ptr:
		// indirect pointers
		if rv.IsNil() {
			return nil, newConvertError(tc, v, nil)
		}
		return convertBytes(tc, rv.Elem().Interface())
	}
	if rv.Type().ConvertibleTo(bytesReflectType) {
		return rv.Convert(bytesReflectType).Bytes(), nil
	}
	return nil, newConvertError(tc, v, nil)
}

func convertDecimal(tc capi.TypeCode, v any) (*big.Rat, error) {
	if v == nil { // rfc fields do not support NULL
		return nil, newConvertError(tc, v, nil)
	}
	if r, ok := v.(*big.Rat); ok && r != nil {
		return r, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return new(big.Rat).SetInt64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u64 := rv.Uint()
		if u64 >= 1<<63 {
			return nil, newConvertError(tc, v, ErrUint64OutOfRange)
		}
		return new(big.Rat).SetInt64(int64(u64)), nil
	case reflect.Float32, reflect.Float64:
		r := new(big.Rat).SetFloat64(rv.Float())
		if r == nil { // NaN, +-INF
			return nil, newConvertError(tc, v, nil)
		}
		return r, nil
	case reflect.String:
		r, ok := new(big.Rat).SetString(rv.String())
		if !ok {
			return nil, newConvertError(tc, v, nil)
		}
		return r, nil
	case reflect.Ptr:
		// indirect pointers
		if rv.IsNil() {
			return nil, newConvertError(tc, v, nil)
		}
		return convertDecimal(tc, rv.Elem().Interface())
	}
	if rv.Type().ConvertibleTo(ratReflectType) {
		r := rv.Convert(ratReflectType).Interface().(big.Rat)
		return &r, nil
	}
	return nil, newConvertError(tc, v, nil)
}

func convertStructure(tc capi.TypeCode, v any) (map[string]any, error) {
	if v, ok := v.(map[string]any); ok {
		return v, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, newConvertError(tc, v, nil)
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return m, nil
	case reflect.Ptr:
		// indirect pointers
		if rv.IsNil() {
			return nil, newConvertError(tc, v, nil)
		}
		return convertStructure(tc, rv.Elem().Interface())
	}
	return nil, newConvertError(tc, v, nil)
}

func convertTable(tc capi.TypeCode, v any) ([]any, error) {
	switch v := v.(type) {
	case []any:
		return v, nil
	case []map[string]any:
		rows := make([]any, len(v))
		for i, row := range v {
			rows[i] = row
		}
		return rows, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type() == bytesReflectType {
			return nil, newConvertError(tc, v, nil)
		}
		rows := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			rows[i] = rv.Index(i).Interface()
		}
		return rows, nil
	case reflect.Ptr:
		// indirect pointers
		if rv.IsNil() {
			return nil, newConvertError(tc, v, nil)
		}
		return convertTable(tc, rv.Elem().Interface())
	}
	return nil, newConvertError(tc, v, nil)
}
