// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/SAP/go-nwrfc/internal/protocol/encoding"
	"github.com/SAP/go-nwrfc/rfc/capi"
)

// wire lengths of the date and time types in SAP_UC code units.
const (
	dateLength = 8 // YYYYMMDD
	timeLength = 6 // HHMMSS
)

// initial values accepted without calendar check.
const (
	minDate = "00000000"
	maxDate = "99999999"
	maxTime = "240000"
)

// maxPreallocRows limits the table row capacity allocated up front from a
// wire row count.
const maxPreallocRows = 1 << 10

var (
	errDigitsOnly    = errors.New("value must contain digits only")
	errMalformedDate = errors.New("malformed date (format YYYYMMDD)")
	errMalformedTime = errors.New("malformed time (format HHMMSS)")
)

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func validateDate(s string) error {
	if len(s) != dateLength || !isDigits(s) {
		return errMalformedDate
	}
	if s == minDate || s == maxDate {
		return nil
	}
	if _, err := time.Parse("20060102", s); err != nil {
		return errMalformedDate
	}
	return nil
}

func validateTime(s string) error {
	if len(s) != timeLength || !isDigits(s) {
		return errMalformedTime
	}
	if s == maxTime {
		return nil
	}
	if _, err := time.Parse("150405", s); err != nil {
		return errMalformedTime
	}
	return nil
}

var natOne = big.NewInt(1)

func exp10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// ratDigits returns the decimal digits of r scaled by decimals fraction
// digits, rounded half away from zero, plus the sign.
func ratDigits(r *big.Rat, decimals int) (digits []byte, neg bool, err error) {
	num := new(big.Int).Mul(r.Num(), exp10(decimals))
	q, rem := new(big.Int).QuoRem(num, r.Denom(), new(big.Int))
	// round half away from zero
	rem.Abs(rem).Lsh(rem, 1)
	if rem.Cmp(r.Denom()) >= 0 {
		if num.Sign() < 0 {
			q.Sub(q, natOne)
		} else {
			q.Add(q, natOne)
		}
	}
	neg = q.Sign() < 0
	s := new(big.Int).Abs(q).String()
	digits = make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		digits[i] = s[i] - '0'
	}
	return digits, neg, nil
}

// bcdFloat converts unpacked decimal digits with decimals fraction digits
// into a float64.
func bcdFloat(digits []byte, neg bool, decimals int) (float64, error) {
	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	if len(digits) <= decimals {
		sb.WriteString("0.")
		for i := 0; i < decimals-len(digits); i++ {
			sb.WriteByte('0')
		}
		for _, d := range digits {
			sb.WriteByte('0' + d)
		}
	} else {
		for i, d := range digits {
			if decimals > 0 && i == len(digits)-decimals {
				sb.WriteByte('.')
			}
			sb.WriteByte('0' + d)
		}
	}
	return strconv.ParseFloat(sb.String(), 64)
}

func encodeField(enc *encoding.Encoder, fd *capi.FieldDescription, v any) error {
	tc := fd.TypeCode
	switch tc {
	case capi.TcChar:
		s, err := convertString(tc, v)
		if err != nil {
			return err
		}
		return enc.UCFixed(s, fd.Length)
	case capi.TcNum:
		s, err := convertString(tc, v)
		if err != nil {
			return err
		}
		if !isDigits(s) {
			return newConvertError(tc, v, errDigitsOnly)
		}
		return enc.UCFixed(s, fd.Length)
	case capi.TcDate:
		s, err := convertString(tc, v)
		if err != nil {
			return err
		}
		if err := validateDate(s); err != nil {
			return newConvertError(tc, v, err)
		}
		return enc.UCFixed(s, dateLength)
	case capi.TcTime:
		s, err := convertString(tc, v)
		if err != nil {
			return err
		}
		if err := validateTime(s); err != nil {
			return newConvertError(tc, v, err)
		}
		return enc.UCFixed(s, timeLength)
	case capi.TcByte:
		p, err := convertBytes(tc, v)
		if err != nil {
			return err
		}
		if len(p) > fd.Length {
			return newConvertError(tc, v, fmt.Errorf("value length %d exceeds declared length %d", len(p), fd.Length))
		}
		enc.Bytes(p)
		enc.Zeroes(fd.Length - len(p))
		return enc.Error()
	case capi.TcString:
		s, err := convertString(tc, v)
		if err != nil {
			return err
		}
		enc.UCPrefixed(s)
		return enc.Error()
	case capi.TcXString:
		p, err := convertBytes(tc, v)
		if err != nil {
			return err
		}
		enc.Uint32(uint32(len(p)))
		enc.Bytes(p)
		return enc.Error()
	case capi.TcInt:
		i64, err := convertInteger(tc, v, minInt4, maxInt4)
		if err != nil {
			return err
		}
		enc.Int32(int32(i64))
		return enc.Error()
	case capi.TcInt2:
		i64, err := convertInteger(tc, v, minInt2, maxInt2)
		if err != nil {
			return err
		}
		enc.Int16(int16(i64))
		return enc.Error()
	case capi.TcInt1:
		i64, err := convertInteger(tc, v, minInt1, maxInt1)
		if err != nil {
			return err
		}
		enc.Byte(byte(i64))
		return enc.Error()
	case capi.TcFloat:
		f64, err := convertFloat(tc, v)
		if err != nil {
			return err
		}
		enc.Float64(f64)
		return enc.Error()
	case capi.TcBCD:
		r, err := convertDecimal(tc, v)
		if err != nil {
			return err
		}
		digits, neg, err := ratDigits(r, fd.Decimals)
		if err != nil {
			return newConvertError(tc, v, err)
		}
		if err := enc.Decimal(digits, neg, fd.Length); err != nil {
			return newConvertError(tc, v, err)
		}
		return enc.Error()
	case capi.TcStructure:
		m, err := convertStructure(tc, v)
		if err != nil {
			return err
		}
		return encodeStructure(enc, fd.Fields, m)
	case capi.TcTable:
		rows, err := convertTable(tc, v)
		if err != nil {
			return err
		}
		enc.Uint32(uint32(len(rows)))
		for i, row := range rows {
			m, err := convertStructure(capi.TcStructure, row)
			if err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
			if err := encodeStructure(enc, fd.Fields, m); err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
		}
		return enc.Error()
	default:
		return fmt.Errorf("unsupported type code %s", tc)
	}
}

func encodeStructure(enc *encoding.Encoder, fields []*capi.FieldDescription, m map[string]any) error {
	for _, name := range sortedKeys(m) {
		if !slices.ContainsFunc(fields, func(f *capi.FieldDescription) bool { return f.Name == name }) {
			return fmt.Errorf("unknown field %s", name)
		}
	}
	for _, f := range fields {
		v, ok := m[f.Name]
		if !ok {
			return fmt.Errorf("missing field %s", f.Name)
		}
		if err := encodeField(enc, f, v); err != nil {
			return fmt.Errorf("field %s: %w", f.Name, err)
		}
	}
	return nil
}

func decodeField(dec *encoding.Decoder, fd *capi.FieldDescription, rtrim bool) (any, error) {
	switch fd.TypeCode {
	case capi.TcChar, capi.TcNum:
		s := dec.UC(fd.Length * encoding.UnitSize)
		if rtrim {
			s = strings.TrimRight(s, " ")
		}
		return s, dec.Error()
	case capi.TcDate:
		return dec.UC(dateLength * encoding.UnitSize), dec.Error()
	case capi.TcTime:
		return dec.UC(timeLength * encoding.UnitSize), dec.Error()
	case capi.TcByte:
		p := make([]byte, fd.Length)
		dec.Bytes(p)
		return p, dec.Error()
	case capi.TcString:
		size := dec.Uint32()
		return dec.UC(int(size)), dec.Error()
	case capi.TcXString:
		p := dec.VarBytes(int(dec.Uint32()))
		return p, dec.Error()
	case capi.TcInt:
		return int64(dec.Int32()), dec.Error()
	case capi.TcInt2:
		return int64(dec.Int16()), dec.Error()
	case capi.TcInt1:
		return int64(dec.Byte()), dec.Error()
	case capi.TcFloat:
		return dec.Float64(), dec.Error()
	case capi.TcBCD:
		digits, neg := dec.Decimal(fd.Length)
		if err := dec.Error(); err != nil {
			return nil, err
		}
		return bcdFloat(digits, neg, fd.Decimals)
	case capi.TcStructure:
		return decodeStructure(dec, fd.Fields, rtrim)
	case capi.TcTable:
		numRow := int(dec.Uint32())
		if err := dec.Error(); err != nil {
			return nil, err
		}
		// cap the initial capacity - numRow comes from the wire and a corrupt
		// count must not translate into an oversized allocation
		rows := make([]map[string]any, 0, min(numRow, maxPreallocRows))
		for i := 0; i < numRow; i++ {
			row, err := decodeStructure(dec, fd.Fields, rtrim)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			rows = append(rows, row)
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("unsupported type code %s", fd.TypeCode)
	}
}

func decodeStructure(dec *encoding.Decoder, fields []*capi.FieldDescription, rtrim bool) (map[string]any, error) {
	m := make(map[string]any, len(fields))
	for _, f := range fields {
		v, err := decodeField(dec, f, rtrim)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		m[f.Name] = v
	}
	return m, nil
}

// EncodeParameter marshals a host value into the wire buffer of the
// described parameter or field.
func EncodeParameter(fd *capi.FieldDescription, v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := encoding.NewEncoder(&buf)
	if err := encodeField(enc, fd, v); err != nil {
		return nil, err
	}
	if err := enc.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeParameter unmarshals the wire buffer of the described parameter or
// field into a host value.
func DecodeParameter(fd *capi.FieldDescription, data []byte, rtrim bool) (any, error) {
	dec := encoding.NewDecoder(bytes.NewReader(data))
	v, err := decodeField(dec, fd, rtrim)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// MarshalCall builds the call request for a function module invocation:
// it filters the active parameter subset, checks the inputs against it and
// marshals the input values. Inactive parameters are neither sent nor
// requested back.
func MarshalCall(name string, fields []*ParameterField, inputs map[string]any) (*capi.CallRequest, error) {
	lookup := func(name string) *ParameterField {
		for _, f := range fields {
			if f.Name() == name {
				return f
			}
		}
		return nil
	}

	// reject unknown, inactive and export-only inputs before marshalling
	for _, name := range sortedKeys(inputs) {
		f := lookup(name)
		switch {
		case f == nil:
			return nil, fmt.Errorf("unknown parameter %s", name)
		case !f.Active():
			return nil, fmt.Errorf("parameter %s is inactive", name)
		case !f.Direction().IsInput():
			return nil, fmt.Errorf("parameter %s has direction %s and cannot be supplied", name, f.Direction())
		}
	}

	req := &capi.CallRequest{Name: name}
	for _, f := range fields {
		if !f.Active() {
			continue
		}
		if f.Direction().IsInput() {
			v, ok := inputs[f.Name()]
			switch {
			case ok:
				data, err := EncodeParameter(&f.Description().FieldDescription, v)
				if err != nil {
					return nil, fmt.Errorf("parameter %s: %w", f.Name(), err)
				}
				req.In = append(req.In, capi.NamedBuffer{Name: f.Name(), Data: data})
			case !f.Description().Optional:
				return nil, fmt.Errorf("missing required parameter %s", f.Name())
			}
		}
		if f.Direction().IsOutput() {
			req.Out = append(req.Out, f.Name())
		}
	}
	return req, nil
}

// UnmarshalCall decodes the result buffers of a call into the outputs map.
func UnmarshalCall(fields []*ParameterField, res *capi.CallResult, rtrim bool) (map[string]any, error) {
	lookup := func(name string) *ParameterField {
		for _, f := range fields {
			if f.Name() == name {
				return f
			}
		}
		return nil
	}

	outputs := make(map[string]any, len(res.Out))
	for _, buf := range res.Out {
		f := lookup(buf.Name)
		if f == nil {
			return nil, fmt.Errorf("unknown result parameter %s", buf.Name)
		}
		v, err := DecodeParameter(&f.Description().FieldDescription, buf.Data, rtrim)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", buf.Name, err)
		}
		outputs[buf.Name] = v
	}
	return outputs, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
