// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"errors"
	"math/big"
	"testing"

	"github.com/SAP/go-nwrfc/rfc/capi"
)

func assertEqualInt(t *testing.T, tc capi.TypeCode, v any, min, max, r int64) {
	i64, err := convertInteger(tc, v, min, max)
	if err != nil {
		t.Fatal(err)
	}
	if i64 != r {
		t.Fatalf("got: %d expected: %d", i64, r)
	}
}

func assertIntOutOfRange(t *testing.T, tc capi.TypeCode, v any, min, max int64) {
	if _, err := convertInteger(tc, v, min, max); !errors.Is(err, ErrIntegerOutOfRange) {
		t.Fatalf("expected out of range error for %s %v", tc, v)
	}
}

func testConvertInteger(t *testing.T) {
	type testCustomInt int

	// integer data types
	assertEqualInt(t, capi.TcInt, 42, minInt4, maxInt4, 42)
	assertEqualInt(t, capi.TcInt2, int16(42), minInt2, maxInt2, 42)
	assertEqualInt(t, capi.TcInt1, uint8(42), minInt1, maxInt1, 42)

	// custom integer data type
	assertEqualInt(t, capi.TcInt, testCustomInt(42), minInt4, maxInt4, 42)

	// integer reference
	i := 42
	assertEqualInt(t, capi.TcInt, &i, minInt4, maxInt4, 42)

	// integer as string
	assertEqualInt(t, capi.TcInt, "42", minInt4, maxInt4, 42)

	// float without fraction
	assertEqualInt(t, capi.TcInt, 42.0, minInt4, maxInt4, 42)

	// float with fraction is not convertible
	if _, err := convertInteger(capi.TcInt, 42.5, minInt4, maxInt4); err == nil {
		t.Fatal("expected conversion error for 42.5")
	}

	// min max values
	assertIntOutOfRange(t, capi.TcInt1, minInt1-1, minInt1, maxInt1)
	assertIntOutOfRange(t, capi.TcInt1, maxInt1+1, minInt1, maxInt1)
	assertIntOutOfRange(t, capi.TcInt2, minInt2-1, minInt2, maxInt2)
	assertIntOutOfRange(t, capi.TcInt2, maxInt2+1, minInt2, maxInt2)
	assertIntOutOfRange(t, capi.TcInt, int64(minInt4)-1, minInt4, maxInt4)
	assertIntOutOfRange(t, capi.TcInt, int64(maxInt4)+1, minInt4, maxInt4)

	// uint64 with high bit set
	if _, err := convertInteger(capi.TcInt, uint64(1)<<63, minInt4, maxInt4); !errors.Is(err, ErrUint64OutOfRange) {
		t.Fatal("expected uint64 out of range error")
	}
}

func testConvertFloat(t *testing.T) {
	type testCustomFloat float32

	assertEqual := func(v any, r float64) {
		f64, err := convertFloat(capi.TcFloat, v)
		if err != nil {
			t.Fatal(err)
		}
		if f64 != r {
			t.Fatalf("got: %f expected: %f", f64, r)
		}
	}

	assertEqual(3.5, 3.5)
	assertEqual(float32(0.5), 0.5)
	assertEqual(testCustomFloat(0.5), 0.5)
	assertEqual(42, 42)
	assertEqual("3.5", 3.5)

	f := 3.5
	assertEqual(&f, 3.5)

	if _, err := convertFloat(capi.TcFloat, "not a float"); err == nil {
		t.Fatal("expected conversion error")
	}
}

func testConvertString(t *testing.T) {
	type testCustomString string

	assertEqual := func(v any, r string) {
		s, err := convertString(capi.TcChar, v)
		if err != nil {
			t.Fatal(err)
		}
		if s != r {
			t.Fatalf("got: %s expected: %s", s, r)
		}
	}

	assertEqual("hello", "hello")
	assertEqual(testCustomString("hello"), "hello")
	assertEqual([]byte("hello"), "hello")

	s := "hello"
	assertEqual(&s, "hello")

	// no integer to rune string conversion (65 is not "A")
	if _, err := convertString(capi.TcChar, 42); err == nil {
		t.Fatal("expected conversion error")
	}
	if _, err := convertString(capi.TcString, 'A'); err == nil {
		t.Fatal("expected conversion error")
	}
}

func testConvertBytes(t *testing.T) {
	type testCustomBytes []byte

	assertEqual := func(v any, r string) {
		p, err := convertBytes(capi.TcByte, v)
		if err != nil {
			t.Fatal(err)
		}
		if string(p) != r {
			t.Fatalf("got: %v expected: %s", p, r)
		}
	}

	assertEqual([]byte{0x01, 0x02}, "\x01\x02")
	assertEqual("raw", "raw")
	assertEqual(testCustomBytes{0x01}, "\x01")

	if _, err := convertBytes(capi.TcByte, 42); err == nil {
		t.Fatal("expected conversion error")
	}
}

func testConvertDecimal(t *testing.T) {
	assertEqual := func(v any, r *big.Rat) {
		x, err := convertDecimal(capi.TcBCD, v)
		if err != nil {
			t.Fatal(err)
		}
		if x.Cmp(r) != 0 {
			t.Fatalf("got: %s expected: %s", x, r)
		}
	}

	assertEqual(big.NewRat(15, 2), big.NewRat(15, 2))
	assertEqual(42, big.NewRat(42, 1))
	assertEqual(uint16(42), big.NewRat(42, 1))
	assertEqual(0.25, big.NewRat(1, 4))
	assertEqual("7.5", big.NewRat(15, 2))
	assertEqual("3/4", big.NewRat(3, 4))

	if _, err := convertDecimal(capi.TcBCD, "not a decimal"); err == nil {
		t.Fatal("expected conversion error")
	}
	if _, err := convertDecimal(capi.TcBCD, uint64(1)<<63); !errors.Is(err, ErrUint64OutOfRange) {
		t.Fatal("expected uint64 out of range error")
	}
}

func testConvertStructure(t *testing.T) {
	m, err := convertStructure(capi.TcStructure, map[string]any{"F1": int64(1)})
	if err != nil {
		t.Fatal(err)
	}
	if m["F1"] != int64(1) {
		t.Fatalf("got: %v expected: 1", m["F1"])
	}

	// maps with string keys but other value types are converted
	m, err = convertStructure(capi.TcStructure, map[string]string{"F1": "x"})
	if err != nil {
		t.Fatal(err)
	}
	if m["F1"] != "x" {
		t.Fatalf("got: %v expected: x", m["F1"])
	}

	if _, err := convertStructure(capi.TcStructure, map[int]any{1: "x"}); err == nil {
		t.Fatal("expected conversion error")
	}
	if _, err := convertStructure(capi.TcStructure, 42); err == nil {
		t.Fatal("expected conversion error")
	}
}

func testConvertTable(t *testing.T) {
	rows, err := convertTable(capi.TcTable, []map[string]any{{"F1": int64(1)}, {"F1": int64(2)}})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got: %d rows expected: 2", len(rows))
	}

	// byte slices are not tables
	if _, err := convertTable(capi.TcTable, []byte{0x01}); err == nil {
		t.Fatal("expected conversion error")
	}
	if _, err := convertTable(capi.TcTable, 42); err == nil {
		t.Fatal("expected conversion error")
	}
}

func testConvertNil(t *testing.T) {
	// nil values must yield conversion errors, not panics
	if _, err := convertInteger(capi.TcInt, nil, minInt4, maxInt4); err == nil {
		t.Fatal("expected conversion error")
	}
	if _, err := convertFloat(capi.TcFloat, nil); err == nil {
		t.Fatal("expected conversion error")
	}
	if _, err := convertString(capi.TcChar, nil); err == nil {
		t.Fatal("expected conversion error")
	}
	if _, err := convertBytes(capi.TcByte, nil); err == nil {
		t.Fatal("expected conversion error")
	}
	if _, err := convertDecimal(capi.TcBCD, nil); err == nil {
		t.Fatal("expected conversion error")
	}
	if _, err := convertStructure(capi.TcStructure, nil); err == nil {
		t.Fatal("expected conversion error")
	}
	if _, err := convertTable(capi.TcTable, nil); err == nil {
		t.Fatal("expected conversion error")
	}

	// typed nil pointers
	if _, err := convertDecimal(capi.TcBCD, (*big.Rat)(nil)); err == nil {
		t.Fatal("expected conversion error")
	}
	var s *string
	if _, err := convertString(capi.TcChar, s); err == nil {
		t.Fatal("expected conversion error")
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		fct  func(t *testing.T)
	}{
		{"convertInteger", testConvertInteger},
		{"convertFloat", testConvertFloat},
		{"convertString", testConvertString},
		{"convertBytes", testConvertBytes},
		{"convertDecimal", testConvertDecimal},
		{"convertStructure", testConvertStructure},
		{"convertTable", testConvertTable},
		{"convertNil", testConvertNil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.fct(t)
		})
	}
}
