// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package encoding

import (
	"bytes"
	"testing"
)

func testUCRoundtrip(t *testing.T) {
	tests := []string{
		"",
		"Hello World",
		"Käse & Brötchen",
		"日本語テキスト",
		"mixed ascii ö 語",
	}

	for i, test := range tests {
		var buf bytes.Buffer
		enc := NewEncoder(&buf)
		cnt := enc.UCString(test)
		if err := enc.Error(); err != nil {
			t.Fatal(err)
		}
		if cnt != buf.Len() {
			t.Fatalf("line: %d cnt: %d expected: %d", i, cnt, buf.Len())
		}
		if cnt%UnitSize != 0 {
			t.Fatalf("line: %d cnt %d is not a multiple of the unit size", i, cnt)
		}

		dec := NewDecoder(&buf)
		s := dec.UC(cnt)
		if err := dec.Error(); err != nil {
			t.Fatal(err)
		}
		if s != test {
			t.Fatalf("line: %d got: %s expected: %s", i, s, test)
		}
	}
}

func testUCFixed(t *testing.T) {
	tests := []struct {
		s      string
		length int
		padded string
		err    bool
	}{
		{"", 4, "    ", false},
		{"AB", 4, "AB  ", false},
		{"ABCD", 4, "ABCD", false},
		{"ABCDE", 4, "", true},
		{"äöü", 5, "äöü  ", false},
	}

	for i, test := range tests {
		var buf bytes.Buffer
		enc := NewEncoder(&buf)
		err := enc.UCFixed(test.s, test.length)
		if test.err {
			if err == nil {
				t.Fatalf("line: %d expected error for %s length %d", i, test.s, test.length)
			}
			continue
		}
		if err != nil {
			t.Fatal(err)
		}
		if buf.Len() != test.length*UnitSize {
			t.Fatalf("line: %d size: %d expected: %d", i, buf.Len(), test.length*UnitSize)
		}

		dec := NewDecoder(&buf)
		s := dec.UC(test.length * UnitSize)
		if err := dec.Error(); err != nil {
			t.Fatal(err)
		}
		if s != test.padded {
			t.Fatalf("line: %d got: %q expected: %q", i, s, test.padded)
		}
	}
}

func testUCPrefixed(t *testing.T) {
	tests := []string{"", "variable", "Grüße"}

	for i, test := range tests {
		var buf bytes.Buffer
		enc := NewEncoder(&buf)
		enc.UCPrefixed(test)
		if err := enc.Error(); err != nil {
			t.Fatal(err)
		}

		dec := NewDecoder(&buf)
		size := dec.Uint32()
		s := dec.UC(int(size))
		if err := dec.Error(); err != nil {
			t.Fatal(err)
		}
		if s != test {
			t.Fatalf("line: %d got: %s expected: %s", i, s, test)
		}
		if buf.Len() != 0 {
			t.Fatalf("line: %d %d trailing bytes", i, buf.Len())
		}
	}
}

func testNumeric(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	enc.Byte(0xff)
	enc.Int16(-12345)
	enc.Int32(-1234567890)
	enc.Uint32(1234567890)
	enc.Float64(3.14159265358979)
	enc.Zeroes(3)
	if err := enc.Error(); err != nil {
		t.Fatal(err)
	}

	dec := NewDecoder(&buf)
	if b := dec.Byte(); b != 0xff {
		t.Fatalf("got: %d expected: %d", b, 0xff)
	}
	if i := dec.Int16(); i != -12345 {
		t.Fatalf("got: %d expected: %d", i, -12345)
	}
	if i := dec.Int32(); i != -1234567890 {
		t.Fatalf("got: %d expected: %d", i, -1234567890)
	}
	if u := dec.Uint32(); u != 1234567890 {
		t.Fatalf("got: %d expected: %d", u, 1234567890)
	}
	if f := dec.Float64(); f != 3.14159265358979 {
		t.Fatalf("got: %f expected: %f", f, 3.14159265358979)
	}
	p := make([]byte, 3)
	dec.Bytes(p)
	if err := dec.Error(); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(p, []byte{0, 0, 0}) {
		t.Fatalf("got: %v expected zeroes", p)
	}
	if dec.Cnt() != 1+2+4+4+8+3 {
		t.Fatalf("cnt: %d expected: %d", dec.Cnt(), 1+2+4+4+8+3)
	}
}

func testVarBytes(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05}

	dec := NewDecoder(bytes.NewReader(data))
	if p := dec.VarBytes(5); !bytes.Equal(p, data) {
		t.Fatalf("got: % x expected: % x", p, data)
	}
	if err := dec.Error(); err != nil {
		t.Fatal(err)
	}

	// an oversized size must run into a read error, not an allocation of
	// the announced size
	dec = NewDecoder(bytes.NewReader(data))
	p := dec.VarBytes(int(^uint32(0)))
	if dec.Error() == nil {
		t.Fatal("expected read error")
	}
	if !bytes.Equal(p, data) {
		t.Fatalf("got: % x expected: % x", p, data)
	}
}

func testPackDecimal(t *testing.T) {
	tests := []struct {
		digits []byte
		neg    bool
		size   int
		packed []byte
	}{
		{[]byte{0}, false, 2, []byte{0x00, 0x0c}},
		{[]byte{1}, false, 2, []byte{0x00, 0x1c}},
		{[]byte{1}, true, 2, []byte{0x00, 0x1d}},
		{[]byte{1, 2, 3}, false, 2, []byte{0x12, 0x3c}},
		{[]byte{1, 2, 3, 4, 5}, false, 3, []byte{0x12, 0x34, 0x5c}},
		{[]byte{0, 0, 4, 2}, false, 3, []byte{0x00, 0x04, 0x2c}},
		{[]byte{9, 9, 9, 9, 9, 9, 9}, true, 4, []byte{0x99, 0x99, 0x99, 0x9d}},
	}

	for i, test := range tests {
		p, err := packDecimal(test.digits, test.neg, test.size)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(p, test.packed) {
			t.Fatalf("line: %d got: % x expected: % x", i, p, test.packed)
		}

		digits, neg := unpackDecimal(p)
		// packDecimal strips leading zeroes, unpackDecimal keeps one digit minimum
		expected := test.digits
		for len(expected) > 1 && expected[0] == 0 {
			expected = expected[1:]
		}
		if !bytes.Equal(digits, expected) || neg != test.neg {
			t.Fatalf("line: %d got: %v %t expected: %v %t", i, digits, neg, expected, test.neg)
		}
	}
}

func testPackDecimalOverflow(t *testing.T) {
	// 2 bytes hold 3 digits
	if _, err := packDecimal([]byte{1, 2, 3, 4}, false, 2); err == nil {
		t.Fatal("expected decimal overflow error")
	}
	// leading zeroes do not overflow
	if _, err := packDecimal([]byte{0, 1, 2, 3}, false, 2); err != nil {
		t.Fatal(err)
	}
}

func TestEncoding(t *testing.T) {
	tests := []struct {
		name string
		fct  func(t *testing.T)
	}{
		{"ucRoundtrip", testUCRoundtrip},
		{"ucFixed", testUCFixed},
		{"ucPrefixed", testUCPrefixed},
		{"numeric", testNumeric},
		{"varBytes", testVarBytes},
		{"packDecimal", testPackDecimal},
		{"packDecimalOverflow", testPackDecimalOverflow},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.fct(t)
		})
	}
}
