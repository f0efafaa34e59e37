// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package encoding

import "fmt"

/*
Packed decimal (BCD) wire format:
- size bytes hold 2*size-1 decimal digits, most significant first
- the low nibble of the last byte is the sign: 0xc positive, 0xd negative
*/

const (
	bcdPositive = 0x0c
	bcdNegative = 0x0d
)

// NumDigits returns the decimal digit capacity of a packed decimal of
// size bytes.
func NumDigits(size int) int { return 2*size - 1 }

// packDecimal packs the decimal digits (most significant first, values 0-9)
// into the packed decimal representation of size bytes.
func packDecimal(digits []byte, neg bool, size int) ([]byte, error) {
	capacity := NumDigits(size)
	// strip leading zeroes
	for len(digits) > 0 && digits[0] == 0 {
		digits = digits[1:]
	}
	if len(digits) > capacity {
		return nil, fmt.Errorf("decimal overflow: %d digits exceed capacity %d", len(digits), capacity)
	}

	p := make([]byte, size)
	sign := byte(bcdPositive)
	if neg {
		sign = bcdNegative
	}
	p[size-1] = sign

	// fill nibbles from the least significant digit upwards;
	// nibble index 0 is the sign nibble.
	nibble := 1
	for i := len(digits) - 1; i >= 0; i-- {
		bi := size - 1 - nibble/2
		if nibble%2 == 0 {
			p[bi] |= digits[i] & 0x0f
		} else {
			p[bi] |= (digits[i] & 0x0f) << 4
		}
		nibble++
	}
	return p, nil
}

// unpackDecimal returns the decimal digits (most significant first) and the
// sign of a packed decimal.
func unpackDecimal(p []byte) (digits []byte, neg bool) {
	size := len(p)
	if size == 0 {
		return nil, false
	}
	neg = p[size-1]&0x0f == bcdNegative

	digits = make([]byte, 0, NumDigits(size))
	for i := 0; i < size; i++ {
		digits = append(digits, p[i]>>4)
		if i < size-1 {
			digits = append(digits, p[i]&0x0f)
		}
	}
	// strip leading zeroes
	for len(digits) > 1 && digits[0] == 0 {
		digits = digits[1:]
	}
	return digits, neg
}
