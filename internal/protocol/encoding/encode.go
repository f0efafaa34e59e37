// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package encoding

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"golang.org/x/text/transform"
)

const writeScratchSize = 4096

// Encoder encodes RFC protocol datatypes on basis of an io.Writer.
type Encoder struct {
	wr  io.Writer
	err error
	b   []byte // scratch buffer (min 8 bytes)
	tr  transform.Transformer
}

// NewEncoder creates a new Encoder instance.
func NewEncoder(wr io.Writer) *Encoder {
	return &Encoder{
		wr: wr,
		b:  make([]byte, writeScratchSize),
		tr: NewTextEncoder(),
	}
}

// Error returns the writer error.
func (e *Encoder) Error() error { return e.err }

// Zeroes writes cnt zero byte values.
func (e *Encoder) Zeroes(cnt int) {
	if e.err != nil {
		return
	}
	l := min(cnt, len(e.b))
	for i := 0; i < l; i++ {
		e.b[i] = 0
	}
	for i := 0; i < cnt; {
		j := min(cnt-i, len(e.b))
		n, _ := e.wr.Write(e.b[:j])
		if n != j {
			return
		}
		i += n
	}
}

// Bytes writes a byte slice.
func (e *Encoder) Bytes(p []byte) {
	if e.err != nil {
		return
	}
	e.wr.Write(p)
}

// Byte writes a byte.
func (e *Encoder) Byte(b byte) {
	if e.err != nil {
		return
	}
	e.b[0] = b
	e.Bytes(e.b[:1])
}

// Int16 writes an int16.
func (e *Encoder) Int16(i int16) {
	if e.err != nil {
		return
	}
	binary.LittleEndian.PutUint16(e.b[:2], uint16(i))
	e.wr.Write(e.b[:2])
}

// Int32 writes an int32.
func (e *Encoder) Int32(i int32) {
	if e.err != nil {
		return
	}
	binary.LittleEndian.PutUint32(e.b[:4], uint32(i))
	e.wr.Write(e.b[:4])
}

// Uint32 writes an uint32.
func (e *Encoder) Uint32(i uint32) {
	if e.err != nil {
		return
	}
	binary.LittleEndian.PutUint32(e.b[:4], i)
	e.wr.Write(e.b[:4])
}

// Float64 writes a float64.
func (e *Encoder) Float64(f float64) {
	if e.err != nil {
		return
	}
	binary.LittleEndian.PutUint64(e.b[:8], math.Float64bits(f))
	e.wr.Write(e.b[:8])
}

// UCBytes writes an UTF-8 byte slice as SAP_UC and returns the number of
// SAP_UC bytes written.
func (e *Encoder) UCBytes(p []byte) int {
	if e.err != nil {
		return 0
	}
	e.tr.Reset()
	cnt := 0
	i := 0
	for i < len(p) {
		m, n, err := e.tr.Transform(e.b, p[i:], true)
		if err != nil && err != transform.ErrShortDst {
			e.err = err
			return cnt
		}
		if m == 0 {
			e.err = transform.ErrShortDst
			return cnt
		}
		o, _ := e.wr.Write(e.b[:m])
		cnt += o
		i += n
	}
	return cnt
}

// UCString is like UCBytes with an UTF-8 string as parameter.
func (e *Encoder) UCString(s string) int { return e.UCBytes([]byte(s)) }

// UCPrefixed writes the SAP_UC bytes of an UTF-8 string prefixed with
// their uint32 byte length.
func (e *Encoder) UCPrefixed(s string) {
	if e.err != nil {
		return
	}
	var buf bytes.Buffer
	se := NewEncoder(&buf)
	se.UCString(s)
	if se.err != nil {
		e.err = se.err
		return
	}
	e.Uint32(uint32(buf.Len()))
	e.Bytes(buf.Bytes())
}

// UCFixed writes an UTF-8 string as SAP_UC right padded with blanks to
// length code units. It returns an error if the string exceeds length.
func (e *Encoder) UCFixed(s string, length int) error {
	if e.err != nil {
		return e.err
	}
	cnt := e.UCString(s)
	if e.err != nil {
		return e.err
	}
	units := cnt / UnitSize
	if units > length {
		return fmt.Errorf("value length %d exceeds declared length %d", units, length)
	}
	for i := 0; i < length-units; i++ {
		e.Bytes(blankUnit[:])
	}
	return e.err
}

// Decimal writes the packed decimal representation of the given decimal
// digits in size bytes, neg is the sign.
func (e *Encoder) Decimal(digits []byte, neg bool, size int) error {
	if e.err != nil {
		return e.err
	}
	p, err := packDecimal(digits, neg, size)
	if err != nil {
		return err
	}
	e.Bytes(p)
	return e.err
}
