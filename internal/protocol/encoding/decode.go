// SPDX-FileCopyrightText: 2014-2026 SAP SE
//
// SPDX-License-Identifier: Apache-2.0

package encoding

import (
	"encoding/binary"
	"io"
	"math"

	"golang.org/x/text/transform"
)

const readScratchSize = 4096

// Decoder decodes RFC protocol datatypes on basis of an io.Reader.
type Decoder struct {
	rd io.Reader
	/* err: fatal read error
	- not set by conversion errors
	- conversion errors are returned by the reader function itself
	*/
	err error
	b   []byte // scratch buffer
	tr  transform.Transformer
	cnt int
}

// NewDecoder creates a new Decoder instance based on an io.Reader.
func NewDecoder(rd io.Reader) *Decoder {
	return &Decoder{
		rd: rd,
		b:  make([]byte, readScratchSize),
		tr: NewTextDecoder(),
	}
}

// Cnt returns the value of the byte read counter.
func (d *Decoder) Cnt() int { return d.cnt }

// Error returns the reader error.
func (d *Decoder) Error() error { return d.err }

// readFull reads data from reader + read counter and error handling.
func (d *Decoder) readFull(buf []byte) (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	var n int
	n, d.err = io.ReadFull(d.rd, buf)
	d.cnt += n
	return n, d.err
}

// Skip skips cnt bytes.
func (d *Decoder) Skip(cnt int) {
	for cnt > 0 {
		j := min(cnt, len(d.b))
		n, err := d.readFull(d.b[:j])
		cnt -= n
		if err != nil {
			return
		}
	}
}

// Byte reads and returns a byte.
func (d *Decoder) Byte() byte {
	if _, err := d.readFull(d.b[:1]); err != nil {
		return 0
	}
	return d.b[0]
}

// Bytes reads and returns a byte slice of size len(p).
func (d *Decoder) Bytes(p []byte) {
	d.readFull(p)
}

// Int16 reads and returns an int16.
func (d *Decoder) Int16() int16 {
	if _, err := d.readFull(d.b[:2]); err != nil {
		return 0
	}
	return int16(binary.LittleEndian.Uint16(d.b[:2]))
}

// Int32 reads and returns an int32.
func (d *Decoder) Int32() int32 {
	if _, err := d.readFull(d.b[:4]); err != nil {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(d.b[:4]))
}

// Uint32 reads and returns an uint32.
func (d *Decoder) Uint32() uint32 {
	if _, err := d.readFull(d.b[:4]); err != nil {
		return 0
	}
	return binary.LittleEndian.Uint32(d.b[:4])
}

// Float64 reads and returns a float64.
func (d *Decoder) Float64() float64 {
	if _, err := d.readFull(d.b[:8]); err != nil {
		return 0
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(d.b[:8]))
}

// VarBytes reads and returns a byte slice of the given size. The slice is
// grown in scratch buffer sized chunks, so a corrupt size taken from the
// wire cannot trigger an oversized allocation before hitting a read error.
func (d *Decoder) VarBytes(size int) []byte {
	p := make([]byte, 0, min(size, readScratchSize))
	for size > 0 {
		j := min(size, len(d.b))
		n, err := d.readFull(d.b[:j])
		p = append(p, d.b[:n]...)
		size -= n
		if err != nil {
			return p
		}
	}
	return p
}

// UC reads size SAP_UC bytes and returns them as UTF-8 string.
func (d *Decoder) UC(size int) string {
	p := d.VarBytes(size)
	if d.err != nil {
		return ""
	}
	d.tr.Reset()
	s, _, err := transform.Bytes(d.tr, p)
	if err != nil {
		d.err = err
		return ""
	}
	return string(s)
}

// Decimal reads a packed decimal of size bytes and returns its decimal
// digits and sign.
func (d *Decoder) Decimal(size int) (digits []byte, neg bool) {
	p := make([]byte, size)
	if _, err := d.readFull(p); err != nil {
		return nil, false
	}
	return unpackDecimal(p)
}
