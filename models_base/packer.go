package models_base

import (
	"encoding/binary"
	"math"
)

// Packer appends big-endian primitives to a growable byte buffer.
// Diameter is a network-byte-order protocol throughout.
type Packer struct {
	buf []byte
}

// NewPacker creates a Packer with the given initial capacity.
func NewPacker(capacity int) *Packer {
	return &Packer{buf: make([]byte, 0, capacity)}
}

// Bytes returns the accumulated buffer.
func (p *Packer) Bytes() []byte {
	return p.buf
}

// Len returns the number of bytes written so far.
func (p *Packer) Len() int {
	return len(p.buf)
}

func (p *Packer) PutUint32(v uint32) {
	p.buf = binary.BigEndian.AppendUint32(p.buf, v)
}

func (p *Packer) PutInt32(v int32) {
	p.PutUint32(uint32(v))
}

func (p *Packer) PutUint64(v uint64) {
	p.buf = binary.BigEndian.AppendUint64(p.buf, v)
}

func (p *Packer) PutInt64(v int64) {
	p.PutUint64(uint64(v))
}

func (p *Packer) PutFloat32(v float32) {
	p.PutUint32(math.Float32bits(v))
}

func (p *Packer) PutFloat64(v float64) {
	p.PutUint64(math.Float64bits(v))
}

// PutUint24 writes the low 24 bits of v. Used for the length and command
// code fields of Diameter headers.
func (p *Packer) PutUint24(v uint32) {
	p.buf = append(p.buf, byte(v>>16), byte(v>>8), byte(v))
}

// PutOctets writes b followed by zero padding to the next 4-byte boundary.
func (p *Packer) PutOctets(b []byte) {
	p.buf = append(p.buf, b...)
	for i := len(b); i < pad4(len(b)); i++ {
		p.buf = append(p.buf, 0)
	}
}

// PutLenOctets writes a u32 length prefix, then the padded octets.
func (p *Packer) PutLenOctets(b []byte) {
	p.PutUint32(uint32(len(b)))
	p.PutOctets(b)
}

// Unpacker reads big-endian primitives from a byte slice, advancing an
// internal cursor. Reads past the end fail with a TruncatedError; the
// cursor is left unchanged on failure.
type Unpacker struct {
	buf []byte
	off int
}

// NewUnpacker creates an Unpacker over b.
func NewUnpacker(b []byte) *Unpacker {
	return &Unpacker{buf: b}
}

// Remaining returns the number of unread bytes.
func (u *Unpacker) Remaining() int {
	return len(u.buf) - u.off
}

// Offset returns the current cursor position.
func (u *Unpacker) Offset() int {
	return u.off
}

func (u *Unpacker) take(n int) ([]byte, error) {
	if u.Remaining() < n {
		return nil, &TruncatedError{Need: n, Have: u.Remaining()}
	}
	b := u.buf[u.off : u.off+n]
	u.off += n
	return b, nil
}

func (u *Unpacker) Uint32() (uint32, error) {
	b, err := u.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (u *Unpacker) Int32() (int32, error) {
	v, err := u.Uint32()
	return int32(v), err
}

func (u *Unpacker) Uint64() (uint64, error) {
	b, err := u.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (u *Unpacker) Int64() (int64, error) {
	v, err := u.Uint64()
	return int64(v), err
}

func (u *Unpacker) Float32() (float32, error) {
	v, err := u.Uint32()
	return math.Float32frombits(v), err
}

func (u *Unpacker) Float64() (float64, error) {
	v, err := u.Uint64()
	return math.Float64frombits(v), err
}

// Uint24 reads a 3-byte big-endian unsigned integer.
func (u *Unpacker) Uint24() (uint32, error) {
	b, err := u.take(3)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
}

// Octets reads n bytes and skips padding up to the next 4-byte boundary.
// Padding content is discarded, not validated. A buffer that ends before
// the padded length is truncated; message and grouped lengths cover the
// padding of their last AVP, so well-formed input always carries it. The
// returned slice aliases the underlying buffer.
func (u *Unpacker) Octets(n int) ([]byte, error) {
	padded := pad4(n)
	if u.Remaining() < padded {
		return nil, &TruncatedError{Need: padded, Have: u.Remaining()}
	}
	b := u.buf[u.off : u.off+n]
	u.off += padded
	return b, nil
}

// LenOctets reads a u32 length prefix followed by padded octets.
func (u *Unpacker) LenOctets() ([]byte, error) {
	n, err := u.Uint32()
	if err != nil {
		return nil, err
	}
	return u.Octets(int(n))
}
