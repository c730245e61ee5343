package models_base

import (
	"bytes"
	"errors"
	"testing"
)

func TestPackerUnpackerRoundTrip(t *testing.T) {
	p := NewPacker(64)
	p.PutUint32(0xdeadbeef)
	p.PutInt32(-5)
	p.PutUint64(1 << 40)
	p.PutInt64(-1)
	p.PutFloat32(1.5)
	p.PutFloat64(-2.25)
	p.PutUint24(0x0102ff)
	p.PutOctets([]byte("abcde")) // 5 bytes + 3 pad
	p.PutLenOctets([]byte("xyz"))

	u := NewUnpacker(p.Bytes())
	if v, err := u.Uint32(); err != nil || v != 0xdeadbeef {
		t.Fatalf("Uint32: got %x, err %v", v, err)
	}
	if v, err := u.Int32(); err != nil || v != -5 {
		t.Fatalf("Int32: got %d, err %v", v, err)
	}
	if v, err := u.Uint64(); err != nil || v != 1<<40 {
		t.Fatalf("Uint64: got %d, err %v", v, err)
	}
	if v, err := u.Int64(); err != nil || v != -1 {
		t.Fatalf("Int64: got %d, err %v", v, err)
	}
	if v, err := u.Float32(); err != nil || v != 1.5 {
		t.Fatalf("Float32: got %f, err %v", v, err)
	}
	if v, err := u.Float64(); err != nil || v != -2.25 {
		t.Fatalf("Float64: got %f, err %v", v, err)
	}
	if v, err := u.Uint24(); err != nil || v != 0x0102ff {
		t.Fatalf("Uint24: got %x, err %v", v, err)
	}
	if v, err := u.Octets(5); err != nil || !bytes.Equal(v, []byte("abcde")) {
		t.Fatalf("Octets: got %q, err %v", v, err)
	}
	if v, err := u.LenOctets(); err != nil || !bytes.Equal(v, []byte("xyz")) {
		t.Fatalf("LenOctets: got %q, err %v", v, err)
	}
	if u.Remaining() != 0 {
		t.Fatalf("unconsumed bytes: %d", u.Remaining())
	}
}

func TestUnpackerTruncated(t *testing.T) {
	u := NewUnpacker([]byte{1, 2, 3})
	if _, err := u.Uint32(); err == nil {
		t.Fatal("expected truncation error, got nil")
	}
	// The cursor must not advance on failure.
	if u.Offset() != 0 {
		t.Fatalf("cursor moved on failed read: offset %d", u.Offset())
	}

	var te *TruncatedError
	_, err := u.Uint64()
	if !errors.As(err, &te) {
		t.Fatalf("expected TruncatedError, got %v", err)
	}
	if te.Need != 8 || te.Have != 3 {
		t.Errorf("unexpected error detail: %+v", te)
	}
}

func TestOctetsPaddingSkip(t *testing.T) {
	// 2 payload bytes, 2 pad bytes, then a trailing u32.
	u := NewUnpacker([]byte{0xaa, 0xbb, 0x00, 0x00, 0, 0, 0, 7})
	b, err := u.Octets(2)
	if err != nil {
		t.Fatalf("Octets failed: %v", err)
	}
	if !bytes.Equal(b, []byte{0xaa, 0xbb}) {
		t.Fatalf("unexpected octets: % x", b)
	}
	if v, err := u.Uint32(); err != nil || v != 7 {
		t.Fatalf("padding was not skipped: got %d, err %v", v, err)
	}
}

func TestOctetsMissingPadding(t *testing.T) {
	// 2 payload bytes present but the 2 pad bytes are cut off.
	u := NewUnpacker([]byte{0xaa, 0xbb})
	_, err := u.Octets(2)

	var te *TruncatedError
	if !errors.As(err, &te) {
		t.Fatalf("expected TruncatedError, got %v", err)
	}
	if te.Need != 4 || te.Have != 2 {
		t.Errorf("unexpected error detail: %+v", te)
	}
	if u.Offset() != 0 {
		t.Errorf("cursor moved on failed read: offset %d", u.Offset())
	}
}
