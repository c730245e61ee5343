package transport

import (
	"bytes"
	"io"
	"testing"
)

func frame(body []byte) []byte {
	msg := make([]byte, 20+len(body))
	msg[0] = 1
	length := uint32(len(msg))
	msg[1] = byte(length >> 16)
	msg[2] = byte(length >> 8)
	msg[3] = byte(length)
	copy(msg[20:], body)
	return msg
}

func TestReadMessageFraming(t *testing.T) {
	first := frame([]byte{0xde, 0xad, 0xbe, 0xef})
	second := frame(nil)
	r := bytes.NewReader(append(append([]byte{}, first...), second...))

	got, err := ReadMessage(r)
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	if !bytes.Equal(got, first) {
		t.Fatalf("first message mismatch: got %x want %x", got, first)
	}

	got, err = ReadMessage(r)
	if err != nil {
		t.Fatalf("ReadMessage second: %v", err)
	}
	if !bytes.Equal(got, second) {
		t.Fatalf("second message mismatch: got %x want %x", got, second)
	}

	if _, err = ReadMessage(r); err != io.EOF {
		t.Fatalf("expected EOF after last message, got %v", err)
	}
}

func TestReadMessageInvalidLength(t *testing.T) {
	msg := frame(nil)
	msg[3] = 8 // below the header size
	if _, err := ReadMessage(bytes.NewReader(msg)); err == nil {
		t.Fatal("expected framing error for undersized length")
	}
}

func TestReadMessageTruncatedBody(t *testing.T) {
	msg := frame(make([]byte, 64))
	if _, err := ReadMessage(bytes.NewReader(msg[:40])); err == nil {
		t.Fatal("expected error for truncated body")
	}
}

func TestReadMessageLargerThanPool(t *testing.T) {
	body := make([]byte, pooledBufferSize+100)
	for i := range body {
		body[i] = byte(i)
	}
	msg := frame(body)
	got, err := ReadMessage(bytes.NewReader(msg))
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	if !bytes.Equal(got, msg) {
		t.Fatal("oversized message corrupted")
	}
}
