package channel

import (
	"errors"
	"testing"
)

func TestTextRoundTrip(t *testing.T) {
	sink := NewMemoryWriter()
	writer := NewTextWriter(sink)
	if err := writer.Write("héllo wörld ∅\n"); err != nil {
		t.Fatalf("write: %v", err)
	}

	reader := NewTextReader(NewMemoryReader(sink.Bytes()))
	out, err := reader.ReadLine()
	if err != nil {
		t.Fatalf("read line: %v", err)
	}
	if out != "héllo wörld ∅\n" {
		t.Fatalf("round trip mismatch: %q", out)
	}
}

func TestTextReaderMethods(t *testing.T) {
	reader := NewTextReader(NewMemoryReader([]byte("xyzuvw\n")))
	out, err := reader.ReadUntil("z")
	if err != nil || out != "xyz" {
		t.Fatalf("read until: %q %v", out, err)
	}
	out, err = reader.ReadExactly(2)
	if err != nil || out != "uv" {
		t.Fatalf("read exactly: %q %v", out, err)
	}
	out, err = reader.ReadLine()
	if err != nil || out != "w\n" {
		t.Fatalf("read line: %q %v", out, err)
	}
}

func TestTextReaderReplacesUndecodableBytes(t *testing.T) {
	// "∅\n" encoded as UTF-16LE with BOM, read back as UTF-8. Every
	// invalid byte decodes to one replacement rune; the read never
	// hard-fails.
	seed := []byte{0xff, 0xfe, 0x05, 0x22, 0x0a, 0x00}
	reader := NewTextReader(NewMemoryReader(seed))
	out, err := reader.ReadLine()
	if err != nil {
		t.Fatalf("read line: %v", err)
	}
	if out != "��\x05\"\n" {
		t.Fatalf("replacement decode mismatch: %q", out)
	}
}

func TestTextReaderIncompletePropagates(t *testing.T) {
	reader := NewTextReader(NewMemoryReader([]byte("abc")))
	_, err := reader.ReadUntil("d")
	var incomplete *IncompleteReadError
	if !errors.As(err, &incomplete) {
		t.Fatalf("expected IncompleteReadError, got %v", err)
	}
	if string(incomplete.Partial) != "abc" {
		t.Fatalf("partial mismatch: %q", incomplete.Partial)
	}
}

func TestTextWriterCloseReachesChannel(t *testing.T) {
	sink := NewMemoryWriter()
	writer := NewTextWriter(sink)
	if err := writer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := sink.Write([]byte("late")); !errors.Is(err, ErrWriterClosed) {
		t.Fatalf("expected closed channel, got %v", err)
	}
}
