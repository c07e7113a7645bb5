package channel

import "io"

// BytesWriter is the write side of one byte-oriented channel.
type BytesWriter interface {
	// Write hands data to the transport before returning; nothing stays
	// buffered past the call.
	Write(data []byte) error

	// Close shuts the transport down and returns once the shutdown is
	// acknowledged. Callers must call it at most once.
	Close() error
}

type flusher interface {
	Flush() error
}

// StreamWriter writes straight through to a raw transport. If the
// transport exposes Flush, every write is flushed before returning.
type StreamWriter struct {
	dst io.WriteCloser
}

func NewStreamWriter(dst io.WriteCloser) *StreamWriter {
	return &StreamWriter{dst: dst}
}

func (w *StreamWriter) Write(data []byte) error {
	if _, err := w.dst.Write(data); err != nil {
		return err
	}
	if f, ok := w.dst.(flusher); ok {
		return f.Flush()
	}
	return nil
}

func (w *StreamWriter) Close() error {
	return w.dst.Close()
}
