package channel

import "bytes"

// MemoryReader serves reads from a fixed in-memory byte sequence. It
// implements BytesReader for tests and for replaying captured streams.
type MemoryReader struct {
	data   []byte
	cursor int
}

func NewMemoryReader(data []byte) *MemoryReader {
	return &MemoryReader{data: data}
}

func (r *MemoryReader) ReadUntil(separator []byte) ([]byte, error) {
	if len(separator) == 0 {
		return []byte{}, nil
	}
	idx := bytes.Index(r.data[r.cursor:], separator)
	if idx < 0 {
		return nil, r.drain(-1)
	}
	end := r.cursor + idx + len(separator)
	out := append([]byte(nil), r.data[r.cursor:end]...)
	r.cursor = end
	return out, nil
}

func (r *MemoryReader) ReadExactly(count int) ([]byte, error) {
	if count < 0 {
		return nil, ErrNegativeCount
	}
	if count == 0 {
		return []byte{}, nil
	}
	if len(r.data)-r.cursor < count {
		return nil, r.drain(count)
	}
	end := r.cursor + count
	out := append([]byte(nil), r.data[r.cursor:end]...)
	r.cursor = end
	return out, nil
}

func (r *MemoryReader) ReadLine() ([]byte, error) {
	return recoverPartial(r.ReadUntil(lineSeparator))
}

// Reset rewinds the cursor to the start of the seed bytes.
func (r *MemoryReader) Reset() {
	r.cursor = 0
}

func (r *MemoryReader) drain(expected int) error {
	partial := append([]byte(nil), r.data[r.cursor:]...)
	r.cursor = len(r.data)
	return &IncompleteReadError{Partial: partial, Expected: expected}
}

// MemoryWriter records every write for later inspection.
type MemoryWriter struct {
	items  [][]byte
	closed bool
}

func NewMemoryWriter() *MemoryWriter {
	return &MemoryWriter{}
}

func (w *MemoryWriter) Write(data []byte) error {
	if w.closed {
		return ErrWriterClosed
	}
	w.items = append(w.items, append([]byte(nil), data...))
	return nil
}

func (w *MemoryWriter) Close() error {
	if w.closed {
		return ErrWriterClosed
	}
	w.closed = true
	return nil
}

// Items returns each write as it was handed to the writer, in order.
func (w *MemoryWriter) Items() [][]byte {
	return w.items
}

// Bytes returns every write concatenated in order.
func (w *MemoryWriter) Bytes() []byte {
	var out []byte
	for _, item := range w.items {
		out = append(out, item...)
	}
	return out
}
