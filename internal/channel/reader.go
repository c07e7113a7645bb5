package channel

import (
	"bytes"
	"io"
)

// DefaultChunkSize is the transport pull size used when no override is given.
const DefaultChunkSize = 4096

var lineSeparator = []byte{'\n'}

// BytesReader is the read side of one byte-oriented channel. An
// implementation owns a cursor into the underlying stream; every
// successful call advances the cursor by exactly the bytes returned and
// no byte is ever returned twice.
type BytesReader interface {
	// ReadUntil consumes and returns all bytes up to and including the
	// first occurrence of separator. If the stream ends before the
	// separator appears, it fails with *IncompleteReadError carrying the
	// bytes consumed so far.
	ReadUntil(separator []byte) ([]byte, error)

	// ReadExactly consumes and returns exactly count bytes. If the
	// stream ends after fewer, it fails with *IncompleteReadError
	// carrying them.
	ReadExactly(count int) ([]byte, error)

	// ReadLine reads through the next '\n'. At stream end the
	// unterminated remainder is returned as a successful partial line.
	ReadLine() ([]byte, error)
}

// StreamReader buffers reads from a raw transport. It pulls the
// transport in bounded chunks rather than slurping whole messages, and
// correctly matches separators that straddle chunk boundaries.
type StreamReader struct {
	src   io.Reader
	buf   []byte
	chunk int
	err   error
}

// NewStreamReader wraps src with the default chunk size.
func NewStreamReader(src io.Reader) *StreamReader {
	return NewStreamReaderSize(src, DefaultChunkSize)
}

// NewStreamReaderSize wraps src pulling at most chunkSize bytes per
// transport read. Non-positive sizes fall back to DefaultChunkSize.
func NewStreamReaderSize(src io.Reader, chunkSize int) *StreamReader {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &StreamReader{src: src, chunk: chunkSize}
}

func (r *StreamReader) ReadUntil(separator []byte) ([]byte, error) {
	if len(separator) == 0 {
		return []byte{}, nil
	}
	searched := 0
	for {
		// Rescan only the tail, backed up far enough to catch a
		// separator straddling the previous chunk boundary.
		start := searched - len(separator) + 1
		if start < 0 {
			start = 0
		}
		if idx := bytes.Index(r.buf[start:], separator); idx >= 0 {
			end := start + idx + len(separator)
			return r.consume(end), nil
		}
		searched = len(r.buf)
		if err := r.fill(); err != nil {
			return nil, r.incomplete(err, -1)
		}
	}
}

func (r *StreamReader) ReadExactly(count int) ([]byte, error) {
	if count < 0 {
		return nil, ErrNegativeCount
	}
	if count == 0 {
		return []byte{}, nil
	}
	for len(r.buf) < count {
		if err := r.fill(); err != nil {
			return nil, r.incomplete(err, count)
		}
	}
	return r.consume(count), nil
}

func (r *StreamReader) ReadLine() ([]byte, error) {
	return recoverPartial(r.ReadUntil(lineSeparator))
}

// consume removes and returns the first n buffered bytes.
func (r *StreamReader) consume(n int) []byte {
	out := r.buf[:n:n]
	r.buf = r.buf[n:]
	return out
}

// fill pulls one bounded chunk from the transport into the buffer.
func (r *StreamReader) fill() error {
	if r.err != nil {
		err := r.err
		r.err = nil
		return err
	}
	chunk := make([]byte, r.chunk)
	n, err := r.src.Read(chunk)
	if n > 0 {
		r.buf = append(r.buf, chunk[:n]...)
		// Surface the error on the next pull so the bytes that
		// arrived with it are not lost.
		r.err = err
		return nil
	}
	if err == nil {
		err = io.EOF
	}
	return err
}

// incomplete drains the buffer into an *IncompleteReadError for
// end-of-stream; transport failures pass through untouched.
func (r *StreamReader) incomplete(err error, expected int) error {
	if err != io.EOF {
		return err
	}
	partial := r.buf
	r.buf = nil
	if partial == nil {
		partial = []byte{}
	}
	return &IncompleteReadError{Partial: partial, Expected: expected}
}
