package channel

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// TextReader adapts one BytesReader to string reads through a fixed
// encoding. It owns the wrapped reader exclusively and buffers nothing
// of its own. Undecodable byte sequences surface as the encoding's
// replacement marker, never as a hard failure.
type TextReader struct {
	reader BytesReader
	enc    encoding.Encoding
}

// NewTextReader adapts reader with UTF-8.
func NewTextReader(reader BytesReader) *TextReader {
	return NewTextReaderEncoding(reader, unicode.UTF8)
}

func NewTextReaderEncoding(reader BytesReader, enc encoding.Encoding) *TextReader {
	return &TextReader{reader: reader, enc: enc}
}

func (r *TextReader) ReadUntil(separator string) (string, error) {
	sep, err := encodeText(r.enc, separator)
	if err != nil {
		return "", err
	}
	raw, err := r.reader.ReadUntil(sep)
	if err != nil {
		return "", err
	}
	return decodeText(r.enc, raw)
}

// ReadExactly reads count bytes (not runes) and decodes them.
func (r *TextReader) ReadExactly(count int) (string, error) {
	raw, err := r.reader.ReadExactly(count)
	if err != nil {
		return "", err
	}
	return decodeText(r.enc, raw)
}

func (r *TextReader) ReadLine() (string, error) {
	raw, err := r.reader.ReadLine()
	if err != nil {
		return "", err
	}
	return decodeText(r.enc, raw)
}

// TextWriter adapts one BytesWriter to string writes through a fixed
// encoding.
type TextWriter struct {
	writer BytesWriter
	enc    encoding.Encoding
}

// NewTextWriter adapts writer with UTF-8.
func NewTextWriter(writer BytesWriter) *TextWriter {
	return NewTextWriterEncoding(writer, unicode.UTF8)
}

func NewTextWriterEncoding(writer BytesWriter, enc encoding.Encoding) *TextWriter {
	return &TextWriter{writer: writer, enc: enc}
}

func (w *TextWriter) Write(data string) error {
	raw, err := encodeText(w.enc, data)
	if err != nil {
		return err
	}
	return w.writer.Write(raw)
}

func (w *TextWriter) Close() error {
	return w.writer.Close()
}

func decodeText(enc encoding.Encoding, raw []byte) (string, error) {
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func encodeText(enc encoding.Encoding, data string) ([]byte, error) {
	return enc.NewEncoder().Bytes([]byte(data))
}
