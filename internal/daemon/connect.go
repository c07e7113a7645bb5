// Package daemon owns the connection lifecycle against a local daemon.
//
// Ownership boundary:
// - unix domain socket dialing and teardown
// - channel pair construction
// - standard-stream adaptation
package daemon

import (
	"context"
	"net"
	"os"

	"github.com/danmuck/daemonctl/internal/channel"
)

// Option adjusts how a connection's channel pair is constructed.
type Option func(*options)

type options struct {
	chunkSize int
}

// WithChunkSize overrides the reader's transport pull size.
func WithChunkSize(n int) Option {
	return func(o *options) { o.chunkSize = n }
}

// Connection is one open duplex transport to a daemon socket. It is
// exclusively owned by the task that created it and lives for a single
// logical session.
type Connection struct {
	conn   net.Conn
	reader channel.BytesReader
	writer channel.BytesWriter
	stop   func() bool
	closed bool
}

// Connect dials the unix domain socket at socketPath and wraps it in a
// channel pair. Dial failure surfaces the underlying OS error untouched.
// Cancelling ctx while a read or write is suspended closes the socket,
// unblocking the operation; bytes buffered at that point are discarded.
func Connect(ctx context.Context, socketPath string, opts ...Option) (*Connection, error) {
	o := options{chunkSize: channel.DefaultChunkSize}
	for _, opt := range opts {
		opt(&o)
	}
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "unix", socketPath)
	if err != nil {
		return nil, err
	}
	c := &Connection{
		conn:   conn,
		reader: channel.NewStreamReaderSize(conn, o.chunkSize),
		writer: channel.NewStreamWriter(conn),
	}
	c.stop = context.AfterFunc(ctx, func() { _ = conn.Close() })
	return c, nil
}

func (c *Connection) Reader() channel.BytesReader { return c.reader }

func (c *Connection) Writer() channel.BytesWriter { return c.writer }

// Close shuts the writer down. Only the first call reaches the
// transport; later calls are no-ops.
func (c *Connection) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.stop()
	return c.writer.Close()
}

// WithConnection runs fn against a freshly dialed channel pair and
// guarantees the writer is closed exactly once on every exit path:
// normal return, error, panic, or context cancellation.
func WithConnection(ctx context.Context, socketPath string, fn func(channel.BytesReader, channel.BytesWriter) error, opts ...Option) (err error) {
	conn, err := Connect(ctx, socketPath, opts...)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := conn.Close()
		if err == nil {
			err = closeErr
		}
	}()
	return fn(conn.Reader(), conn.Writer())
}

// WithTextConnection is WithConnection with the pair adapted to UTF-8
// text channels.
func WithTextConnection(ctx context.Context, socketPath string, fn func(*channel.TextReader, *channel.TextWriter) error, opts ...Option) error {
	return WithConnection(ctx, socketPath, func(reader channel.BytesReader, writer channel.BytesWriter) error {
		return fn(channel.NewTextReader(reader), channel.NewTextWriter(writer))
	}, opts...)
}

// Stdio adapts the process's inherited standard streams into a text
// channel pair, so protocol code written against the channel contracts
// runs unchanged over pipes instead of a socket.
func Stdio() (*channel.TextReader, *channel.TextWriter) {
	reader := channel.NewTextReader(channel.NewStreamReader(os.Stdin))
	writer := channel.NewTextWriter(channel.NewStreamWriter(os.Stdout))
	return reader, writer
}
