// Package query owns the request/response exchange spoken to a daemon
// over a text channel: one ["Query", ...] envelope out, one back.
package query

import (
	"context"
	"encoding/json"

	"github.com/danmuck/daemonctl/internal/channel"
	"github.com/danmuck/daemonctl/internal/daemon"
)

// Tag is the first element of every request and response envelope.
const Tag = "Query"

// Request is one outbound query.
type Request struct {
	Text string
}

// MarshalLine serializes the ["Query", text] envelope as a single JSON
// line, newline terminated.
func (r Request) MarshalLine() (string, error) {
	raw, err := json.Marshal([]any{Tag, r.Text})
	if err != nil {
		return "", err
	}
	return string(raw) + "\n", nil
}

// Response carries the daemon's reply payload. The payload is opaque at
// this layer; callers interpret it.
type Response struct {
	Payload json.RawMessage
}

// ParseResponse decodes one response line against the envelope
// contract: a JSON array of two or more elements whose first element is
// the literal "Query". Anything else fails with *InvalidResponseError.
func ParseResponse(text string) (Response, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(text), &elements); err != nil {
		return Response{}, &InvalidResponseError{Raw: text, Cause: err}
	}
	if len(elements) < 2 {
		return Response{}, &InvalidResponseError{Raw: text}
	}
	var tag string
	if err := json.Unmarshal(elements[0], &tag); err != nil || tag != Tag {
		return Response{}, &InvalidResponseError{Raw: text}
	}
	return Response{Payload: elements[1]}, nil
}

// Exchange performs one query over an existing text channel pair: one
// write, one response line, one parse.
func Exchange(reader *channel.TextReader, writer *channel.TextWriter, queryText string) (Response, error) {
	line, err := Request{Text: queryText}.MarshalLine()
	if err != nil {
		return Response{}, err
	}
	if err := writer.Write(line); err != nil {
		return Response{}, err
	}
	raw, err := reader.ReadLine()
	if err != nil {
		return Response{}, err
	}
	return ParseResponse(raw)
}

// Execute runs one query against the daemon listening at socketPath.
// Strictly request/response: one connection per call, no pipelining, no
// retries. Connection teardown is guaranteed on every exit path.
func Execute(ctx context.Context, socketPath string, queryText string, opts ...daemon.Option) (Response, error) {
	var response Response
	err := daemon.WithTextConnection(ctx, socketPath, func(reader *channel.TextReader, writer *channel.TextWriter) error {
		result, err := Exchange(reader, writer, queryText)
		if err != nil {
			return err
		}
		response = result
		return nil
	}, opts...)
	if err != nil {
		return Response{}, err
	}
	return response, nil
}
