package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/daemonctl/internal/config"
	"github.com/danmuck/daemonctl/internal/daemon"
	"github.com/danmuck/daemonctl/internal/logging"
	"github.com/danmuck/daemonctl/internal/query"
)

func main() {
	logging.ConfigureRuntime()
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "daemonctl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("daemonctl", flag.ContinueOnError)
	socketFlag := fs.String("socket", "", "daemon unix socket path")
	configFlag := fs.String("config", "", "client config TOML path")
	timeoutFlag := fs.Duration("timeout", 0, "per-query deadline (0 uses the configured default)")
	chunkFlag := fs.Int("chunk-size", 0, "reader transport pull size (0 uses the default)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	queryText := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if queryText == "" {
		return errors.New("no query text given")
	}

	cfg := config.DefaultClientConfig()
	if *configFlag != "" {
		loaded, err := config.LoadClientConfig(*configFlag)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *socketFlag != "" {
		cfg.Socket = *socketFlag
	}
	if *chunkFlag > 0 {
		cfg.ChunkSize = *chunkFlag
	}
	if strings.TrimSpace(cfg.Socket) == "" {
		return errors.New("daemon socket path required (-socket flag or config)")
	}

	timeout := cfg.TimeoutDuration()
	if *timeoutFlag > 0 {
		timeout = *timeoutFlag
	}
	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	traceID := uuid.NewString()
	log.Debug().Str("trace_id", traceID).Str("socket", cfg.Socket).Str("query", queryText).Msg("daemonctl query")

	var opts []daemon.Option
	if cfg.ChunkSize > 0 {
		opts = append(opts, daemon.WithChunkSize(cfg.ChunkSize))
	}
	response, err := query.Execute(ctx, cfg.Socket, queryText, opts...)
	if err != nil {
		var invalid *query.InvalidResponseError
		if errors.As(err, &invalid) {
			log.Error().Str("trace_id", traceID).Str("raw", invalid.Raw).Msg("invalid daemon response")
		}
		return err
	}
	return printPayload(os.Stdout, response.Payload)
}

func printPayload(w io.Writer, payload json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, payload, "", "  "); err != nil {
		// Payload is opaque here; echo it as received when it will not
		// re-indent.
		_, err = fmt.Fprintln(w, string(payload))
		return err
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}
