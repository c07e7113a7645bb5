package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/daemonctl/internal/channel"
	"github.com/danmuck/daemonctl/internal/daemon"
	"github.com/danmuck/daemonctl/internal/logging"
	"github.com/danmuck/daemonctl/internal/query"
)

func main() {
	logging.ConfigureRuntime()
	socketFlag := flag.String("socket", "", "daemon unix socket path")
	flag.Parse()
	if strings.TrimSpace(*socketFlag) == "" {
		fmt.Fprintln(os.Stderr, "daemonsh: -socket required")
		os.Exit(1)
	}

	in, out := daemon.Stdio()
	if err := runShell(context.Background(), *socketFlag, in, out); err != nil {
		fmt.Fprintf(os.Stderr, "daemonsh: %v\n", err)
		os.Exit(1)
	}
}

// runShell sends one daemon query per input line until the input stream
// ends, writing one payload line per response.
func runShell(ctx context.Context, socketPath string, in *channel.TextReader, out *channel.TextWriter) error {
	for {
		line, err := in.ReadLine()
		if err != nil {
			return err
		}
		if line == "" {
			// Input exhausted: ReadLine hands back an empty partial.
			return nil
		}
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		response, err := query.Execute(ctx, socketPath, text)
		if err != nil {
			log.Error().Err(err).Str("query", text).Msg("query failed")
			if werr := out.Write(fmt.Sprintf("error: %v\n", err)); werr != nil {
				return werr
			}
			continue
		}
		if err := out.Write(string(response.Payload) + "\n"); err != nil {
			return err
		}
	}
}
