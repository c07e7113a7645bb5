package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPrintPayloadIndents(t *testing.T) {
	var out bytes.Buffer
	if err := printPayload(&out, json.RawMessage(`{"a":1,"b":[2,3]}`)); err != nil {
		t.Fatalf("print: %v", err)
	}
	if !strings.Contains(out.String(), "\"a\": 1") {
		t.Fatalf("payload not indented: %q", out.String())
	}
	if !strings.HasSuffix(out.String(), "\n") {
		t.Fatalf("missing trailing newline: %q", out.String())
	}
}

func TestRunRequiresQueryText(t *testing.T) {
	err := run([]string{"-socket", "/tmp/d.sock"})
	if err == nil || !strings.Contains(err.Error(), "no query text") {
		t.Fatalf("expected missing query error, got %v", err)
	}
}

func TestRunRequiresSocket(t *testing.T) {
	err := run([]string{"types(x)"})
	if err == nil || !strings.Contains(err.Error(), "socket") {
		t.Fatalf("expected missing socket error, got %v", err)
	}
}

func TestRunEndToEnd(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "daemon.sock")
	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { _ = listener.Close() })
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		if _, err := bufio.NewReader(conn).ReadString('\n'); err != nil {
			return
		}
		_, _ = conn.Write([]byte(`["Query", {"ok": true}]` + "\n"))
	}()

	readEnd, writeEnd, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	origStdout := os.Stdout
	os.Stdout = writeEnd
	defer func() { os.Stdout = origStdout }()

	runErr := run([]string{"-socket", socketPath, "-timeout", "5s", "status()"})
	_ = writeEnd.Close()
	os.Stdout = origStdout

	if runErr != nil {
		t.Fatalf("run: %v", runErr)
	}
	var out bytes.Buffer
	if _, err := out.ReadFrom(readEnd); err != nil {
		t.Fatalf("read stdout: %v", err)
	}
	if !strings.Contains(out.String(), `"ok": true`) {
		t.Fatalf("payload not printed: %q", out.String())
	}
}
