package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/preston-bernstein/lol-match-coach/internal/config"
)

// main must return immediately under SKIP_SERVER_RUN so test runs never bind ports.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestNewLoggerTagsServiceAndVersion(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Config{Version: "0.3.1", Log: config.LogConfig{Level: "info", Format: "json"}}

	newLogger(cfg, &buf).Info("starting")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected json log line, got %q: %v", buf.String(), err)
	}
	if line["service"] != appName || line["version"] != "0.3.1" {
		t.Fatalf("unexpected common fields %v", line)
	}
}
