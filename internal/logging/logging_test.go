package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenWritesToFile(t *testing.T) {
	opts := DefaultOptions()
	opts.Path = filepath.Join(t.TempDir(), "logs", "pong.log")

	logger, closer, err := Open(opts)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	logger.Info("level changed", "level", 2)
	logger.Debug("hidden at info level")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(opts.Path)
	if err != nil {
		t.Fatalf("log file missing: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "level changed") || !strings.Contains(out, "pong") {
		t.Errorf("unexpected log output %q", out)
	}
	if strings.Contains(out, "hidden at info level") {
		t.Error("debug message should be filtered at info level")
	}
}

func TestOpenWithoutPathDiscards(t *testing.T) {
	logger, closer, err := Open(Options{})
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	logger.Info("nowhere")
	if err := closer.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestOpenRejectsUnknownLevel(t *testing.T) {
	if _, _, err := Open(Options{Level: "loud"}); err == nil {
		t.Error("unknown level should fail")
	}
}
