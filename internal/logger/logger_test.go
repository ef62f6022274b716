package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lshigami/qa-service/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestInitWritesDebugToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	closer, err := Init(config.Log{Level: "warn", Format: "json", File: path})
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	log.Debug().Msg("debug-line")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "debug-line") {
		t.Fatalf("expected debug event in file, got %q", data)
	}
}

func TestInitFallsBackToInfo(t *testing.T) {
	closer, err := Init(config.Log{Level: "nonsense"})
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	defer closer.Close()

	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Fatalf("expected info level, got %s", zerolog.GlobalLevel())
	}
}

func TestLevelFilter(t *testing.T) {
	var sb strings.Builder
	f := &levelFilter{w: &sb, min: zerolog.WarnLevel}

	if _, err := f.WriteLevel(zerolog.InfoLevel, []byte("info\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := f.WriteLevel(zerolog.ErrorLevel, []byte("error\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if sb.String() != "error\n" {
		t.Fatalf("expected only the error line, got %q", sb.String())
	}
}
