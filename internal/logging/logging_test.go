package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var lineRe = regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \{[\w.-]+\.go:\d+\} [A-Z]+ - `)

func TestBatchHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewBatchHandler(&buf, slog.LevelDebug))

	logger.Error("could not load /data/mof.cif")

	line := buf.String()
	if !lineRe.MatchString(line) {
		t.Errorf("line %q does not match the batch-log format", line)
	}
	if !strings.Contains(line, "ERROR - could not load /data/mof.cif") {
		t.Errorf("line %q missing level and message", line)
	}
}

func TestBatchHandlerAttrs(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf, slog.LevelDebug)

	New("pipeline").Info("featurized", slog.Int("sites", 4))

	line := buf.String()
	if !strings.Contains(line, "component=pipeline") {
		t.Errorf("line %q missing component attr", line)
	}
	if !strings.Contains(line, "sites=4") {
		t.Errorf("line %q missing record attr", line)
	}
}

func TestBatchHandlerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewBatchHandler(&buf, slog.LevelWarn))

	logger.Info("suppressed")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Error("info line should have been filtered")
	}
	if !strings.Contains(out, "kept") {
		t.Error("warn line should have been written")
	}
}

func TestInitCreatesLogFile(t *testing.T) {
	dir := t.TempDir()
	f, err := Init(dir, slog.LevelInfo)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer f.Close()

	slog.Error("boom")

	data, err := os.ReadFile(filepath.Join(dir, "log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "ERROR - boom") {
		t.Errorf("log file content %q missing error line", data)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
