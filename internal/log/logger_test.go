package log

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func lastJSONLine(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var last string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			last = s
		}
	}
	if last == "" {
		t.Fatalf("no log lines in %q", data)
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(last), &m); err != nil {
		t.Fatalf("unmarshal %q: %v", last, err)
	}
	return m
}

func TestInit_JSONWriter(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "debug", Format: "json", Writer: &buf})
	t.Cleanup(func() { Init(Options{Format: "off"}) })

	l := WithOperation(WithComponent("storage"), "save")
	l.Debug("saved", slog.String("key", "notepad_content"))

	m := lastJSONLine(t, buf.Bytes())
	for k, want := range map[string]string{
		"app":       "notepad",
		"component": "storage",
		"op":        "save",
		"msg":       "saved",
		"key":       "notepad_content",
		"level":     "DEBUG",
	} {
		if got, _ := m[k].(string); got != want {
			t.Fatalf("%s: got %q, want %q", k, got, want)
		}
	}
	if _, ok := m["ver"].(string); !ok {
		t.Fatalf("missing ver attr in %v", m)
	}
}

func TestInit_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "info", Writer: &buf})
	t.Cleanup(func() { Init(Options{Format: "off"}) })

	L().Debug("hidden")
	L().WithGroup("doc").Warn("load failed", slog.String("reason", "bad json"), slog.Int("n", 3))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record should be filtered: %q", out)
	}
	for _, want := range []string{" WRN load failed", " app=notepad", `doc.reason="bad json"`, "doc.n=3"} {
		if !strings.Contains(out, want) {
			t.Fatalf("console output %q missing %q", out, want)
		}
	}
}

func TestInit_FileRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notepad.log")
	Init(Options{Level: "warn", Format: "off", File: path})
	t.Cleanup(func() {
		_ = Close()
		Init(Options{Format: "off"})
	})

	L().Info("skipped")
	L().Error("disk full", slog.String("store", "dir"))
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	m := lastJSONLine(t, data)
	if m["msg"] != "disk full" || m["store"] != "dir" {
		t.Fatalf("unexpected record: %v", m)
	}
	if strings.Contains(string(data), "skipped") {
		t.Fatalf("info record should be filtered at warn level")
	}
}

func TestInit_FanoutToConsoleAndFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "both.log")
	Init(Options{Format: "console", Writer: &buf, File: path})
	t.Cleanup(func() {
		_ = Close()
		Init(Options{Format: "off"})
	})

	L().Info("twice")
	_ = Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(buf.String(), "twice") || !strings.Contains(string(data), "twice") {
		t.Fatalf("record should reach both handlers: console=%q file=%q", buf.String(), data)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q): got %v, want %v", in, got, want)
		}
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("NOTEPAD_LOG_LEVEL", "debug")
	t.Setenv("NOTEPAD_LOG_FORMAT", "json")
	t.Setenv("NOTEPAD_LOG_SOURCE", "TRUE")
	t.Setenv("NOTEPAD_LOG_FILE", "/tmp/x.log")

	got := FromEnv()
	want := Options{Level: "debug", Format: "json", AddSource: true, File: "/tmp/x.log"}
	if got != want {
		t.Fatalf("FromEnv: got %+v, want %+v", got, want)
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("discard logger should not be enabled")
	}
	l.Error("nothing")
}
