package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"DEBUG", slog.LevelDebug, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v, err=%v", tt.input, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestMultiHandler(t *testing.T) {
	var debugBuf, infoBuf bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewJSONHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)
	logger := slog.New(h).With("service", "test")

	logger.Debug("only debug sink", "k", 1)
	logger.Info("both sinks", "k", 2)

	if !strings.Contains(debugBuf.String(), "only debug sink") || !strings.Contains(debugBuf.String(), "both sinks") {
		t.Errorf("debug sink = %q", debugBuf.String())
	}
	if strings.Contains(infoBuf.String(), "only debug sink") || !strings.Contains(infoBuf.String(), `"service":"test"`) {
		t.Errorf("info sink = %q", infoBuf.String())
	}
	if h.Enabled(context.Background(), slog.LevelDebug-4) {
		t.Error("no handler accepts levels below debug")
	}
}
