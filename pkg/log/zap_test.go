package log_test

import (
	"context"
	"testing"

	"questlog/pkg/log"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name string
		cfg  log.ZapConfig
	}{
		{name: "Console debug", cfg: log.ZapConfig{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, ColorEnabled: true}},
		{name: "JSON production", cfg: log.ZapConfig{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON}},
		{name: "Unknown level", cfg: log.ZapConfig{Level: "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := log.Init(tt.cfg)
			if l == nil {
				t.Fatal("expected logger")
			}
			l.Infof(context.Background(), "logger initialized: %s", tt.name)
		})
	}
}

func TestRequestID(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-1")
	if got := log.RequestID(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
	if got := log.RequestID(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
}
