package logger

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestFromContext_ReturnsStoredLogger(t *testing.T) {
	stored := zap.NewExample()
	ctx := ContextWithLogger(context.Background(), stored)

	if got := FromContext(ctx, zap.NewNop()); got != stored {
		t.Error("expected the stored logger, got a different instance")
	}
}

func TestFromContext_FallsBack(t *testing.T) {
	fallback := zap.NewExample()

	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Error("expected the fallback logger when none is stored")
	}
}

func TestFromContext_NilFallbackYieldsNop(t *testing.T) {
	got := FromContext(context.Background(), nil)
	if got == nil {
		t.Fatal("expected a usable logger, got nil")
	}
	// Must not panic on use.
	got.Info("noop")
}

func TestNewLogger_Environments(t *testing.T) {
	tests := []struct {
		env     string
		wantErr bool
	}{
		{"prod", false},
		{"local", false},
		{"dev", false},
		{"docker", false},
		{"staging", true},
		{"", true},
	}

	for _, tc := range tests {
		t.Run(tc.env, func(t *testing.T) {
			l, err := NewLogger(tc.env)
			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error for env %q", tc.env)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewLogger(%q) failed: %v", tc.env, err)
			}
			if l == nil {
				t.Fatal("expected a logger")
			}
		})
	}
}

func TestNewLogger_LevelOverride(t *testing.T) {
	l, err := NewLogger("prod", "debug")
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	if !l.Core().Enabled(zap.DebugLevel) {
		t.Error("expected debug level to be enabled after override")
	}

	if _, err := NewLogger("prod", "verbose"); err == nil {
		t.Error("expected error for unknown level name")
	}
}
