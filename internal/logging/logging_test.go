package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, encoding := range []string{"json", "console"} {
		logger, err := New("debug", encoding)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", encoding, err)
		}
		if logger == nil {
			t.Fatalf("%s: expected logger instance", encoding)
		}
		if !logger.Core().Enabled(zapcore.DebugLevel) {
			t.Fatalf("%s: expected debug level to be enabled", encoding)
		}
		_ = logger.Sync()
	}
}

func TestNewRejectsInvalidSettings(t *testing.T) {
	if _, err := New("loud", "json"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if _, err := New("info", "xml"); err == nil {
		t.Fatalf("expected error for unknown encoding")
	}
}
