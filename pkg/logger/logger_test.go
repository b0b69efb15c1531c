package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestLoggerInit(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	logger := Get()
	if logger == nil {
		t.Fatal("logger is nil after initialization")
	}
}

func TestLoggerBasic(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	logger := Get()
	if logger == nil {
		t.Fatal("logger is nil")
	}

	ctx := context.Background()
	logger.Info(ctx, "test message", String("k", "v"))
	logger.Debug(ctx, "debug message", Int("count", 3))
	logger.Warn(ctx, "warn message", Float64("ratio", 0.5))
	logger.Error(ctx, "error message", Any("payload", map[string]int{"a": 1}))
}

func TestLoggerNamed(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	namedLogger := Named("test")
	if namedLogger == nil {
		t.Fatal("named logger is nil")
	}

	namedLogger.Info(context.Background(), "test message")
}

func TestSetLevelString(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	cases := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "", want: slog.LevelInfo},
		{in: "verbose", wantErr: true},
	}
	for _, tc := range cases {
		err := SetLevelString(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("SetLevelString(%q): expected error, got nil", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("SetLevelString(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got := levelVar.Level(); got != tc.want {
			t.Errorf("SetLevelString(%q): level = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestErrorField(t *testing.T) {
	f := Error(context.DeadlineExceeded)
	if f.Key != "error" {
		t.Errorf("Error field key = %q, want %q", f.Key, "error")
	}
	if f.Value != context.DeadlineExceeded {
		t.Errorf("Error field value = %v, want %v", f.Value, context.DeadlineExceeded)
	}
}
