package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func setupFile(t *testing.T, level string) string {
	t.Helper()
	logFile := filepath.Join(t.TempDir(), level+".log")

	err := Setup(Options{
		Level: level,
		File:  logFile,
		Rotation: Rotation{
			MaxSizeMB:  10,
			MaxBackups: 1,
			MaxAgeDays: 1,
		},
	})
	if err != nil {
		t.Fatalf("failed to set up logger: %v", err)
	}
	return logFile
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	Sync()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	return string(content)
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := setupFile(t, tt.level)

			Log.Debug("debug message")
			Info("info message")
			Log.Warn("warn message")
			Error("error message")

			logContent := readLog(t, logFile)
			for _, exp := range tt.expected {
				if !strings.Contains(logContent, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(logContent, exc) {
					t.Errorf("unexpected %s in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	if err := Setup(Options{Level: "loud"}); err == nil {
		t.Error("expected an error for level \"loud\"")
	}
}

func TestNamed(t *testing.T) {
	logFile := setupFile(t, "info")

	Named("scene").Info("mirror wall selected", zap.String("wall", "floor"))

	logContent := readLog(t, logFile)
	for _, want := range []string{"scene", "mirror wall selected", "floor"} {
		if !strings.Contains(logContent, want) {
			t.Errorf("expected %q in log output, got %q", want, logContent)
		}
	}
}

func TestLoggingBeforeInit(t *testing.T) {
	saved := Log
	defer func() { Log, Sugar = saved, saved.Sugar() }()

	Log = zap.NewNop()
	Sugar = Log.Sugar()

	// Must not panic.
	Info("dropped")
	Named("camera").Debug("dropped")
	Sync()
}

func TestValidLevel(t *testing.T) {
	for _, l := range Levels {
		if !ValidLevel(l) {
			t.Errorf("ValidLevel(%q) = false", l)
		}
	}
	for _, l := range []string{"", "trace", "INFO", "fatal"} {
		if ValidLevel(l) {
			t.Errorf("ValidLevel(%q) = true", l)
		}
	}
}

func TestDefaultRotation(t *testing.T) {
	r := DefaultRotation()

	if r.MaxSizeMB != 50 {
		t.Errorf("expected MaxSizeMB 50, got %d", r.MaxSizeMB)
	}
	if r.MaxBackups != 3 {
		t.Errorf("expected MaxBackups 3, got %d", r.MaxBackups)
	}
	if !r.Compress {
		t.Error("expected Compress to be true")
	}
}
