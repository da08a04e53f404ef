package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultLoggerConfig(t *testing.T) {
	saved := defaultLog
	defer func() { defaultLog = saved }()

	var buf bytes.Buffer

	Config(WithOutput(&buf), WithLevel(LevelDebug), WithPretty(false))

	Debug("package-level debug")
	if !strings.Contains(buf.String(), "package-level debug") {
		t.Errorf("default logger did not honor Config, got: %s", buf.String())
	}

	buf.Reset()

	Config(WithLevel(LevelError))

	Info("suppressed")
	if buf.Len() > 0 {
		t.Errorf("info logged after raising level to Error: %s", buf.String())
	}

	Error("surfaced")
	if !strings.Contains(buf.String(), "surfaced") {
		t.Errorf("error not logged at Error level, got: %s", buf.String())
	}
}

func TestDefaultLoggerWith(t *testing.T) {
	saved := defaultLog
	defer func() { defaultLog = saved }()

	var buf bytes.Buffer

	Config(WithOutput(&buf), WithPretty(false))

	logger := With(slog.String("session", "test"))
	logger.Info("bound")

	if !strings.Contains(buf.String(), "session=test") {
		t.Errorf("bound attribute missing, got: %s", buf.String())
	}
}
