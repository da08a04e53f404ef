package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf)

	if logger.config.level != LevelInfo {
		t.Errorf("expected default level Info, got %v", logger.config.level)
	}
	if logger.config.caller {
		t.Error("expected caller info disabled by default")
	}
	if logger.config.format != FormatText {
		t.Errorf("expected default format text, got %v", logger.config.format)
	}
}

func TestLogger_Make_WithLevel_FiltersMessages(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithLevel(LevelDebug))

	logger.Debug("debug message")
	if !strings.Contains(buf.String(), "debug message") {
		t.Error("debug message not logged after setting level to Debug")
	}

	buf.Reset()
	logger2 := Make(&buf, WithLevel(LevelError))
	logger2.Info("info message")
	if buf.Len() > 0 {
		t.Error("info message logged when level is Error")
	}

	logger2.Error("error message")
	if !strings.Contains(buf.String(), "error message") {
		t.Error("error message not logged at Error level")
	}
}

func TestLogger_Trace_RequiresTraceLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithLevel(LevelDebug))

	logger.Trace("trace message")
	if buf.Len() > 0 {
		t.Error("trace message logged when level is Debug")
	}

	buf.Reset()
	logger2 := Make(&buf, WithLevel(LevelTrace), WithPretty(false))
	logger2.Trace("trace message")

	output := buf.String()
	if !strings.Contains(output, "trace message") {
		t.Error("trace message not logged at Trace level")
	}
	if !strings.Contains(output, "TRACE") {
		t.Errorf("expected TRACE level label, got: %s", output)
	}
}

func TestLogger_ZeroValue_IsNoOp(t *testing.T) {
	var logger Logger

	// Must not panic.
	logger.Trace("trace")
	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	if logger.Level() != DefaultLevel {
		t.Errorf("zero value Level() = %v, want %v", logger.Level(), DefaultLevel)
	}
	if logger.Format() != DefaultFormat {
		t.Errorf("zero value Format() = %v, want %v", logger.Format(), DefaultFormat)
	}
}

func TestLogger_Make_WithFormat_SetsOutputFormat(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := Make(&buf, WithFormat(FormatJSON), WithPretty(false))
		logger.Info("test message", slog.String("key", "value"))

		var result map[string]any
		if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
			t.Fatalf("failed to parse JSON output: %v", err)
		}
		if result["msg"] != "test message" {
			t.Errorf("expected msg=test message, got %v", result["msg"])
		}
		if result["key"] != "value" {
			t.Errorf("expected key=value, got %v", result["key"])
		}
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		logger := Make(&buf, WithFormat(FormatText), WithPretty(false))
		logger.Info("test message", slog.String("key", "value"))

		output := buf.String()
		if !strings.Contains(output, "msg=\"test message\"") {
			t.Errorf("expected text key=value pairs, got: %s", output)
		}
		if !strings.Contains(output, "key=value") {
			t.Errorf("expected attribute in output, got: %s", output)
		}
	})
}

func TestLogger_Make_WithCaller_IncludesSourceInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithCaller(true), WithPretty(false))
	logger.Info("test message")

	output := buf.String()
	if !strings.Contains(output, "log_test.go") {
		t.Errorf("caller info not included when enabled, got: %s", output)
	}

	buf.Reset()
	logger2 := Make(&buf, WithCaller(false), WithPretty(false))
	logger2.Info("test message")

	output = buf.String()
	if strings.Contains(output, "log_test.go") {
		t.Errorf("caller info included when disabled, got: %s", output)
	}
}

func TestLogger_Make_WithTimeLayout_DisablesTimestamps(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithTimeLayout("none"), WithPretty(false))
	logger.Info("test")

	if strings.Contains(buf.String(), "time=") {
		t.Errorf("timestamp present with layout \"none\": %s", buf.String())
	}
}

func TestLogger_With_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithPretty(false)).
		With(slog.String("component", "lexer"))

	logger.Info("tokenized")

	output := buf.String()
	if !strings.Contains(output, "component=lexer") {
		t.Errorf("expected bound attribute in output, got: %s", output)
	}
}

func TestLogger_Wrap_OverridesConfiguration(t *testing.T) {
	var base bytes.Buffer
	var wrapped bytes.Buffer

	logger := Make(&base, WithLevel(LevelError))

	logger2 := logger.Wrap(WithOutput(&wrapped), WithLevel(LevelDebug))
	logger2.Debug("wrapped message")

	if base.Len() > 0 {
		t.Error("wrapped logger wrote to original output")
	}
	if !strings.Contains(wrapped.String(), "wrapped message") {
		t.Error("wrapped logger did not honor overridden level")
	}

	// Original logger keeps its configuration.
	logger.Debug("base message")
	if base.Len() > 0 {
		t.Error("original logger level mutated by Wrap")
	}
}
