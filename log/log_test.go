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

	if logger.Level() != LevelWarn {
		t.Errorf("expected default level warn, got %v", logger.Level())
	}

	if logger.caller {
		t.Error("expected caller disabled by default")
	}

	if logger.Format() != FormatText {
		t.Errorf("expected default format text, got %v", logger.Format())
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
	logger = Make(&buf, WithLevel(LevelError))
	logger.Info("info message")
	if buf.Len() > 0 {
		t.Error("info message logged when level is Error")
	}

	logger.Error("error message")
	if !strings.Contains(buf.String(), "error message") {
		t.Error("error message not logged at Error level")
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithFormat(FormatJSON), WithLevel(LevelTrace))

	logger.Trace("loaded sprite", slog.String("sprite", "nav"), slog.Int("symbols", 2))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v: %s", err, buf.String())
	}

	if record["level"] != "TRACE" {
		t.Errorf("level = %v, want TRACE", record["level"])
	}

	if record["sprite"] != "nav" || record["symbols"] != float64(2) {
		t.Errorf("unexpected attributes: %v", record)
	}
}

func TestLogger_PrettyText(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithLevel(LevelInfo), WithTimeLayout("none"))

	logger.With(slog.String("command", "add")).
		Info("icon added", slog.Group("icon", slog.String("name", "bell")))

	got := buf.String()
	for _, want := range []string{"INFO", "icon added", "command=add", "icon.name=bell"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}

	// A bytes.Buffer is not a terminal: no escape sequences.
	if strings.Contains(got, "\x1b[") {
		t.Errorf("output contains ANSI escapes: %q", got)
	}
}

func TestLogger_WithCaller(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithCaller(true), WithPretty(false), WithLevel(LevelInfo))
	logger.Info("test message")

	if !strings.Contains(buf.String(), "log_test.go") {
		t.Errorf("caller not included: %s", buf.String())
	}
}

func TestLogger_Wrap_DoesNotAffectOriginal(t *testing.T) {
	var buf bytes.Buffer
	base := Make(&buf, WithLevel(LevelError))
	wrapped := base.Wrap(WithLevel(LevelDebug))

	base.Debug("hidden")
	if buf.Len() > 0 {
		t.Errorf("base logger logged below its level: %s", buf.String())
	}

	wrapped.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Error("wrapped logger did not apply new level")
	}
}

func TestLogger_ZeroValue_Safety(t *testing.T) {
	var logger Logger

	logger.Info("ignored")
	logger = logger.With(slog.String("k", "v"))

	if logger.Level() != DefaultLevel || logger.Format() != DefaultFormat {
		t.Error("zero value logger does not report defaults")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", DefaultLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat(" JSON ") != FormatJSON {
		t.Error("ParseFormat did not accept padded uppercase json")
	}

	if ParseFormat("xml") != DefaultFormat {
		t.Error("ParseFormat did not fall back to default")
	}

	var names []string
	for f := range Formats() {
		names = append(names, f)
	}

	if strings.Join(names, ",") != "text,json" {
		t.Errorf("Formats() = %v", names)
	}
}

func TestMakeFormatTimeFunc(t *testing.T) {
	if got := makeFormatTimeFunc("")(testTime); got != "" {
		t.Errorf("empty layout produced %q", got)
	}

	if got := makeFormatTimeFunc("none")(testTime); got != "" {
		t.Errorf("none layout produced %q", got)
	}

	if got := makeFormatTimeFunc("Kitchen")(testTime); got != "3:04PM" {
		t.Errorf("Kitchen layout produced %q", got)
	}

	if got := makeFormatTimeFunc("2006")(testTime); got != "2006" {
		t.Errorf("custom layout produced %q", got)
	}
}

func TestPackage_LogFunctions_UseDefaultLogger(t *testing.T) {
	original := Default()
	defer func() { defaultLog = original }()

	var buf bytes.Buffer
	defaultLog = Make(&buf, WithLevel(LevelDebug), WithFormat(FormatJSON))

	tests := []struct {
		name  string
		fn    func(string, ...slog.Attr)
		level string
	}{
		{"Debug", Debug, "DEBUG"},
		{"Info", Info, "INFO"},
		{"Warn", Warn, "WARN"},
		{"Error", Error, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn("message", slog.String("key", "value"))

			output := buf.String()
			if !strings.Contains(output, tt.level) || !strings.Contains(output, `"key":"value"`) {
				t.Errorf("unexpected output: %s", output)
			}
		})
	}

	Config(WithLevel(LevelError))
	buf.Reset()
	Info("suppressed")

	if buf.Len() > 0 {
		t.Errorf("Config did not update default logger: %s", buf.String())
	}
}
