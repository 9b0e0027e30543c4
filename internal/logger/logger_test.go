package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	Configure(Options{Level: "warn", Out: &buf})

	Info("hidden %d", 1)
	Debug("hidden too")
	Warn("shown %s", "warning")
	LogError("shown %s", "error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info/debug should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "shown warning") || !strings.Contains(out, "shown error") {
		t.Fatalf("missing warn/error output: %q", out)
	}
}

func TestResult_BypassesLevel(t *testing.T) {
	var buf bytes.Buffer
	Configure(Options{Level: "error", Out: &buf})

	Result("", "https://a.io/x")
	if got := buf.String(); got != "https://a.io/x\n" {
		t.Fatalf("unexpected result line: %q", got)
	}
}

func TestResult_JSON(t *testing.T) {
	var buf bytes.Buffer
	Configure(Options{Level: "error", JSON: true, Out: &buf})

	Result("", "https://a.io/x")
	Result("search", "https://a.io/s")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two records at error level, got %q", buf.String())
	}
	if !strings.Contains(lines[0], `"url":"https://a.io/x"`) || strings.Contains(lines[0], `"name"`) {
		t.Fatalf("unexpected unnamed record: %q", lines[0])
	}
	if !strings.Contains(lines[1], `"name":"search"`) || !strings.Contains(lines[1], `"url":"https://a.io/s"`) {
		t.Fatalf("unexpected named record: %q", lines[1])
	}
}

func TestTabular(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want bool
	}{
		{name: "info console", opts: Options{Level: "info"}, want: true},
		{name: "debug console", opts: Options{Level: "debug"}, want: true},
		{name: "quiet", opts: Options{Level: "error"}, want: false},
		{name: "json", opts: Options{Level: "info", JSON: true}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Out = &bytes.Buffer{}
			Configure(tt.opts)
			if got := Tabular(); got != tt.want {
				t.Fatalf("Tabular() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigureLoggerTo_Silent(t *testing.T) {
	defer func() { FlagSilent = false }()
	FlagSilent = true

	var buf bytes.Buffer
	ConfigureLoggerTo(&buf)
	Result("", "https://a.io/x")
	LogError("nope")

	if buf.Len() != 0 {
		t.Fatalf("silent mode wrote output: %q", buf.String())
	}
}
