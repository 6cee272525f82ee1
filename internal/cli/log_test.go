package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tilings/pkg/observability"
)

func TestNewLoggerTimestamp(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, log.InfoLevel).Info("separated tiling", "passes", 2)

	line := buf.String()
	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `).MatchString(line) {
		t.Errorf("log line %q does not start with a HH:MM:SS.cc timestamp", line)
	}
	if !strings.Contains(line, "passes=2") {
		t.Errorf("log line %q missing passes=2", line)
	}
}

// TestConfigLogLevel checks that the level from the config file decides
// which messages reach the output.
func TestConfigLogLevel(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
	}{
		{"debug", true, true, true},
		{"info", false, true, true},
		{"warn", false, false, true},
		{"error", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Cleanup(observability.Reset)
			cfg := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(cfg, []byte("[log]\nlevel = \""+tt.level+"\"\n"), 0o644); err != nil {
				t.Fatal(err)
			}

			var buf bytes.Buffer
			c := New(&buf, LogInfo)
			c.configPath = cfg
			if err := c.setup(&cobra.Command{}); err != nil {
				t.Fatalf("setup: %v", err)
			}

			for _, m := range []struct {
				log  func(any, ...any)
				msg  string
				want bool
			}{
				{c.Logger.Debug, "debug-msg", tt.wantDebug},
				{c.Logger.Info, "info-msg", tt.wantInfo},
				{c.Logger.Warn, "warn-msg", tt.wantWarn},
			} {
				m.log(m.msg)
				if got := strings.Contains(buf.String(), m.msg); got != m.want {
					t.Errorf("%s logged = %v, want %v", m.msg, got, m.want)
				}
			}
		})
	}
}

func TestSetupStoresLoggerInContext(t *testing.T) {
	t.Cleanup(observability.Reset)
	c := New(&bytes.Buffer{}, LogInfo)
	c.configPath = filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(c.configPath, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	if err := c.setup(cmd); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if got := loggerFromContext(cmd.Context()); got != c.Logger {
		t.Error("setup did not put the CLI logger in the command context")
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.done("Found factors", "children", 2)

	for _, want := range []string{"Found factors", "children=2", "elapsed="} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("progress output %q missing %q", buf.String(), want)
		}
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext without a logger should return log.Default()")
	}

	l := newLogger(&bytes.Buffer{}, log.DebugLevel)
	if loggerFromContext(withLogger(context.Background(), l)) != l {
		t.Error("loggerFromContext did not return the stored logger")
	}
}
