package shared

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

func TestNewLogger(t *testing.T) {
	t.Run("Writes To Provided Writer", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)
		logger.Info("hello")

		if !strings.Contains(buf.String(), "hello") {
			t.Errorf("expected log output in buffer, got %q", buf.String())
		}
	})

	t.Run("Respects Level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)
		SetLogLevel(logger, log.WarnLevel)

		logger.Info("quiet")
		logger.Warn("loud")

		out := buf.String()
		if strings.Contains(out, "quiet") {
			t.Error("expected info suppressed at warn level")
		}
		if !strings.Contains(out, "loud") {
			t.Error("expected warn emitted")
		}
	})

	t.Run("With Adds Fields", func(t *testing.T) {
		var buf bytes.Buffer
		logger := WithLogger(NewLogger(&buf), "component", "session")
		logger.Info("tagged")

		if !strings.Contains(buf.String(), "session") {
			t.Errorf("expected field in output, got %q", buf.String())
		}
	})
}

func TestNewFileLogger(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "app.log")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create file logger: %v", err)
	}
	logger.Info("to file")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file created: %v", err)
	}
	if !strings.Contains(string(content), "to file") {
		t.Errorf("expected message written, got %q", string(content))
	}
}

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()

	if a == b {
		t.Error("expected distinct ids")
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("expected valid uuid, got %q: %v", a, err)
	}
}
