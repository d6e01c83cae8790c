package log

import (
	"bytes"
	stdlog "log"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LevelWarn)
	l.logger = stdlog.New(&buf, "", 0)

	l.Debug("debug line")
	l.Info("info line")
	l.Warn("warn line")
	l.Error("error line")

	out := buf.String()
	if bytes.Contains([]byte(out), []byte("debug line")) {
		t.Errorf("debug output should be filtered at warn level")
	}
	if bytes.Contains([]byte(out), []byte("info line")) {
		t.Errorf("info output should be filtered at warn level")
	}
	if !bytes.Contains([]byte(out), []byte("warn line")) {
		t.Errorf("warn output missing")
	}
	if !bytes.Contains([]byte(out), []byte("error line")) {
		t.Errorf("error output missing")
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LevelError)
	l.logger = stdlog.New(&buf, "", 0)

	l.Info("before")
	l.SetLevel(LevelDebug)
	l.Info("after")

	out := buf.String()
	if bytes.Contains([]byte(out), []byte("before")) {
		t.Errorf("info should be filtered at error level")
	}
	if !bytes.Contains([]byte(out), []byte("after")) {
		t.Errorf("info missing after lowering the level")
	}
}
