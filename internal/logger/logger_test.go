package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestInitDefaultsToInfoText(t *testing.T) {
	var buf bytes.Buffer
	InitWith(envFrom(nil), &buf)

	if Log.GetLevel() != logrus.InfoLevel {
		t.Fatalf("level = %s, want info", Log.GetLevel())
	}
	Log.Debug("hidden")
	Log.Info("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("info line missing: %q", out)
	}
}

func TestInitJSONAndLevel(t *testing.T) {
	var buf bytes.Buffer
	InitWith(envFrom(map[string]string{"LOG_LEVEL": "debug", "LOG_FORMAT": "JSON"}), &buf)

	Component("sim").WithField("round", 2).Debug("round start")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if rec["component"] != "sim" {
		t.Errorf("component = %v, want sim", rec["component"])
	}
	if rec["msg"] != "round start" {
		t.Errorf("msg = %v", rec["msg"])
	}
	if rec["level"] != "debug" {
		t.Errorf("level = %v, want debug", rec["level"])
	}
}

func TestInitBadLevelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	InitWith(envFrom(map[string]string{"LOG_LEVEL": "loud"}), &buf)
	if Log.GetLevel() != logrus.InfoLevel {
		t.Fatalf("level = %s, want info", Log.GetLevel())
	}
}
