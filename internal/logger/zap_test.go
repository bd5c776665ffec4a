package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewWithWriter_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, WarnLevel, JSONEncoding)

	log.Infow("dropped", "k", 1)
	log.Warnw("users_update_id_mismatch", "selected_id", 5)
	_ = log.Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("not json: %v", err)
	}
	if entry["msg"] != "users_update_id_mismatch" || entry["level"] != "warn" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["selected_id"] != float64(5) {
		t.Fatalf("missing field: %v", entry)
	}
}

func TestToZapLevel_UnknownFallsBackToInfo(t *testing.T) {
	if got := toZapLevel("verbose"); got != defaultZapLevel {
		t.Fatalf("got %v, want %v", got, defaultZapLevel)
	}
}

func TestNop(t *testing.T) {
	Nop().Errorw("ignored", "err", "x")
}
