package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

func TestNewSessionIDIsUUID(t *testing.T) {
	id := NewSessionID()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("session id %q is not a uuid: %v", id, err)
	}
	if id == NewSessionID() {
		t.Fatal("session ids should be unique")
	}
}

func TestForSessionAddsField(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Logger
	log.Logger = log.Output(&buf)
	defer func() { log.Logger = orig }()

	l := ForSession("abc")
	l.Info().Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["session"] != "abc" {
		t.Fatalf("session field = %v, want abc", entry["session"])
	}
}

func TestForSessionEmptyIDUsesGlobal(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Logger
	log.Logger = log.Output(&buf)
	defer func() { log.Logger = orig }()

	l := ForSession("")
	l.Info().Msg("plain")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if _, ok := entry["session"]; ok {
		t.Fatal("unexpected session field")
	}
}
