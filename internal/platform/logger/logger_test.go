package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        Info,
		"debug":   Debug,
		" WARN ":  Warn,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestLogger_JSON_IncludesAppAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatJSON, App: "pet-care-records", Output: &buf})

	l.With(map[string]any{"collection": "pets"}).Info("saved", map[string]any{"id": "pet-1", "": "ignored"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json log line %q: %v", buf.String(), err)
	}
	if entry["msg"] != "saved" || entry["app"] != "pet-care-records" {
		t.Fatalf("unexpected entry: %#v", entry)
	}
	if entry["collection"] != "pets" || entry["id"] != "pet-1" {
		t.Fatalf("missing fields: %#v", entry)
	}
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatText, Output: &buf})

	l.Info("hidden", nil)
	l.Warn("shown", map[string]any{"k": 1})

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "k=1") {
		t.Fatalf("expected warn line with field, got %q", out)
	}
}
