package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInitAndGet(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	log := Init(Options{Level: "debug", Output: &buf})
	log.Debug().Str("key", "value").Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"message":"hello"`) || !strings.Contains(out, `"key":"value"`) {
		t.Fatalf("unexpected output: %s", out)
	}

	lg := Get()
	lg.Info().Msg("again")
	if !strings.Contains(buf.String(), `"message":"again"`) {
		t.Fatal("Get must return the logger built by Init")
	}
}

func TestInit_OnlyFirstCallWins(t *testing.T) {
	Reset()
	defer Reset()

	var first, second bytes.Buffer
	Init(Options{Output: &first})
	Init(Options{Output: &second})

	lg := Get()
	lg.Info().Msg("routed")
	if second.Len() != 0 {
		t.Fatal("a second Init must not rebuild the logger")
	}
	if !strings.Contains(first.String(), `"message":"routed"`) {
		t.Fatalf("log not routed to the first writer: %s", first.String())
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	defer Reset()

	defer func() {
		if recover() == nil {
			t.Fatal("Get before Init must panic")
		}
	}()
	Get()
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{" Info ", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
