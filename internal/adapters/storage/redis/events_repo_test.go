package redis

import (
	"testing"
	"time"

	"days-since/internal/domain/events"
)

func TestRedisKey_RoundTrip(t *testing.T) {
	keys := []events.Key{
		events.NewKey("123", "deploy"),
		events.NewKey("a:b", "c"),
		events.NewKey("a", "b:c"),
		events.NewKey(`x\`, "y"),
	}
	for _, k := range keys {
		got, ok := parseRedisKey(redisKey(k))
		if !ok {
			t.Fatalf("parseRedisKey(%q) failed", redisKey(k))
		}
		if got != k {
			t.Fatalf("round trip %+v -> %+v", k, got)
		}
	}

	if _, ok := parseRedisKey("other:app:key"); ok {
		t.Fatalf("foreign keys must be ignored")
	}
}

func TestEncodeDecodeEvent(t *testing.T) {
	e := events.Event{
		Description: "someone said 'it works on my machine'",
		Since:       time.Date(2026, 5, 4, 3, 2, 1, 999, time.FixedZone("X", 3600)),
	}
	raw := encodeEvent(e)

	fields := map[string]string{}
	for k, v := range raw {
		fields[k] = v.(string)
	}
	got, err := decodeEvent(fields)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Description != e.Description || !got.Since.Equal(e.Since) || got.Since.Location() != time.UTC {
		t.Fatalf("decoded %+v, want %+v in UTC", got, e)
	}

	if _, err := decodeEvent(map[string]string{fieldDescription: "x"}); err == nil {
		t.Fatalf("expected error for missing since")
	}
	if _, err := decodeEvent(map[string]string{fieldSince: "yesterday"}); err == nil {
		t.Fatalf("expected error for invalid since")
	}
}

func TestEscapeGlob(t *testing.T) {
	cases := map[string]string{
		"days-since:event:": `days\-since:event:`,
		"a*b?c":             `a\*b\?c`,
		`[x]\`:              `\[x\]\\`,
	}
	for in, want := range cases {
		if got := escapeGlob(in); got != want {
			t.Fatalf("escapeGlob(%q) = %q, want %q", in, got, want)
		}
	}
}
