package validate

import (
	"errors"
	"testing"
	"time"
)

func TestParseClassDate(t *testing.T) {
	t.Parallel()

	want := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	got, err := ParseClassDate(classPayloadJSON("03/14/2026 09:30 AM"), DefaultClassDateLayout, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	// невидимые символы направления текста из браузерного toLocaleString
	got, err = ParseClassDate(classPayloadJSON("\u200e03/14/2026\u200e 09:30 AM"), DefaultClassDateLayout, time.UTC)
	if err != nil {
		t.Fatalf("non-ASCII must be stripped: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseClassDate_Location(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+3", 3*60*60)
	got, err := ParseClassDate(classPayloadJSON("03/14/2026 09:30 AM"), "", loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2026, 3, 14, 6, 30, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got.UTC(), want)
	}
}

func TestParseClassDate_Malformed(t *testing.T) {
	t.Parallel()

	for _, payload := range []string{
		"",
		"   ",
		"{not json",
		`{"other":"x"}`,
		classPayloadJSON("2026-03-14T09:30:00Z"),
		classPayloadJSON("\u00a0\u200e"),
	} {
		if _, err := ParseClassDate(payload, DefaultClassDateLayout, time.UTC); !errors.Is(err, ErrDataIntegrity) {
			t.Fatalf("payload %q: expected ErrDataIntegrity, got %v", payload, err)
		}
	}
}
