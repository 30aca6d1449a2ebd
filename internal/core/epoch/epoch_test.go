package epoch

import (
	"testing"
	"time"
)

func TestToTime_SecondsAndMillisAgree(t *testing.T) {
	t.Parallel()

	sec, ok := ToTime("1700000000")
	if !ok {
		t.Fatalf("seconds value should parse")
	}
	ms, ok := ToTime("1700000000000")
	if !ok {
		t.Fatalf("millis value should parse")
	}
	if !sec.Equal(ms) {
		t.Fatalf("same instant expected: %v vs %v", sec, ms)
	}
	if sec.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", sec.Location())
	}
}

func TestToTime_FloatMillis(t *testing.T) {
	t.Parallel()

	got, ok := ToTime("1700000000000.0")
	if !ok {
		t.Fatalf("float millis should parse")
	}
	want := time.UnixMilli(1700000000000).UTC()
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestToTime_Absent(t *testing.T) {
	t.Parallel()

	// ParseFloat accepts NaN and infinities, which have no usable instant
	cases := []string{"", "   ", "abc", "0", "-5", "-5000000000000", "NaN", "Inf", "+Inf", "-Inf"}
	for _, c := range cases {
		if _, ok := ToTime(c); ok {
			t.Fatalf("ToTime(%q) should be absent", c)
		}
	}
}

func TestToTime_SmallPositiveIsSeconds(t *testing.T) {
	t.Parallel()

	got, ok := ToTime("1")
	if !ok {
		t.Fatalf("positive epoch should parse")
	}
	if !got.Equal(time.Unix(1, 0).UTC()) {
		t.Fatalf("got %v", got)
	}
}
