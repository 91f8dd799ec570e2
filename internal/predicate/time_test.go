package predicate

import (
	"testing"
	"time"
)

func TestTimeFilterMatch(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	lessThan1h, err := ParseTimeFilter("mtime", "-1h")
	if err != nil {
		t.Fatal(err)
	}
	if !lessThan1h.Match(now.Add(-30*time.Minute), now) {
		t.Error("30m old file should match -1h")
	}
	if lessThan1h.Match(now.Add(-2*time.Hour), now) {
		t.Error("2h old file should not match -1h")
	}

	moreThan1d, err := ParseTimeFilter("mtime", "+1d")
	if err != nil {
		t.Fatal(err)
	}
	if !moreThan1d.Match(now.Add(-48*time.Hour), now) {
		t.Error("48h old file should match +1d")
	}

	// future mtime clamps age to zero, never matches +N
	if moreThan1d.Match(now.Add(1*time.Hour), now) {
		t.Error("future mtime should clamp to age 0 and not match +1d")
	}
}

func TestTimeFilterParseErrors(t *testing.T) {
	for _, in := range []string{"", "5", "5x", "-", "+"} {
		if _, err := ParseTimeFilter("mtime", in); err == nil {
			t.Errorf("ParseTimeFilter(%q) should fail", in)
		}
	}
}
