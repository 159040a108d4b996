package datekey

import (
	"testing"
	"time"
)

func TestForUsesLocalCalendarDay(t *testing.T) {
	on := time.Date(2026, 8, 30, 23, 45, 0, 0, time.Local)
	if got := For(on); got != "2026-08-30" {
		t.Fatalf("For = %q", got)
	}
}

func TestWindow(t *testing.T) {
	got := Window(3, "2026-03-01")
	want := []string{"2026-03-01", "2026-02-28", "2026-02-27"}
	if len(got) != len(want) {
		t.Fatalf("Window = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Window[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWindowDegenerate(t *testing.T) {
	if got := Window(0, "2026-08-30"); got != nil {
		t.Fatalf("zero window: %v", got)
	}
	if got := Window(-5, "2026-08-30"); got != nil {
		t.Fatalf("negative window: %v", got)
	}
	if got := Window(5, "not-a-day"); got != nil {
		t.Fatalf("malformed asOf: %v", got)
	}
}

func TestValid(t *testing.T) {
	if !Valid("2026-08-30") {
		t.Fatal("well-formed key rejected")
	}
	for _, bad := range []string{"", "2026-8-30", "08-30-2026", "yesterday"} {
		if Valid(bad) {
			t.Fatalf("malformed key %q accepted", bad)
		}
	}
}

func TestSameDay(t *testing.T) {
	if !SameDay("2026-08-30", "2026-08-30") {
		t.Fatal("equal keys should match")
	}
	if SameDay("2026-08-30", "2026-08-31") {
		t.Fatal("different days should not match")
	}
	if SameDay("", "") {
		t.Fatal("empty keys never match")
	}
}
