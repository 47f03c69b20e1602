package stamp

import (
	"strings"
	"testing"
	"time"
)

func fixedTime() time.Time {
	// 2025-03-04 05:06:07.890 UTC
	return time.Date(2025, 3, 4, 5, 6, 7, 890*int(time.Millisecond), time.UTC)
}

func TestFormatSortable(t *testing.T) {
	got := FormatSortable(fixedTime())
	if got != "2025030405060789" {
		t.Fatalf("sortable stamp: got %q", got)
	}
	if len(got) != 16 {
		t.Fatalf("sortable stamp length: got %d", len(got))
	}
}

func TestFormatLocalShape(t *testing.T) {
	got := FormatLocal(fixedTime())
	if !strings.HasPrefix(got, "2025-03-04 05:06:07:0890 ") {
		t.Fatalf("local stamp: got %q", got)
	}
	if !strings.HasSuffix(got, "+0000") {
		t.Fatalf("expected numeric zone offset, got %q", got)
	}
}

func TestSortKeyAndDisplayName(t *testing.T) {
	ts := fixedTime()
	if got := SortKey("Error_Log", ts); got != "Error_Log_2025030405060789" {
		t.Fatalf("sort key: got %q", got)
	}
	dn := DisplayName("Error_Log", ts)
	if !strings.HasPrefix(dn, "Error Log 2025-03-04") {
		t.Fatalf("display name: got %q", dn)
	}
}

func TestSortKeyOrderMatchesTime(t *testing.T) {
	a := SortKey("log", fixedTime())
	b := SortKey("log", fixedTime().Add(time.Second))
	if !(a < b) {
		t.Fatalf("expected %q < %q", a, b)
	}
}

func TestGeneratorMonotonicWithinSameInstant(t *testing.T) {
	fixed := fixedTime()
	old := Now
	Now = func() time.Time { return fixed }
	t.Cleanup(func() { Now = old })

	g := NewGenerator()
	t1 := g.Next()
	t2 := g.Next()
	t3 := g.Next()
	if !t1.Before(t2) || !t2.Before(t3) {
		t.Fatalf("expected strictly increasing stamps: %v %v %v", t1, t2, t3)
	}
	if SortKey("log", t1) >= SortKey("log", t2) {
		t.Fatalf("sort keys must increase: %q vs %q", SortKey("log", t1), SortKey("log", t2))
	}
}

func TestGeneratorClockRegression(t *testing.T) {
	fixed := fixedTime()
	old := Now
	Now = func() time.Time { return fixed }
	t.Cleanup(func() { Now = old })

	g := NewGenerator()
	first := g.Next()

	// clock steps backwards
	Now = func() time.Time { return fixed.Add(-time.Minute) }
	second := g.Next()
	if !first.Before(second) {
		t.Fatalf("expected increase despite clock regression: %v then %v", first, second)
	}
}
