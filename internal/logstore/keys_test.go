package logstore

import (
	"bytes"
	"testing"
)

func TestKeyRecordLayout(t *testing.T) {
	k := KeyRecord("logs", "log_2025030405060789")
	if string(k) != "ns/logs/rec/log_2025030405060789" {
		t.Fatalf("key layout: %q", k)
	}
}

func TestKeyOrderFollowsSortKey(t *testing.T) {
	a := KeyRecord("logs", "log_2025030405060789")
	b := KeyRecord("logs", "log_2025030405060790")
	if bytes.Compare(a, b) >= 0 {
		t.Fatalf("expected %q < %q", a, b)
	}
}

func TestPrefixBoundsContainKey(t *testing.T) {
	lo := KeyRecordPrefix("logs", "log")
	hi := KeyRecordPrefixUpper("logs", "log")
	k := KeyRecord("logs", "log_2025030405060789")
	if bytes.Compare(k, lo) < 0 || bytes.Compare(k, hi) >= 0 {
		t.Fatalf("key %q outside [%q, %q)", k, lo, hi)
	}
}

func TestSortKeyFromKey(t *testing.T) {
	k := KeyRecord("logs", "log_2025030405060789")
	if got := SortKeyFromKey("logs", k); got != "log_2025030405060789" {
		t.Fatalf("round trip: %q", got)
	}
	if got := SortKeyFromKey("logs", []byte("ns/logs/rec/")); got != "" {
		t.Fatalf("empty sort key: %q", got)
	}
}
