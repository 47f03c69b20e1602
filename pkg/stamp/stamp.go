package stamp

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Resolution is the granularity of sortable stamps: hundredths of a second,
// the smallest unit the sort-key format can express.
const Resolution = 10 * time.Millisecond

// Now returns the current time. Overridable in tests.
var Now = func() time.Time { return time.Now() }

// FormatLocal renders t in the local timezone as
// "yyyy-MM-dd HH:mm:ss:SSSS Z" (milliseconds zero-padded to four digits,
// numeric zone offset). Used for display names and buffered message lines.
func FormatLocal(t time.Time) string {
	return t.Format("2006-01-02 15:04:05") +
		fmt.Sprintf(":%04d ", t.Nanosecond()/int(time.Millisecond)) +
		t.Format("-0700")
}

// FormatSortable renders t in UTC as "yyyyMMddHHmmssSS" where SS is
// hundredths of a second. Lexicographic order equals chronological order.
func FormatSortable(t time.Time) string {
	u := t.UTC()
	return u.Format("20060102150405") + fmt.Sprintf("%02d", u.Nanosecond()/int(Resolution))
}

// DisplayName builds the human-readable record name: the base name with
// word separators replaced by spaces, followed by the local timestamp.
func DisplayName(base string, t time.Time) string {
	return strings.ReplaceAll(base, "_", " ") + " " + FormatLocal(t)
}

// SortKey builds the machine-sortable record name: base + "_" + UTC stamp.
// Records sharing a base name sort by creation instant.
func SortKey(base string, t time.Time) string {
	return base + "_" + FormatSortable(t)
}

// Generator issues creation timestamps that are strictly increasing at
// Resolution granularity per process. If two records are created within the
// same hundredth of a second, or the clock goes backwards, the generator
// advances past the last issued stamp instead of reusing it.
type Generator struct {
	mu   sync.Mutex
	last time.Time
}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator { return &Generator{} }

// Next returns the next creation timestamp, truncated to Resolution.
func (g *Generator) Next() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()

	t := Now().Truncate(Resolution)
	if !t.After(g.last) {
		t = g.last.Add(Resolution)
	}
	g.last = t
	return t
}
