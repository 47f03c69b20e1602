package logbook

// DefaultMaxLogLength bounds a record body, chosen conservatively below the
// backend's own hard size ceiling so writes never hit platform truncation.
const DefaultMaxLogLength = 1_000_000

// Decision is the rotation policy outcome.
type Decision int

const (
	// Append merges the pending content into the existing record, pending
	// first: the persisted log reads newest-first.
	Append Decision = iota
	// Rotate starts a fresh record whose body is exactly the pending
	// content. The old body stays on the previous record.
	Rotate
)

// String returns the decision name.
func (d Decision) String() string {
	if d == Rotate {
		return "rotate"
	}
	return "append"
}

// Decide returns Rotate when the existing body leaves less room than the
// pending content needs, Append otherwise. Pure function.
func Decide(existingLen, pendingLen, maxLen int) Decision {
	if maxLen-existingLen < pendingLen {
		return Rotate
	}
	return Append
}
