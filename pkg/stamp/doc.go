// Package stamp renders the timestamped record names used by the log store
// and guarantees that sort keys issued by one process are strictly increasing
// even when the clock stalls or steps backwards.
package stamp
