package logstore

// Keyspace helpers for Pebble keys.
//
// Layout (byte-wise, lexicographically sortable):
// - ns/{namespace}/rec/{sortKey}

var (
	nsPrefix = []byte("ns/")
	recSeg   = []byte("/rec/")
)

// KeyRecord builds the key for one record.
func KeyRecord(namespace, sortKey string) []byte {
	k := make([]byte, 0, len(nsPrefix)+len(namespace)+len(recSeg)+len(sortKey))
	k = append(k, nsPrefix...)
	k = append(k, namespace...)
	k = append(k, recSeg...)
	k = append(k, sortKey...)
	return k
}

// KeyRecordPrefix builds the scan prefix for all records whose sort key
// starts with namePrefix.
func KeyRecordPrefix(namespace, namePrefix string) []byte {
	return KeyRecord(namespace, namePrefix)
}

// KeyRecordPrefixUpper returns the exclusive upper bound for a prefix scan.
func KeyRecordPrefixUpper(namespace, namePrefix string) []byte {
	return append(KeyRecordPrefix(namespace, namePrefix), 0xff)
}

// SortKeyFromKey recovers the sort key portion of a record key.
func SortKeyFromKey(namespace string, key []byte) string {
	head := len(nsPrefix) + len(namespace) + len(recSeg)
	if len(key) <= head {
		return ""
	}
	return string(key[head:])
}
