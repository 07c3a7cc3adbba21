package cache

import "hash/fnv"

// Fingerprint hashes SQL text to a statement-cache key.
func Fingerprint(sql string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(sql))
	return h.Sum64()
}
