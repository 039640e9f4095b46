package index

import "github.com/minio/highwayhash"

// hashKey is a fixed, arbitrary 32-byte key; content fingerprints only
// need to be stable within a process, not cryptographically secure.
var hashKey = []byte("SEMINDEX-CONTENT-FINGERPRINT-KEY")

// ContentHash fingerprints data (typically a macro expansion's interpreted
// source text) so the pipeline can detect that re-expanding a macro call
// produced byte-identical output and skip re-indexing it, supporting the
// "indexing T then T again is idempotent" property.
func ContentHash(data []byte) uint64 {
	h, err := highwayhash.New64(hashKey)
	if err != nil {
		// hashKey is a fixed, valid 32-byte key; New64 only fails on bad
		// key length, which cannot happen here.
		panic(err)
	}
	_, _ = h.Write(data)
	return h.Sum64()
}

// VirtualFileCache remembers the last content hash indexed for each
// virtual file URI, so the macro expander can skip a no-op re-expansion.
type VirtualFileCache struct {
	hashes map[string]uint64
}

// NewVirtualFileCache builds an empty cache.
func NewVirtualFileCache() *VirtualFileCache {
	return &VirtualFileCache{hashes: map[string]uint64{}}
}

// Unchanged reports whether uri was last indexed with exactly this content,
// recording the new hash when it differs (or is new).
func (c *VirtualFileCache) Unchanged(uri string, content []byte) bool {
	h := ContentHash(content)
	if prev, ok := c.hashes[uri]; ok && prev == h {
		return true
	}
	c.hashes[uri] = h
	return false
}

// Forget drops a virtual file's recorded hash.
func (c *VirtualFileCache) Forget(uri string) {
	delete(c.hashes, uri)
}
