package web

type cacheEntry struct {
	hash uint64
	data []byte
}

// cache is a ring of the most recently sent frames, keyed by their
// hash. Clients hold the same ring, so a frame that is still cached is
// sent as its index only.
type cache struct {
	entries []cacheEntry
	idx     int
}

func newCache(size int) *cache {
	return &cache{entries: make([]cacheEntry, size)}
}

// add stores data in the next slot of the ring and returns its index.
func (c *cache) add(hash uint64, data []byte) int {
	i := c.idx
	c.entries[i] = cacheEntry{hash: hash, data: data}
	c.idx = (c.idx + 1) % len(c.entries)
	return i
}

// index returns the slot holding hash, or -1.
func (c *cache) index(hash uint64) int {
	for i, e := range c.entries {
		if e.data != nil && e.hash == hash {
			return i
		}
	}

	return -1
}
