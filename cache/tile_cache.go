package cache

// A byte-bounded tile cache with least recently used eviction.
//
// The cache is not concurrent-safe: like the targets that own it,
// it's meant to be used from a single rendering goroutine.
type TileCache struct {
	entries map[TileKey]*tileEntry
	recency lruList
	onEvict func(TileKey, Tile)

	spaceBytesLeft  int
	lowestBytesLeft int
	byteSizeLimit   int
	stats Stats
}

// Cumulative counters for a [TileCache].
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Rejected  uint64 // tiles bigger than the whole cache
}

type tileEntry struct {
	tile Tile
	byteSize int
	node *lruNode
}

// Creates a new cache bounded by the given size. Negative values
// will panic.
//
// Values below 256KiB are not recommended, as a single medium sized
// triangle already takes a few KiBs.
func NewTileCache(maxByteSize int) *TileCache {
	if maxByteSize < 0 { panic("maxByteSize < 0") } // likely a dev mistake
	return &TileCache{
		entries: make(map[TileKey]*tileEntry, 128),
		spaceBytesLeft: maxByteSize,
		lowestBytesLeft: maxByteSize,
		byteSizeLimit: maxByteSize,
	}
}

// Sets the function to be called whenever a tile leaves the cache,
// either due to eviction or due to [TileCache.Clear]().
func (self *TileCache) SetOnEvict(onEvict func(TileKey, Tile)) {
	self.onEvict = onEvict
}

// Gets the tile associated to the given key, marking it
// as recently used.
func (self *TileCache) Get(key TileKey) (Tile, bool) {
	entry, found := self.entries[key]
	if !found {
		self.stats.Misses += 1
		return nil, false
	}
	self.stats.Hits += 1
	self.recency.MoveToFront(entry.node)
	return entry.tile, true
}

// Stores the given tile with the given key, evicting the least
// recently used tiles if necessary. Returns false if the tile was
// not stored, either because it's bigger than the whole cache or
// because the key was already present. Tiles that are not stored
// remain owned by the caller.
func (self *TileCache) Put(key TileKey, tile Tile) bool {
	_, alreadyExists := self.entries[key]
	if alreadyExists { return false }

	byteSize := TileByteSize(tile)
	if byteSize > self.byteSizeLimit {
		self.stats.Rejected += 1
		return false
	}
	for byteSize > self.spaceBytesLeft {
		if !self.evictOldest() { break }
	}

	self.entries[key] = &tileEntry{
		tile: tile,
		byteSize: byteSize,
		node: self.recency.PushFront(key),
	}
	self.spaceBytesLeft -= byteSize
	if self.spaceBytesLeft < self.lowestBytesLeft {
		self.lowestBytesLeft = self.spaceBytesLeft
	}
	return true
}

// Removes all the tiles from the cache, passing them to
// the eviction function if any.
func (self *TileCache) Clear() {
	for key, entry := range self.entries {
		if self.onEvict != nil { self.onEvict(key, entry.tile) }
	}
	clear(self.entries)
	self.recency.Clear()
	self.spaceBytesLeft = self.byteSizeLimit
}

// Number of tiles currently stored.
func (self *TileCache) Len() int {
	return len(self.entries)
}

// Returns an approximation of the number of bytes taken by the
// tiles currently stored in the cache.
func (self *TileCache) ApproxByteSize() int {
	return self.byteSizeLimit - self.spaceBytesLeft
}

// Returns an approximation of the maximum amount of bytes that the
// cache has been filled with at any point of its life.
//
// This method can be useful to determine the actual usage of a cache
// within your application and set its capacity to a reasonable value.
func (self *TileCache) PeakSize() int {
	return self.byteSizeLimit - self.lowestBytesLeft
}

// Returns the cache size limit in bytes.
func (self *TileCache) Capacity() int {
	return self.byteSizeLimit
}

// Returns the cumulative hit, miss and eviction counters.
func (self *TileCache) Stats() Stats {
	return self.stats
}

func (self *TileCache) evictOldest() bool {
	key, found := self.recency.RemoveOldest()
	if !found { return false }
	entry := self.entries[key]
	delete(self.entries, key)
	self.spaceBytesLeft += entry.byteSize
	self.stats.Evictions += 1
	if self.onEvict != nil { self.onEvict(key, entry.tile) }
	return true
}
