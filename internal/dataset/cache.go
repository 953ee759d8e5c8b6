package dataset

import "sync"

// The load takes no arguments, so there is exactly one cache entry: a
// single-initialization guard, not a keyed map. The bundle is immutable
// after the fill, so concurrent readers need no further locking.

var (
	cacheMu sync.Mutex
	cached  func() (*Bundle, error)
)

// LoadCached returns the process-wide bundle, loading it on the first call.
// Repeat calls return the same logical data without re-reading the files;
// the loader argument is only consulted for the initial fill.
func LoadCached(l *Loader) (*Bundle, error) {
	cacheMu.Lock()
	if cached == nil {
		cached = sync.OnceValues(l.Load)
	}
	fill := cached
	cacheMu.Unlock()
	return fill()
}

// ResetCache drops the cached bundle so the next LoadCached re-reads the
// sources. Used by tests and explicit cache invalidation.
func ResetCache() {
	cacheMu.Lock()
	cached = nil
	cacheMu.Unlock()
}
