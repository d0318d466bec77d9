package domain

// CacheState is the outcome of checking a cache location against the current document.
type CacheState uint8

const (
	// CacheStale means no reusable response exists; a fresh one must be requested.
	CacheStale CacheState = iota
	// CacheFresh means the stored response was produced from byte-identical input.
	CacheFresh
)

// String returns a short name for the state, used in logs and span attributes.
func (s CacheState) String() string {
	if s == CacheFresh {
		return "hit"
	}
	return "miss"
}

// Location is the on-disk slot owned by one CacheKey.
type Location struct {
	// Dir is the directory holding both artifacts.
	Dir string
	// ContentPath holds the last-seen document bytes.
	ContentPath string
	// ResultsPath holds the serialized CacheEntry.
	ResultsPath string
}

// CacheLookup is the result of ResponseCache.Refresh.
type CacheLookup struct {
	State CacheState
	// Digest is the digest of the current document.
	Digest string
	// Response is set only when State is CacheFresh.
	Response *Response
}
