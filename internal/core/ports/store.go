package ports

import "go.trai.ch/markcheck/internal/core/domain"

// ResponseCache stores raw validator responses keyed by test identity and content digest.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ResponseCache interface {
	// Locate maps a key onto its storage slot, creating the slot directory if needed.
	Locate(key domain.CacheKey) (domain.Location, error)

	// Refresh compares the document against the slot's last-seen content.
	// On a match with a stored response it returns CacheFresh and the response.
	// Otherwise it discards the slot's artifacts, records the new document and returns CacheStale.
	Refresh(loc domain.Location, doc []byte) (domain.CacheLookup, error)

	// Save persists a response record in the slot's results file.
	Save(loc domain.Location, entry domain.CacheEntry) error

	// Purge removes every cached slot of the given kind, or of all kinds for KindUnknown.
	Purge(kind domain.Kind) error
}
