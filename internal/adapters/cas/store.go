// Package cas implements the content-addressed response cache.
//
// Every cache key owns one slot: a content file holding the last document seen under the key and
// a results file holding the validator response produced from it. A stored response is reused only
// when the digest of the current document equals the digest of the document that produced it.
package cas

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/markcheck/internal/core/domain"
	"go.trai.ch/markcheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ResponseCache = (*Store)(nil)

// Store implements ports.ResponseCache with one directory per document kind.
type Store struct {
	root   string
	hasher ports.Hasher
	logger ports.Logger
	now    func() time.Time
}

// NewStore creates a Store rooted at the given directory.
// The directory is created lazily by Locate.
func NewStore(root string, hasher ports.Hasher, logger ports.Logger) *Store {
	return &Store{
		root:   filepath.Clean(root),
		hasher: hasher,
		logger: logger,
		now:    time.Now,
	}
}

// Root returns the base directory of the cache.
func (s *Store) Root() string {
	return s.root
}

// Locate maps key onto <root>/<kind>/<suite...>/<test...>.<ext> and creates its directory.
func (s *Store) Locate(key domain.CacheKey) (domain.Location, error) {
	if err := key.Validate(); err != nil {
		return domain.Location{}, err
	}

	segments := key.Segments()
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, s.root, key.Kind.String())
	parts = append(parts, segments[:len(segments)-1]...)
	dir := filepath.Join(parts...)
	base := filepath.Join(dir, segments[len(segments)-1])

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return domain.Location{}, storageError(err, domain.ErrCacheCreateFailed, dir)
	}

	return domain.Location{
		Dir:         dir,
		ContentPath: base + "." + key.Kind.Extension(),
		ResultsPath: base + domain.ResultsSuffix,
	}, nil
}

// Refresh decides whether the slot's stored response may be reused for doc.
func (s *Store) Refresh(loc domain.Location, doc []byte) (domain.CacheLookup, error) {
	digest := s.hasher.Digest(doc)

	stored, found, err := s.storedDigest(loc.ContentPath)
	if err != nil {
		return domain.CacheLookup{}, err
	}

	if found && stored == digest {
		entry, ok, readErr := s.readEntry(loc.ResultsPath)
		if readErr != nil {
			return domain.CacheLookup{}, readErr
		}
		if ok && entry.InputDigest == digest {
			return domain.CacheLookup{
				State:    domain.CacheFresh,
				Digest:   digest,
				Response: &entry.Response,
			}, nil
		}
	}

	if err := s.discard(loc); err != nil {
		return domain.CacheLookup{}, err
	}
	if err := atomicWriteFile(loc.ContentPath, doc); err != nil {
		return domain.CacheLookup{}, storageError(err, domain.ErrCacheWriteFailed, loc.ContentPath)
	}

	return domain.CacheLookup{State: domain.CacheStale, Digest: digest}, nil
}

// Save persists entry in the slot's results file.
func (s *Store) Save(loc domain.Location, entry domain.CacheEntry) error {
	if entry.StoredAt.IsZero() {
		entry.StoredAt = s.now().UTC()
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return storageError(err, domain.ErrCacheMarshalFailed, loc.ResultsPath)
	}

	if err := atomicWriteFile(loc.ResultsPath, data); err != nil {
		return storageError(err, domain.ErrCacheWriteFailed, loc.ResultsPath)
	}

	return nil
}

// Purge removes the cache tree of one kind, or the whole cache for KindUnknown.
func (s *Store) Purge(kind domain.Kind) error {
	target := s.root
	if kind != domain.KindUnknown {
		target = filepath.Join(s.root, kind.String())
	}

	if err := os.RemoveAll(target); err != nil {
		return storageError(err, domain.ErrCacheRemoveFailed, target)
	}
	return nil
}

// storedDigest hashes the slot's content file. found is false when the file does not exist.
func (s *Store) storedDigest(path string) (digest string, found bool, err error) {
	if _, statErr := os.Stat(path); statErr != nil {
		if errors.Is(statErr, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, storageError(statErr, domain.ErrCacheReadFailed, path)
	}

	digest, err = s.hasher.DigestFile(path)
	if err != nil {
		return "", false, errors.Join(domain.ErrStorage, err)
	}
	return digest, true, nil
}

// readEntry loads the results record. A record that cannot be decoded counts as absent.
func (s *Store) readEntry(path string) (domain.CacheEntry, bool, error) {
	//nolint:gosec // Path is constructed from the cache root and sanitized segments
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.CacheEntry{}, false, nil
		}
		return domain.CacheEntry{}, false, storageError(err, domain.ErrCacheReadFailed, path)
	}

	var entry domain.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		s.logger.Warn(fmt.Sprintf("discarding unreadable cache entry %s: %v", path, err))
		return domain.CacheEntry{}, false, nil
	}

	return entry, true, nil
}

// discard removes exactly the artifacts owned by the slot.
func (s *Store) discard(loc domain.Location) error {
	for _, path := range []string{loc.ContentPath, loc.ResultsPath} {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return storageError(err, domain.ErrCacheRemoveFailed, path)
		}
	}
	return nil
}

func storageError(err, sentinel error, path string) error {
	return errors.Join(domain.ErrStorage, zerr.With(zerr.Wrap(err, sentinel.Error()), "path", path))
}
