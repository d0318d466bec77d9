package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// CacheKey identifies one cache slot.
// It is derived from the calling test's identity and the document kind, so repeated runs of the
// same logical test reuse the same slot.
type CacheKey struct {
	// Suite is the calling test's package path (or any stable grouping name).
	Suite string
	// Test is the calling test's name, including subtest components separated by '/'.
	Test string
	// Kind is the document kind checked under this key.
	Kind Kind
}

// NewCacheKey creates a CacheKey and validates it.
func NewCacheKey(suite, test string, kind Kind) (CacheKey, error) {
	key := CacheKey{Suite: suite, Test: test, Kind: kind}
	if err := key.Validate(); err != nil {
		return CacheKey{}, err
	}
	return key, nil
}

// Validate reports whether the key can address a cache slot.
func (k CacheKey) Validate() error {
	if strings.TrimSpace(k.Suite) == "" {
		return zerr.With(ErrInvalidCacheKey, "field", "suite")
	}
	if strings.TrimSpace(k.Test) == "" {
		return zerr.With(ErrInvalidCacheKey, "field", "test")
	}
	if k.Kind != KindMarkup && k.Kind != KindCSS {
		return zerr.With(ErrInvalidCacheKey, "field", "kind")
	}
	return nil
}

// String returns a human-readable form of the key.
func (k CacheKey) String() string {
	return k.Kind.String() + ":" + k.Suite + "." + k.Test
}

// SuiteSeparator is the segment placed between the suite and the test segments.
// SanitizeSegment never produces it, so a suite boundary cannot be forged by either half.
const SuiteSeparator = "@"

// Segments returns the sanitized path segments for this key: the suite's, SuiteSeparator, then the test's.
// The kind is not part of the segments; stores scope kinds by directory.
func (k CacheKey) Segments() []string {
	suite := strings.Split(k.Suite, "/")
	test := strings.Split(k.Test, "/")

	segments := make([]string, 0, len(suite)+len(test)+1)
	for _, part := range suite {
		segments = append(segments, SanitizeSegment(part))
	}
	segments = append(segments, SuiteSeparator)
	for _, part := range test {
		segments = append(segments, SanitizeSegment(part))
	}
	return segments
}

// SanitizeSegment maps an arbitrary identifier onto a safe single path segment, injectively.
// Bytes outside [A-Za-z0-9._-] are written as %XX. "." and ".." are fully escaped and the
// empty string becomes a lone "%", which no escape sequence produces.
func SanitizeSegment(s string) string {
	switch s {
	case "":
		return "%"
	case ".":
		return "%2E"
	case "..":
		return "%2E%2E"
	}

	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '.', c == '-', c == '_':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0F])
		}
	}
	return b.String()
}
