package domain

import "go.trai.ch/zerr"

// Error categories. Every error returned by the checker is joined with exactly one of these,
// so callers can branch with errors.Is.
var (
	// ErrStorage is returned when the cache directory or one of its files cannot be read or written.
	ErrStorage = zerr.New("cache storage failure")

	// ErrTransport is returned when the validator cannot be reached (DNS, connect, TLS, timeout).
	ErrTransport = zerr.New("validator unreachable")

	// ErrProtocol is returned when the validator replied with something markcheck cannot interpret.
	ErrProtocol = zerr.New("unexpected validator response")

	// ErrValidationFailed is returned when the validator ran and reported the document invalid.
	ErrValidationFailed = zerr.New("validation failed")
)

var (
	// ErrUnknownKind is returned when a document kind name is not recognized.
	ErrUnknownKind = zerr.New("unknown document kind, expected 'markup' or 'css'")

	// ErrInvalidCacheKey is returned when a cache key lacks a suite, a test name or a kind.
	ErrInvalidCacheKey = zerr.New("invalid cache key")

	// ErrCacheCreateFailed is returned when a cache slot directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheReadFailed is returned when a cached artifact cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cached artifact")

	// ErrCacheWriteFailed is returned when a cached artifact cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cached artifact")

	// ErrCacheRemoveFailed is returned when a stale artifact cannot be removed.
	ErrCacheRemoveFailed = zerr.New("failed to remove stale cached artifact")

	// ErrCacheMarshalFailed is returned when a cache entry cannot be encoded.
	ErrCacheMarshalFailed = zerr.New("failed to marshal cache entry")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrRequestBuildFailed is returned when a validator request cannot be constructed.
	ErrRequestBuildFailed = zerr.New("failed to build validator request")

	// ErrRequestFailed is returned when the HTTP round trip to a validator fails.
	ErrRequestFailed = zerr.New("validator request failed")

	// ErrResponseReadFailed is returned when a validator response body cannot be read.
	ErrResponseReadFailed = zerr.New("failed to read validator response")

	// ErrUnexpectedStatus is returned when a validator answers with a non-2xx status code.
	ErrUnexpectedStatus = zerr.New("validator returned an unexpected HTTP status")

	// ErrMissingStatusHeader is returned when a markup response lacks X-W3C-Validator-Status.
	ErrMissingStatusHeader = zerr.New("markup validator response has no status header")

	// ErrMalformedReport is returned when a validator report body cannot be parsed.
	ErrMalformedReport = zerr.New("malformed validator report")

	// ErrEmptyResponse is returned when a validator response has no body to interpret.
	ErrEmptyResponse = zerr.New("validator response body is empty")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInputNotFound is returned when a path given to the CLI matches no file.
	ErrInputNotFound = zerr.New("input not found")

	// ErrInputReadFailed is returned when a file given to the CLI cannot be read.
	ErrInputReadFailed = zerr.New("failed to read input file")

	// ErrNoInputs is returned when check is invoked without any checkable file.
	ErrNoInputs = zerr.New("no markup or css files to check")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch files")
)
