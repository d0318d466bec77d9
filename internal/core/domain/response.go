package domain

import (
	"net/textproto"
	"time"
)

// StatusHeader is the header the markup validator uses to report its verdict.
const StatusHeader = "X-W3C-Validator-Status"

// Response is the raw reply of a remote validator.
// It is opaque to the cache and meaningful only to the interpreter.
type Response struct {
	StatusCode int                 `json:"status_code"`
	Status     string              `json:"status,omitzero"`
	Header     map[string][]string `json:"header,omitzero"`
	Body       []byte              `json:"body,omitzero"`
}

// HeaderValue returns the first value of the named header, matching names case-insensitively.
func (r *Response) HeaderValue(name string) (string, bool) {
	if r == nil || r.Header == nil {
		return "", false
	}
	if values, ok := r.Header[textproto.CanonicalMIMEHeaderKey(name)]; ok && len(values) > 0 {
		return values[0], true
	}
	for key, values := range r.Header {
		if textproto.CanonicalMIMEHeaderKey(key) == textproto.CanonicalMIMEHeaderKey(name) && len(values) > 0 {
			return values[0], true
		}
	}
	return "", false
}

// CacheEntry is the record persisted in the results slot of a cache location.
type CacheEntry struct {
	// InputDigest is the digest of the document that produced Response.
	InputDigest string    `json:"input_digest"`
	Response    Response  `json:"response"`
	StoredAt    time.Time `json:"stored_at,omitzero"`
}
