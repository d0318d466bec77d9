// Package domain contains the core types of markcheck: documents, cache keys, raw validator
// responses and verdicts.
package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// Kind identifies the type of document being validated.
// It decides the wire encoding and the response parsing.
type Kind uint8

const (
	// KindUnknown is the zero value and is never valid for a check.
	KindUnknown Kind = iota
	// KindMarkup is an HTML or XHTML document or fragment.
	KindMarkup
	// KindCSS is a CSS stylesheet.
	KindCSS
)

// Kinds lists every checkable kind in a stable order.
var Kinds = []Kind{KindMarkup, KindCSS}

// String returns the canonical name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMarkup:
		return "markup"
	case KindCSS:
		return "css"
	default:
		return "unknown"
	}
}

// Extension returns the file extension used for the content slot of this kind.
func (k Kind) Extension() string {
	switch k {
	case KindMarkup:
		return "html"
	case KindCSS:
		return "css"
	default:
		return "bin"
	}
}

// ParseKind parses a kind name as accepted on the command line.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "markup", "html", "xhtml":
		return KindMarkup, nil
	case "css":
		return KindCSS, nil
	default:
		return KindUnknown, zerr.With(ErrUnknownKind, "kind", name)
	}
}

// KindForPath guesses the kind of a file from its extension.
// It returns KindUnknown for files markcheck does not validate.
func KindForPath(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return KindMarkup
	case ".css":
		return KindCSS
	default:
		return KindUnknown
	}
}
