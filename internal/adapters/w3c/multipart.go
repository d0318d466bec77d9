package w3c

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/markcheck/internal/core/domain"
	"go.trai.ch/zerr"
)

const boundaryPrefix = "markcheck-"

// boundary derives a multipart boundary from doc. The result never occurs inside doc.
func boundary(doc []byte) string {
	sum := xxhash.Sum64(doc)
	for {
		b := fmt.Sprintf("%s%016x", boundaryPrefix, sum)
		if !bytes.Contains(doc, []byte(b)) {
			return b
		}
		sum = xxhash.Sum64String(b)
	}
}

// encodeCSSForm builds the multipart body for the CSS validator: the stylesheet as a file part
// followed by the warning, profile and usermedium fields.
func encodeCSSForm(cfg domain.CSSConfig, doc []byte) (body []byte, contentType string, err error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.SetBoundary(boundary(doc)); err != nil {
		return nil, "", err
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="file.css"`)
	header.Set("Content-Transfer-Encoding", "binary")
	header.Set("Content-Type", "text/css")

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(doc); err != nil {
		return nil, "", err
	}

	fields := []struct{ name, value string }{
		{"warning", cfg.Warning},
		{"profile", cfg.Profile},
		{"usermedium", cfg.UserMedium},
	}
	for _, field := range fields {
		if err := w.WriteField(field.name, field.value); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}

func newCSSRequest(ctx context.Context, cfg domain.CSSConfig, doc []byte) (*http.Request, error) {
	body, contentType, err := encodeCSSForm(cfg, doc)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRequestBuildFailed.Error()), "endpoint", cfg.Endpoint)
	}
	return newRequest(ctx, cfg.Endpoint, contentType, body)
}
