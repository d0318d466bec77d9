package w3c

import (
	"context"
	"net/http"
	"net/url"
)

const formContentType = "application/x-www-form-urlencoded"

// encodeMarkupForm returns fragment=<doc>&output=xml.
func encodeMarkupForm(doc []byte) []byte {
	form := url.Values{}
	form.Set("fragment", string(doc))
	form.Set("output", "xml")
	return []byte(form.Encode())
}

func newMarkupRequest(ctx context.Context, endpoint string, doc []byte) (*http.Request, error) {
	return newRequest(ctx, endpoint, formContentType, encodeMarkupForm(doc))
}
