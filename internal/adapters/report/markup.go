package report

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"html"
	"slices"
	"strings"

	"go.trai.ch/markcheck/internal/core/domain"
	"go.trai.ch/zerr"
)

const statusValid = "Valid"

// markupReport is the subset of the validator's XML output that carries diagnostics.
type markupReport struct {
	Messages []markupMessage `xml:"messages>msg"`
}

type markupMessage struct {
	Line    string `xml:"line,attr"`
	Content string `xml:",chardata"`
}

func interpretMarkup(resp *domain.Response) (domain.Verdict, error) {
	status, ok := resp.HeaderValue(domain.StatusHeader)
	if !ok {
		err := zerr.With(domain.ErrMissingStatusHeader, "received", receivedHeaders(resp))
		return domain.Verdict{}, protocolError(err, domain.StatusHeader+" header")
	}

	if status == statusValid {
		return domain.Verdict{Valid: true}, nil
	}

	var report markupReport
	if err := xml.NewDecoder(bytes.NewReader(resp.Body)).Decode(&report); err != nil {
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrMalformedReport.Error()), "status", status)
		return domain.Verdict{}, protocolError(wrapped, "XML validation report")
	}

	messages := make([]string, 0, len(report.Messages))
	for _, msg := range report.Messages {
		content := html.UnescapeString(strings.TrimSpace(msg.Content))
		messages = append(messages, fmt.Sprintf("Invalid markup: line %s: %s", msg.Line, content))
	}
	if len(messages) == 0 {
		messages = append(messages, fmt.Sprintf("Invalid markup: validator reported status %q without messages", status))
	}

	return domain.Verdict{Valid: false, Messages: messages}, nil
}

// receivedHeaders names the headers present on resp, for protocol error reports.
func receivedHeaders(resp *domain.Response) string {
	if len(resp.Header) == 0 {
		return "no headers"
	}
	names := make([]string, 0, len(resp.Header))
	for name := range resp.Header {
		names = append(names, name)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}
