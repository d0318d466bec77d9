package report

import (
	"bytes"
	"iter"
	"strings"

	"go.trai.ch/markcheck/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	errorsID = "errors"
	// emptyErrorMessage stands in for an error item that carries no text.
	emptyErrorMessage = "(error without description)"
)

func interpretCSS(resp *domain.Response) (domain.Verdict, error) {
	if len(bytes.TrimSpace(resp.Body)) == 0 {
		err := zerr.With(domain.ErrEmptyResponse, "status_code", resp.StatusCode)
		return domain.Verdict{}, protocolError(err, "HTML validation report")
	}

	doc, err := html.Parse(bytes.NewReader(resp.Body))
	if err != nil {
		return domain.Verdict{}, protocolError(zerr.Wrap(err, domain.ErrMalformedReport.Error()), "HTML validation report")
	}

	var messages []string
	for section := range elements(doc, isErrorsSection) {
		for _, li := range errorItems(section) {
			text := textContent(li)
			if text == "" {
				text = emptyErrorMessage
			}
			messages = append(messages, text)
		}
	}

	if len(messages) == 0 {
		return domain.Verdict{Valid: true}, nil
	}
	return domain.Verdict{Valid: false, Messages: messages}, nil
}

func isErrorsSection(n *html.Node) bool {
	if n.DataAtom != atom.Div {
		return false
	}
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == "id" && attr.Val == errorsID {
			return true
		}
	}
	return false
}

// errorItems returns the li elements at div > ul > li below section, in document order.
func errorItems(section *html.Node) []*html.Node {
	var items []*html.Node
	for div := range children(section, atom.Div) {
		for ul := range children(div, atom.Ul) {
			for li := range children(ul, atom.Li) {
				items = append(items, li)
			}
		}
	}
	return items
}

// children yields the direct element children of n with the given tag.
func children(n *html.Node, tag atom.Atom) iter.Seq[*html.Node] {
	return func(yield func(*html.Node) bool) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == tag {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// elements yields every element below n matching keep, in document order.
func elements(n *html.Node, keep func(*html.Node) bool) iter.Seq[*html.Node] {
	return func(yield func(*html.Node) bool) {
		var walk func(*html.Node) bool
		walk = func(node *html.Node) bool {
			if node.Type == html.ElementNode && keep(node) {
				if !yield(node) {
					return false
				}
			}
			for c := node.FirstChild; c != nil; c = c.NextSibling {
				if !walk(c) {
					return false
				}
			}
			return true
		}
		walk(n)
	}
}

// textContent returns the text below n with tags replaced by spaces and whitespace collapsed.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		switch node.Type {
		case html.TextNode:
			b.WriteString(node.Data)
		case html.ElementNode:
			b.WriteByte(' ')
			for c := node.FirstChild; c != nil; c = c.NextSibling {
				walk(c)
			}
			b.WriteByte(' ')
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
