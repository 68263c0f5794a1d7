// Package htmlutil extracts structured data from rendered catalog pages.
package htmlutil

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Option is one entry of a rendered selection list.
type Option struct {
	Value string
	Text  string
}

// Parse builds a goquery document from raw HTML.
func Parse(body []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}

// SelectOptions extracts value/text pairs from elements matching the given
// CSS selector, in document order. Elements without a value attribute fall
// back to their text. Placeholder options with neither are skipped.
func SelectOptions(doc *goquery.Document, selector string) []Option {
	var options []Option
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		value, ok := s.Attr("value")
		if !ok {
			value = text
		}
		value = strings.TrimSpace(value)
		if value == "" && text == "" {
			return
		}
		options = append(options, Option{Value: value, Text: text})
	})
	return options
}
