// Package verify compares the provider options derived from the local
// catalog against the options actually rendered on the published catalog
// page, and reports any drift between the two.
package verify

import (
	"context"
	"fmt"
	"strings"

	"github.com/everstacklabs/showcase/internal/display"
	"github.com/everstacklabs/showcase/internal/htmlutil"
	"github.com/everstacklabs/showcase/internal/httpclient"
)

// ExitDrift is the process exit code when the page disagrees with the
// catalog, so CI can distinguish drift from hard failures.
const ExitDrift = 2

// LabelMismatch is a provider present on both sides with differing labels.
type LabelMismatch struct {
	ID           string
	PageLabel    string
	CatalogLabel string
}

// Drift is the comparison result between catalog and page.
type Drift struct {
	PageURL    string
	Missing    []display.ProviderOption // in the catalog, absent from the page
	Unexpected []htmlutil.Option        // on the page, absent from the catalog
	Mislabeled []LabelMismatch
	InSync     int
}

// HasDrift reports whether the page disagrees with the catalog.
func (d *Drift) HasDrift() bool {
	return len(d.Missing) > 0 || len(d.Unexpected) > 0 || len(d.Mislabeled) > 0
}

// FetchPageOptions downloads the published page and extracts the rendered
// provider options using the given CSS selector. The selector should scope
// past placeholder options ("Choose a provider" and the like).
func FetchPageOptions(ctx context.Context, client *httpclient.Client, url, selector string) ([]htmlutil.Option, error) {
	resp, err := client.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	doc, err := htmlutil.Parse(resp.Body)
	if err != nil {
		return nil, err
	}
	return htmlutil.SelectOptions(doc, selector), nil
}

// Compare matches page options against catalog options by provider ID.
// Catalog options not on the page are Missing, page options not in the
// catalog are Unexpected, and shared IDs with differing labels are
// Mislabeled. Ordering differences are not drift.
func Compare(pageURL string, catalogOptions []display.ProviderOption, pageOptions []htmlutil.Option) *Drift {
	d := &Drift{PageURL: pageURL}

	catalogByID := make(map[string]display.ProviderOption, len(catalogOptions))
	for _, opt := range catalogOptions {
		catalogByID[opt.ID] = opt
	}

	seen := make(map[string]bool, len(pageOptions))
	for _, page := range pageOptions {
		want, ok := catalogByID[page.Value]
		if !ok {
			d.Unexpected = append(d.Unexpected, page)
			continue
		}
		if seen[page.Value] {
			// A provider rendered twice is drift even if both copies
			// carry the right label.
			d.Unexpected = append(d.Unexpected, page)
			continue
		}
		seen[page.Value] = true
		if page.Text != want.Label {
			d.Mislabeled = append(d.Mislabeled, LabelMismatch{
				ID:           page.Value,
				PageLabel:    page.Text,
				CatalogLabel: want.Label,
			})
			continue
		}
		d.InSync++
	}

	for _, opt := range catalogOptions {
		if !seen[opt.ID] {
			d.Missing = append(d.Missing, opt)
		}
	}

	return d
}

// RenderSummary formats a drift report for the CLI.
func RenderSummary(d *Drift) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Page: %s\n", d.PageURL)
	if !d.HasDrift() {
		fmt.Fprintf(&b, "In sync: %d providers match the catalog.\n", d.InSync)
		return b.String()
	}

	if len(d.Missing) > 0 {
		fmt.Fprintf(&b, "Missing from page (%d):\n", len(d.Missing))
		for _, opt := range d.Missing {
			fmt.Fprintf(&b, "  - %s (%s)\n", opt.ID, opt.Label)
		}
	}
	if len(d.Unexpected) > 0 {
		fmt.Fprintf(&b, "Not in catalog (%d):\n", len(d.Unexpected))
		for _, opt := range d.Unexpected {
			fmt.Fprintf(&b, "  - %s (%s)\n", opt.Value, opt.Text)
		}
	}
	if len(d.Mislabeled) > 0 {
		fmt.Fprintf(&b, "Mislabeled (%d):\n", len(d.Mislabeled))
		for _, m := range d.Mislabeled {
			fmt.Fprintf(&b, "  - %s: page %q, catalog %q\n", m.ID, m.PageLabel, m.CatalogLabel)
		}
	}
	fmt.Fprintf(&b, "In sync: %d\n", d.InSync)

	return b.String()
}
