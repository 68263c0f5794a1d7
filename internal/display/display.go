// Package display derives human-readable presentation data from catalog
// entries: provider labels, provider option lists, and default models.
// Every function is pure — callers own the entries and nothing is retained.
package display

import (
	"strings"
	"unicode"
)

// ModelDescriptor identifies a single model offered by a provider.
type ModelDescriptor struct {
	Name string
}

// ModelCatalogEntry associates a provider with its ordered list of models.
// The first model is the provider's default.
type ModelCatalogEntry struct {
	Provider string
	Models   []ModelDescriptor
}

// ProviderOption is a display-ready pair for selection lists.
type ProviderOption struct {
	ID    string
	Label string
}

// Curated labels for providers whose generic capitalization reads wrong.
// Keys are the exact lowercase identifiers; any other casing falls through
// to the generic path.
var curatedLabels = map[string]string{
	"minimax": "MiniMax",
	"kimi":    "Kimi",
	"zhipu":   "GLM (Zhipu)",
}

// ProviderLabel maps a provider identifier to a display label. Unknown
// identifiers are split on runs of hyphens, underscores, and whitespace,
// each token gets its first character uppercased (internal casing is
// preserved), and the tokens are joined with spaces. Empty or
// all-separator input yields "".
func ProviderLabel(providerID string) string {
	if label, ok := curatedLabels[providerID]; ok {
		return label
	}
	tokens := strings.FieldsFunc(providerID, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
	for i, t := range tokens {
		tokens[i] = strings.ToUpper(t[:1]) + t[1:]
	}
	return strings.Join(tokens, " ")
}

// ProviderOptions projects catalog entries into selection-list options,
// one per entry in input order. Duplicate providers are preserved.
func ProviderOptions(entries []ModelCatalogEntry) []ProviderOption {
	options := make([]ProviderOption, 0, len(entries))
	for _, e := range entries {
		options = append(options, ProviderOption{
			ID:    e.Provider,
			Label: ProviderLabel(e.Provider),
		})
	}
	return options
}

// FirstModelForProvider returns the default (first) model name for the
// first entry matching provider exactly. Returns "" when no entry matches
// or the matched entry has no models.
func FirstModelForProvider(entries []ModelCatalogEntry, provider string) string {
	for _, e := range entries {
		if e.Provider == provider {
			if len(e.Models) == 0 {
				return ""
			}
			return e.Models[0].Name
		}
	}
	return ""
}
