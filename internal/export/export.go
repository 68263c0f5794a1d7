// Package export writes the UI-ready presentation artifacts derived from
// the catalog: a providers.json consumed by the selection UI and an
// index.yaml describing the generated files.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/everstacklabs/showcase/internal/display"
)

// ProviderExport is one provider in providers.json.
type ProviderExport struct {
	ID           string   `json:"id"`
	Label        string   `json:"label"`
	DefaultModel string   `json:"default_model,omitempty"`
	Models       []string `json:"models"`
}

// Document is the full providers.json payload.
type Document struct {
	Version     string           `json:"version"`
	GeneratedAt string           `json:"generated_at"`
	Providers   []ProviderExport `json:"providers"`
}

// Index is the index.yaml artifact manifest.
type Index struct {
	Version       string     `yaml:"version"`
	GeneratedAt   string     `yaml:"generated_at"`
	SchemaVersion string     `yaml:"schema_version"`
	Files         []string   `yaml:"files"`
	Stats         IndexStats `yaml:"stats"`
}

// IndexStats holds aggregate counts.
type IndexStats struct {
	TotalProviders int `yaml:"total_providers"`
	TotalModels    int `yaml:"total_models"`
}

// Build derives the export document from ordered catalog entries. Entry
// order is preserved; the first model of each entry is its default.
func Build(version string, entries []display.ModelCatalogEntry) *Document {
	doc := &Document{
		Version:     version,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}

	options := display.ProviderOptions(entries)
	for i, e := range entries {
		pe := ProviderExport{
			ID:     options[i].ID,
			Label:  options[i].Label,
			Models: make([]string, 0, len(e.Models)),
		}
		if len(e.Models) > 0 {
			pe.DefaultModel = e.Models[0].Name
		}
		for _, m := range e.Models {
			pe.Models = append(pe.Models, m.Name)
		}
		doc.Providers = append(doc.Providers, pe)
	}

	return doc
}

// Write writes providers.json and index.yaml into outputDir, creating it
// if needed. Returns the paths written, providers.json first.
func (d *Document) Write(outputDir string) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	providersPath := filepath.Join(outputDir, "providers.json")
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling providers.json: %w", err)
	}
	if err := os.WriteFile(providersPath, append(data, '\n'), 0o644); err != nil {
		return nil, fmt.Errorf("writing providers.json: %w", err)
	}

	totalModels := 0
	for _, p := range d.Providers {
		totalModels += len(p.Models)
	}

	index := Index{
		Version:       d.Version,
		GeneratedAt:   d.GeneratedAt,
		SchemaVersion: "1.0",
		Files:         []string{"providers.json"},
		Stats: IndexStats{
			TotalProviders: len(d.Providers),
			TotalModels:    totalModels,
		},
	}

	indexPath := filepath.Join(outputDir, "index.yaml")
	indexData, err := yaml.Marshal(&index)
	if err != nil {
		return nil, fmt.Errorf("marshaling index.yaml: %w", err)
	}

	header := "# Showcase export index\n# Auto-generated - DO NOT EDIT MANUALLY\n\n"
	if err := os.WriteFile(indexPath, append([]byte(header), indexData...), 0o644); err != nil {
		return nil, fmt.Errorf("writing index.yaml: %w", err)
	}

	return []string{providersPath, indexPath}, nil
}
