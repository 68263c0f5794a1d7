package catalog

// Model holds the presentation-relevant fields of a model YAML file.
// Catalog files carry more (pricing, limits, modalities); unknown fields
// are ignored on load since showcase never writes back.
type Model struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
	Family      string `yaml:"family"`
	Status      string `yaml:"status"`
}

// Provider represents a provider.yaml file.
type Provider struct {
	Name         string `yaml:"name"`
	DisplayName  string `yaml:"display_name"`
	ProviderType string `yaml:"provider_type"`
	DefaultModel string `yaml:"default_model,omitempty"`
}
