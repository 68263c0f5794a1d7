package display

import "testing"

func TestProviderLabelCurated(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"minimax", "MiniMax"},
		{"kimi", "Kimi"},
		{"zhipu", "GLM (Zhipu)"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := ProviderLabel(tt.id); got != tt.want {
				t.Errorf("ProviderLabel(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestProviderLabelCuratedIsCaseSensitive(t *testing.T) {
	// Non-lowercase forms fall through to the generic path.
	if got := ProviderLabel("MiniMax"); got != "MiniMax" {
		t.Errorf("ProviderLabel(MiniMax) = %q, want MiniMax", got)
	}
	if got := ProviderLabel("Zhipu"); got != "Zhipu" {
		t.Errorf("ProviderLabel(Zhipu) = %q, want Zhipu", got)
	}
}

func TestProviderLabelGeneric(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{"single token", "openai", "Openai"},
		{"hyphen and underscore", "my-custom_provider", "My Custom Provider"},
		{"run of separators", "foo--bar__baz", "Foo Bar Baz"},
		{"leading and trailing separators", "-openai_", "Openai"},
		{"whitespace separator", "open ai", "Open Ai"},
		{"internal casing preserved", "openAI", "OpenAI"},
		{"already upper", "ALREADY-UPPER", "ALREADY UPPER"},
		{"empty", "", ""},
		{"only separators", "---", ""},
		{"mixed separators only", "-_ _-", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProviderLabel(tt.id); got != tt.want {
				t.Errorf("ProviderLabel(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestProviderLabelIsDeterministic(t *testing.T) {
	for _, id := range []string{"minimax", "my-custom_provider", "", "openai"} {
		first := ProviderLabel(id)
		for i := 0; i < 3; i++ {
			if got := ProviderLabel(id); got != first {
				t.Errorf("ProviderLabel(%q) changed between calls: %q vs %q", id, first, got)
			}
		}
	}
}

func TestProviderOptions(t *testing.T) {
	entries := []ModelCatalogEntry{
		{Provider: "kimi", Models: []ModelDescriptor{{Name: "kimi-v1"}}},
		{Provider: "zhipu"},
		{Provider: "my-custom_provider"},
	}

	options := ProviderOptions(entries)

	if len(options) != len(entries) {
		t.Fatalf("expected %d options, got %d", len(entries), len(options))
	}
	for i, opt := range options {
		if opt.ID != entries[i].Provider {
			t.Errorf("option %d: ID = %q, want %q", i, opt.ID, entries[i].Provider)
		}
		if opt.Label != ProviderLabel(entries[i].Provider) {
			t.Errorf("option %d: Label = %q, want %q", i, opt.Label, ProviderLabel(entries[i].Provider))
		}
	}
	if options[2].Label != "My Custom Provider" {
		t.Errorf("options[2].Label = %q, want My Custom Provider", options[2].Label)
	}
}

func TestProviderOptionsEmptyCatalog(t *testing.T) {
	options := ProviderOptions(nil)
	if len(options) != 0 {
		t.Errorf("expected no options, got %d", len(options))
	}
}

func TestProviderOptionsPreservesDuplicates(t *testing.T) {
	entries := []ModelCatalogEntry{
		{Provider: "openai"},
		{Provider: "openai"},
	}

	options := ProviderOptions(entries)
	if len(options) != 2 {
		t.Fatalf("duplicates must be preserved, got %d options", len(options))
	}
	if options[0] != options[1] {
		t.Errorf("duplicate entries should produce identical options: %v vs %v", options[0], options[1])
	}
}

func TestFirstModelForProvider(t *testing.T) {
	entries := []ModelCatalogEntry{
		{Provider: "kimi", Models: []ModelDescriptor{{Name: "kimi-v1"}, {Name: "kimi-v2"}}},
		{Provider: "minimax", Models: []ModelDescriptor{{Name: "minimax-m2"}}},
		{Provider: "empty"},
	}

	tests := []struct {
		name     string
		provider string
		want     string
	}{
		{"first model wins", "kimi", "kimi-v1"},
		{"other provider", "minimax", "minimax-m2"},
		{"no models", "empty", ""},
		{"unknown provider", "unknown", ""},
		{"match is case sensitive", "Kimi", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstModelForProvider(entries, tt.provider); got != tt.want {
				t.Errorf("FirstModelForProvider(%q) = %q, want %q", tt.provider, got, tt.want)
			}
		})
	}
}

func TestFirstModelForProviderEmptyCatalog(t *testing.T) {
	if got := FirstModelForProvider(nil, "openai"); got != "" {
		t.Errorf("expected empty string on empty catalog, got %q", got)
	}
}

func TestFirstModelForProviderStopsAtFirstMatch(t *testing.T) {
	// A later duplicate entry with models must not shadow an earlier
	// matching entry that has none.
	entries := []ModelCatalogEntry{
		{Provider: "kimi"},
		{Provider: "kimi", Models: []ModelDescriptor{{Name: "kimi-v2"}}},
	}

	if got := FirstModelForProvider(entries, "kimi"); got != "" {
		t.Errorf("expected first match to win, got %q", got)
	}
}
