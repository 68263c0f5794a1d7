package verify

import (
	"strings"
	"testing"

	"github.com/everstacklabs/showcase/internal/display"
	"github.com/everstacklabs/showcase/internal/htmlutil"
)

func catalogOptions() []display.ProviderOption {
	return []display.ProviderOption{
		{ID: "kimi", Label: "Kimi"},
		{ID: "minimax", Label: "MiniMax"},
		{ID: "zhipu", Label: "GLM (Zhipu)"},
	}
}

func TestCompareInSync(t *testing.T) {
	page := []htmlutil.Option{
		{Value: "zhipu", Text: "GLM (Zhipu)"},
		{Value: "kimi", Text: "Kimi"},
		{Value: "minimax", Text: "MiniMax"},
	}

	d := Compare("https://models.example.com", catalogOptions(), page)

	if d.HasDrift() {
		t.Errorf("reordering is not drift, got: %+v", d)
	}
	if d.InSync != 3 {
		t.Errorf("InSync = %d, want 3", d.InSync)
	}
}

func TestCompareMissingProvider(t *testing.T) {
	page := []htmlutil.Option{
		{Value: "kimi", Text: "Kimi"},
		{Value: "minimax", Text: "MiniMax"},
	}

	d := Compare("u", catalogOptions(), page)

	if !d.HasDrift() {
		t.Fatal("expected drift")
	}
	if len(d.Missing) != 1 || d.Missing[0].ID != "zhipu" {
		t.Errorf("Missing = %v, want zhipu", d.Missing)
	}
}

func TestCompareUnexpectedProvider(t *testing.T) {
	page := []htmlutil.Option{
		{Value: "kimi", Text: "Kimi"},
		{Value: "minimax", Text: "MiniMax"},
		{Value: "zhipu", Text: "GLM (Zhipu)"},
		{Value: "retired", Text: "Retired"},
	}

	d := Compare("u", catalogOptions(), page)

	if len(d.Unexpected) != 1 || d.Unexpected[0].Value != "retired" {
		t.Errorf("Unexpected = %v, want retired", d.Unexpected)
	}
	if len(d.Missing) != 0 {
		t.Errorf("Missing should be empty, got %v", d.Missing)
	}
}

func TestCompareMislabeledProvider(t *testing.T) {
	page := []htmlutil.Option{
		{Value: "kimi", Text: "Kimi"},
		{Value: "minimax", Text: "Minimax"}, // wrong casing on the page
		{Value: "zhipu", Text: "GLM (Zhipu)"},
	}

	d := Compare("u", catalogOptions(), page)

	if len(d.Mislabeled) != 1 {
		t.Fatalf("Mislabeled = %v, want one entry", d.Mislabeled)
	}
	m := d.Mislabeled[0]
	if m.ID != "minimax" || m.PageLabel != "Minimax" || m.CatalogLabel != "MiniMax" {
		t.Errorf("unexpected mismatch: %+v", m)
	}
	// A mislabeled provider is present, not missing.
	if len(d.Missing) != 0 {
		t.Errorf("Missing should be empty, got %v", d.Missing)
	}
}

func TestCompareDuplicateOnPage(t *testing.T) {
	page := []htmlutil.Option{
		{Value: "kimi", Text: "Kimi"},
		{Value: "kimi", Text: "Kimi"},
		{Value: "minimax", Text: "MiniMax"},
		{Value: "zhipu", Text: "GLM (Zhipu)"},
	}

	d := Compare("u", catalogOptions(), page)

	if len(d.Unexpected) != 1 || d.Unexpected[0].Value != "kimi" {
		t.Errorf("duplicate should be reported as unexpected, got %v", d.Unexpected)
	}
}

func TestCompareEmptyPage(t *testing.T) {
	d := Compare("u", catalogOptions(), nil)

	if len(d.Missing) != 3 {
		t.Errorf("expected all providers missing, got %v", d.Missing)
	}
	if d.InSync != 0 {
		t.Errorf("InSync = %d, want 0", d.InSync)
	}
}

func TestRenderSummaryInSync(t *testing.T) {
	page := []htmlutil.Option{
		{Value: "kimi", Text: "Kimi"},
		{Value: "minimax", Text: "MiniMax"},
		{Value: "zhipu", Text: "GLM (Zhipu)"},
	}
	d := Compare("https://models.example.com", catalogOptions(), page)

	out := RenderSummary(d)
	if !strings.Contains(out, "In sync: 3") {
		t.Errorf("summary missing in-sync count: %s", out)
	}
}

func TestRenderSummaryDrift(t *testing.T) {
	page := []htmlutil.Option{
		{Value: "kimi", Text: "KIMI"},
	}
	d := Compare("https://models.example.com", catalogOptions(), page)

	out := RenderSummary(d)
	for _, want := range []string{"Missing from page (2)", "Mislabeled (1)", `page "KIMI", catalog "Kimi"`} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
