// Package validate checks the catalog's presentation metadata before it is
// exported or published.
package validate

import (
	"fmt"
	"strings"

	"github.com/everstacklabs/showcase/internal/catalog"
	"github.com/everstacklabs/showcase/internal/display"
)

// Severity classifies validation issues.
type Severity int

const (
	SeverityError   Severity = iota // Blocks export/publish
	SeverityWarning                 // Reported but doesn't block
)

// Issue represents a single validation problem.
type Issue struct {
	Severity Severity
	Provider string
	Field    string
	Message  string
}

func (i Issue) String() string {
	sev := "ERROR"
	if i.Severity == SeverityWarning {
		sev = "WARN"
	}
	return fmt.Sprintf("[%s] %s: %s — %s", sev, i.Provider, i.Field, i.Message)
}

// Result holds all validation issues.
type Result struct {
	Issues []Issue
}

// HasErrors returns true if there are any blocking errors.
func (r *Result) HasErrors() bool {
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Errors returns only error-severity issues.
func (r *Result) Errors() []Issue {
	var errs []Issue
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			errs = append(errs, i)
		}
	}
	return errs
}

// Warnings returns only warning-severity issues.
func (r *Result) Warnings() []Issue {
	var warns []Issue
	for _, i := range r.Issues {
		if i.Severity == SeverityWarning {
			warns = append(warns, i)
		}
	}
	return warns
}

// ValidateProvider checks a single provider's presentation metadata.
func ValidateProvider(pc *catalog.ProviderCatalog, name string) *Result {
	r := &Result{}

	if pc.Provider.Name == "" {
		r.Issues = append(r.Issues, Issue{SeverityError, name, "name", "required field is empty"})
	} else if pc.Provider.Name != name {
		r.Issues = append(r.Issues, Issue{SeverityError, name, "name",
			fmt.Sprintf("directory %q does not match name field %q", name, pc.Provider.Name)})
	}

	if pc.Provider.DisplayName == "" {
		r.Issues = append(r.Issues, Issue{SeverityError, name, "display_name", "required field is empty"})
	} else if derived := display.ProviderLabel(name); pc.Provider.DisplayName != derived {
		r.Issues = append(r.Issues, Issue{SeverityWarning, name, "display_name",
			fmt.Sprintf("catalog value %q differs from derived label %q", pc.Provider.DisplayName, derived)})
	}

	if def := pc.Provider.DefaultModel; def != "" {
		if _, ok := pc.Models[def]; !ok {
			r.Issues = append(r.Issues, Issue{SeverityError, name, "default_model",
				fmt.Sprintf("model %q not found in provider", def)})
		}
	}

	if len(pc.Models) == 0 && pc.Provider.ProviderType != "meta" {
		r.Issues = append(r.Issues, Issue{SeverityWarning, name, "models",
			"non-meta provider has no models"})
	}

	for modelName, m := range pc.Models {
		if m.Name == "" {
			r.Issues = append(r.Issues, Issue{SeverityError, name, "models." + modelName + ".name",
				"required field is empty"})
		}
		if m.DisplayName == "" {
			r.Issues = append(r.Issues, Issue{SeverityWarning, name, "models." + modelName + ".display_name",
				"model has no display name"})
		}
	}

	return r
}

// ValidateCatalog validates all providers in a catalog.
func ValidateCatalog(cat *catalog.Catalog) *Result {
	r := &Result{}
	for name, pc := range cat.Providers {
		pr := ValidateProvider(pc, name)
		r.Issues = append(r.Issues, pr.Issues...)
	}
	return r
}

// FormatResult formats validation results for display.
func FormatResult(r *Result) string {
	if len(r.Issues) == 0 {
		return "Validation passed: no issues found."
	}

	var b strings.Builder
	errors := r.Errors()
	warnings := r.Warnings()

	if len(errors) > 0 {
		b.WriteString(fmt.Sprintf("Errors (%d):\n", len(errors)))
		for _, e := range errors {
			b.WriteString(fmt.Sprintf("  %s\n", e))
		}
	}

	if len(warnings) > 0 {
		b.WriteString(fmt.Sprintf("Warnings (%d):\n", len(warnings)))
		for _, w := range warnings {
			b.WriteString(fmt.Sprintf("  %s\n", w))
		}
	}

	return b.String()
}
