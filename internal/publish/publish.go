// Package publish writes export artifacts into a checkout of the UI assets
// repository, commits them on a fresh branch, and opens a pull request.
package publish

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/go-github/v60/github"
	"golang.org/x/oauth2"

	"github.com/everstacklabs/showcase/internal/config"
	"github.com/everstacklabs/showcase/internal/export"
)

// Publisher pushes provider exports to the assets repo.
type Publisher struct {
	cfg *config.Config
}

// New creates a Publisher.
func New(cfg *config.Config) *Publisher {
	return &Publisher{cfg: cfg}
}

// Result holds the outcome of a publish run.
type Result struct {
	Branch   string
	PRNumber int
	Files    []string
}

// Publish writes the document into the assets checkout, commits it on a
// timestamped branch, pushes, and opens a PR. In dry-run mode it stops
// after writing the files.
func (p *Publisher) Publish(ctx context.Context, doc *export.Document) (*Result, error) {
	if p.cfg.GitHub.AssetsPath == "" {
		return nil, fmt.Errorf("github.assets_path is not configured")
	}

	outDir := filepath.Join(p.cfg.GitHub.AssetsPath, p.cfg.OutputDir)
	files, err := doc.Write(outDir)
	if err != nil {
		return nil, fmt.Errorf("writing exports: %w", err)
	}

	result := &Result{
		Branch: branchName(doc.Version),
		Files:  files,
	}

	if p.cfg.DryRun {
		slog.Info("dry run — would commit and open PR", "branch", result.Branch, "files", len(files))
		return result, nil
	}

	gitOps, err := OpenRepo(p.cfg.GitHub.AssetsPath, p.cfg.GitHub.Token)
	if err != nil {
		return nil, err
	}

	if err := gitOps.CreateBranch(result.Branch); err != nil {
		return nil, fmt.Errorf("creating branch: %w", err)
	}
	if err := gitOps.AddAll(); err != nil {
		return nil, fmt.Errorf("staging changes: %w", err)
	}
	if err := gitOps.Commit(commitMessage(doc)); err != nil {
		return nil, fmt.Errorf("committing: %w", err)
	}
	if err := gitOps.Push(); err != nil {
		return nil, fmt.Errorf("pushing: %w", err)
	}

	if p.cfg.GitHub.Token == "" {
		slog.Warn("no GitHub token configured, skipping PR creation", "branch", result.Branch)
		return result, nil
	}

	prNum, err := p.createPR(ctx, doc, result.Branch)
	if err != nil {
		return nil, fmt.Errorf("creating PR: %w", err)
	}
	result.PRNumber = prNum

	return result, nil
}

func (p *Publisher) createPR(ctx context.Context, doc *export.Document, branch string) (int, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: p.cfg.GitHub.Token})
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	title := commitMessage(doc)
	body := RenderPRBody(doc)

	pr, _, err := client.PullRequests.Create(ctx, p.cfg.GitHub.Owner, p.cfg.GitHub.Repo, &github.NewPullRequest{
		Title: &title,
		Body:  &body,
		Head:  &branch,
		Base:  &p.cfg.GitHub.BaseBranch,
	})
	if err != nil {
		return 0, err
	}

	slog.Info("PR created", "number", pr.GetNumber(), "branch", branch)
	return pr.GetNumber(), nil
}

func branchName(version string) string {
	return fmt.Sprintf("showcase/providers-%s-%s", version, time.Now().Format("20060102-150405"))
}

func commitMessage(doc *export.Document) string {
	return fmt.Sprintf("chore(assets): update provider options for catalog %s", doc.Version)
}

// RenderPRBody formats the PR description for a provider export.
func RenderPRBody(doc *export.Document) string {
	var b strings.Builder

	totalModels := 0
	for _, p := range doc.Providers {
		totalModels += len(p.Models)
	}

	fmt.Fprintf(&b, "## Provider export\n\n")
	fmt.Fprintf(&b, "Catalog version: `%s`\n", doc.Version)
	fmt.Fprintf(&b, "Generated at: %s\n\n", doc.GeneratedAt)
	fmt.Fprintf(&b, "| Provider | Label | Default model | Models |\n")
	fmt.Fprintf(&b, "|---|---|---|---|\n")
	for _, p := range doc.Providers {
		def := p.DefaultModel
		if def == "" {
			def = "—"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %d |\n", p.ID, p.Label, def, len(p.Models))
	}
	fmt.Fprintf(&b, "\n%d providers, %d models.\n", len(doc.Providers), totalModels)

	return b.String()
}
