package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkordes/adventure-checklist/internal/catalog"
	"github.com/pkordes/adventure-checklist/internal/domain"
	"github.com/pkordes/adventure-checklist/internal/repo"
)

// MissingDefaults returns the default template names, in catalog order, that
// no template in existing carries.
func MissingDefaults(existing []domain.Template) []string {
	have := make(map[string]bool, len(existing))
	for _, t := range existing {
		have[t.Name] = true
	}
	var missing []string
	for _, name := range domain.DefaultTemplateNames() {
		if !have[name] {
			missing = append(missing, name)
		}
	}
	return missing
}

// SeedDefaults appends the default templates whose names are absent from
// existing and returns the merged collection plus the names it added.
//
// Seeding is additive only: a template that already carries a default name,
// however edited, is kept as is. The set of present names is taken from
// existing once, before anything is appended.
func SeedDefaults(existing []domain.Template, now time.Time) ([]domain.Template, []string) {
	missing := MissingDefaults(existing)
	if len(missing) == 0 {
		return existing, nil
	}

	want := make(map[string]bool, len(missing))
	for _, name := range missing {
		want[name] = true
	}

	merged := make([]domain.Template, 0, len(existing)+len(missing))
	merged = append(merged, existing...)
	for _, t := range catalog.Defaults(now) {
		if want[t.Name] {
			merged = append(merged, t)
		}
	}
	return merged, missing
}

// loadSeededTemplates loads the template collection, re-adding any missing
// defaults and persisting the result when something was added. A corrupt
// collection is logged and treated as empty.
func loadSeededTemplates(ctx context.Context, templates repo.TemplateRepo, log *slog.Logger, now func() time.Time) ([]domain.Template, error) {
	res, err := templates.Load(ctx)
	if err != nil {
		return nil, err
	}
	logCorrupt(ctx, log, repo.TemplatesKey, res.Status)
	if len(MissingDefaults(res.Items)) == 0 {
		return res.Items, nil
	}

	var added []string
	items, err := templates.Update(ctx, func(cur repo.LoadResult[domain.Template]) ([]domain.Template, error) {
		var merged []domain.Template
		merged, added = SeedDefaults(cur.Items, now())
		return merged, nil
	})
	if err != nil {
		return nil, fmt.Errorf("seed default templates: %w", err)
	}
	if len(added) > 0 {
		log.InfoContext(ctx, "seeded default templates", "added", added)
	}
	return items, nil
}

func logCorrupt(ctx context.Context, log *slog.Logger, key string, status repo.Status) {
	if status == repo.StatusCorrupt {
		log.WarnContext(ctx, "discarding corrupt collection", "key", key)
	}
}
