package repo

import (
	"log/slog"

	"github.com/pkordes/adventure-checklist/internal/domain"
	"github.com/pkordes/adventure-checklist/internal/kv"
)

// TemplateRepo defines the persistence operations for Templates.
type TemplateRepo = Repo[domain.Template]

// NewTemplateRepo stores templates under TemplatesKey in store.
func NewTemplateRepo(store kv.Store, log *slog.Logger) TemplateRepo {
	return NewCollection[domain.Template](store, TemplatesKey, log)
}
