package repo

import (
	"log/slog"

	"github.com/pkordes/adventure-checklist/internal/domain"
	"github.com/pkordes/adventure-checklist/internal/kv"
)

// AdventureRepo defines the persistence operations for Adventures.
type AdventureRepo = Repo[domain.Adventure]

// NewAdventureRepo stores adventures under AdventuresKey in store.
func NewAdventureRepo(store kv.Store, log *slog.Logger) AdventureRepo {
	return NewCollection[domain.Adventure](store, AdventuresKey, log)
}
