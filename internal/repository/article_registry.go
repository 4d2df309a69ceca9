package repository

import "magazine-catalog/internal/domain/entity"

// ArticleRegistry is the owned, resettable store of every Article constructed
// against it. It replaces a process-wide list so that independent catalogs and
// tests do not share state.
type ArticleRegistry interface {
	entity.ArticleRegistry
	// All returns a snapshot of every registered article in registration order.
	All() []*entity.Article
	Len() int
	// Reset forgets every registered article. Handles are not reused, so an
	// article registered after Reset never shares an ID with one from before.
	Reset()
}

// MagazineRegistry keeps every Magazine created through the catalog.
type MagazineRegistry interface {
	Register(magazine *entity.Magazine)
	All() []*entity.Magazine
	Len() int
	Reset()
}
