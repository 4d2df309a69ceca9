// Package memory provides in-process implementations of the repository
// registries. Nothing is persisted; state lives as long as the registry value.
package memory

import (
	"sync"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/repository"
)

// ArticleRegistry is an append-only arena of articles.
// Handles start at 1 and are never reused, not even after Reset.
// A nil *ArticleRegistry holds nothing and accepts nothing; entity.NewArticle
// rejects it with entity.ErrRegistryRequired.
type ArticleRegistry struct {
	mu       sync.RWMutex
	articles []*entity.Article
	lastID   int64
}

// NewArticleRegistry creates an empty in-memory article registry.
func NewArticleRegistry() *ArticleRegistry {
	return &ArticleRegistry{}
}

var _ repository.ArticleRegistry = (*ArticleRegistry)(nil)

// Register appends article and returns its handle, or 0 on a nil registry.
func (r *ArticleRegistry) Register(article *entity.Article) int64 {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.articles = append(r.articles, article)
	r.lastID++
	return r.lastID
}

// All returns a copy of the registered articles in registration order.
func (r *ArticleRegistry) All() []*entity.Article {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Article, len(r.articles))
	copy(out, r.articles)
	return out
}

// Len returns the number of registered articles.
func (r *ArticleRegistry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.articles)
}

// Reset drops every registered article. The handle sequence keeps counting.
func (r *ArticleRegistry) Reset() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.articles = nil
}
