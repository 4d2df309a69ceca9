// Package catalog provides the use cases for building and querying the
// author/magazine/article graph. It owns the registries, so every catalog is
// isolated from every other one and can be reset explicitly.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"magazine-catalog/internal/config"
	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/infra/adapter/persistence/memory"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/repository"
)

// Service provides catalog use cases.
// It delegates validation to the entity layer and storage to the registries.
type Service struct {
	Articles  repository.ArticleRegistry
	Magazines repository.MagazineRegistry
	Logger    *slog.Logger
	Metrics   *metrics.CatalogMetrics
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.Logger = logger }
}

// WithMetrics sets the metrics sink. The default records nothing.
func WithMetrics(m *metrics.CatalogMetrics) Option {
	return func(s *Service) { s.Metrics = m }
}

// NewService creates a Service over the given registries.
func NewService(articles repository.ArticleRegistry, magazines repository.MagazineRegistry, opts ...Option) *Service {
	s := &Service{Articles: articles, Magazines: magazines}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromConfig creates a Service backed by fresh in-memory registries, with
// logging written to w and, when enabled, metrics registered on reg.
func NewFromConfig(cfg *config.CatalogConfig, w io.Writer, reg prometheus.Registerer) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	logger := logging.WithFields(logging.New(w, cfg.LogFormat, cfg.LogLevel), map[string]interface{}{
		"component": "catalog",
	})
	opts := []Option{WithLogger(logger)}
	if cfg.MetricsEnabled {
		m, err := metrics.NewCatalogMetrics(reg, cfg.MetricsNamespace)
		if err != nil {
			return nil, fmt.Errorf("init metrics: %w", err)
		}
		opts = append(opts, WithMetrics(m))
	}

	return NewService(memory.NewArticleRegistry(), memory.NewMagazineRegistry(), opts...), nil
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return logging.Discard()
	}
	return s.Logger
}

// NewAuthor creates an author.
// Returns an error matching entity.ErrInvalidArgument if name is empty.
func (s *Service) NewAuthor(name string) (*entity.Author, error) {
	author, err := entity.NewAuthor(name)
	if err != nil {
		s.rejected(metrics.KindAuthor, err)
		return nil, fmt.Errorf("create author: %w", err)
	}

	s.Metrics.RecordCreated(metrics.KindAuthor)
	s.logger().Debug("author created",
		slog.String("author_id", author.ID().String()),
		slog.String("name", author.Name()))
	return author, nil
}

// NewMagazine creates a magazine and records it in the magazine registry.
// Returns an error matching entity.ErrInvalidArgument if the name is not 2 to
// 16 characters or the category is empty.
func (s *Service) NewMagazine(name, category string) (*entity.Magazine, error) {
	magazine, err := entity.NewMagazine(name, category)
	if err != nil {
		s.rejected(metrics.KindMagazine, err)
		return nil, fmt.Errorf("create magazine: %w", err)
	}

	if s.Magazines != nil {
		s.Magazines.Register(magazine)
	}
	s.Metrics.RecordCreated(metrics.KindMagazine)
	s.updateSizes()
	s.logger().Debug("magazine created",
		slog.String("magazine_id", magazine.ID().String()),
		slog.String("name", magazine.Name()),
		slog.String("category", magazine.Category()))
	return magazine, nil
}

// NewArticle creates an article joining author and magazine.
// On success the article is in the article registry, the author's list and the
// magazine's list. On failure none of them change.
func (s *Service) NewArticle(author *entity.Author, magazine *entity.Magazine, title string) (*entity.Article, error) {
	art, err := entity.NewArticle(s.Articles, author, magazine, title)
	if err != nil {
		s.rejected(metrics.KindArticle, err)
		return nil, fmt.Errorf("create article: %w", err)
	}
	s.created(art)
	return art, nil
}

// AddArticleByAuthor creates an article written by author in magazine.
func (s *Service) AddArticleByAuthor(author *entity.Author, magazine *entity.Magazine, title string) (*entity.Article, error) {
	art, err := author.AddArticle(s.Articles, magazine, title)
	if err != nil {
		s.rejected(metrics.KindArticle, err)
		return nil, fmt.Errorf("add article by author: %w", err)
	}
	s.created(art)
	return art, nil
}

// AddArticleToMagazine creates an article in magazine written by author.
func (s *Service) AddArticleToMagazine(magazine *entity.Magazine, author *entity.Author, title string) (*entity.Article, error) {
	art, err := magazine.AddArticle(s.Articles, author, title)
	if err != nil {
		s.rejected(metrics.KindArticle, err)
		return nil, fmt.Errorf("add article to magazine: %w", err)
	}
	s.created(art)
	return art, nil
}

// AllArticles returns every article created in this catalog since the last
// Reset, in creation order.
func (s *Service) AllArticles() []*entity.Article {
	if s.Articles == nil {
		return nil
	}
	return s.Articles.All()
}

// AllMagazines returns every magazine created through this catalog since the
// last Reset, in creation order.
func (s *Service) AllMagazines() []*entity.Magazine {
	if s.Magazines == nil {
		return nil
	}
	return s.Magazines.All()
}

// Reset empties both registries. Authors and magazines keep their own article
// lists.
func (s *Service) Reset() {
	if s.Articles != nil {
		s.Articles.Reset()
	}
	if s.Magazines != nil {
		s.Magazines.Reset()
	}
	s.Metrics.RecordReset()
	s.updateSizes()
	s.logger().Info("catalog registries reset")
}

func (s *Service) created(art *entity.Article) {
	s.Metrics.RecordCreated(metrics.KindArticle)
	s.updateSizes()
	s.logger().Debug("article created",
		slog.Int64("article_id", art.ID()),
		slog.String("author_id", art.Author().ID().String()),
		slog.String("magazine_id", art.Magazine().ID().String()),
		slog.String("title", art.Title()))
}

func (s *Service) rejected(kind string, err error) {
	if !errors.Is(err, entity.ErrInvalidArgument) {
		s.logger().Error("catalog misconfigured",
			slog.String("kind", kind),
			slog.String("error", err.Error()))
		return
	}
	s.Metrics.RecordValidationFailure(kind, err)
	s.logger().Warn("validation failed",
		slog.String("kind", kind),
		slog.String("error", err.Error()))
}

func (s *Service) updateSizes() {
	var articles, magazines int
	if s.Articles != nil {
		articles = s.Articles.Len()
	}
	if s.Magazines != nil {
		magazines = s.Magazines.Len()
	}
	s.Metrics.UpdateRegistrySizes(articles, magazines)
}
