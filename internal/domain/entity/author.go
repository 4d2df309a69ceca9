package entity

import "github.com/google/uuid"

// Author represents a writer. It owns the ordered list of articles it has written.
type Author struct {
	id       uuid.UUID
	name     string
	articles []*Article
}

// NewAuthor creates an Author with an empty article list.
// It returns a ValidationError wrapping ErrInvalidArgument if name is empty.
func NewAuthor(name string) (*Author, error) {
	if err := ValidateAuthorName(name); err != nil {
		return nil, err
	}
	return &Author{id: uuid.New(), name: name}, nil
}

// ID returns the identifier assigned at construction.
func (a *Author) ID() uuid.UUID { return a.id }

// Name returns the author's name.
func (a *Author) Name() string { return a.name }

// Articles returns the author's articles in the order they were written.
func (a *Author) Articles() []*Article {
	out := make([]*Article, len(a.articles))
	copy(out, a.articles)
	return out
}

// Magazines returns the distinct magazines the author has published in.
func (a *Author) Magazines() *Set[*Magazine] {
	mags := NewSet[*Magazine]()
	for _, art := range a.articles {
		mags.Add(art.magazine)
	}
	return mags
}

// TopicAreas returns the distinct categories of the magazines the author has
// written for, or nil if the author has no articles.
func (a *Author) TopicAreas() *Set[string] {
	if len(a.articles) == 0 {
		return nil
	}
	topics := NewSet[string]()
	for _, art := range a.articles {
		topics.Add(art.magazine.category)
	}
	return topics
}

// AddArticle creates an Article by this author in magazine.
// Validation is the same as NewArticle.
func (a *Author) AddArticle(registry ArticleRegistry, magazine *Magazine, title string) (*Article, error) {
	return NewArticle(registry, a, magazine, title)
}
