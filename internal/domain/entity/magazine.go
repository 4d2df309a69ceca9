package entity

import "github.com/google/uuid"

// ContributorThreshold is the number of articles an author must exceed in a
// single magazine to count as a contributing author. The comparison is strict:
// three or more articles qualify.
const ContributorThreshold = 2

// Magazine represents a publication venue with a category label.
type Magazine struct {
	id       uuid.UUID
	name     string
	category string
	articles []*Article
}

// NewMagazine creates a Magazine with an empty article list.
// The name must be 2 to 16 characters and the category must be non-empty.
func NewMagazine(name, category string) (*Magazine, error) {
	if err := ValidateMagazineName(name); err != nil {
		return nil, err
	}
	if err := ValidateCategory(category); err != nil {
		return nil, err
	}
	return &Magazine{id: uuid.New(), name: name, category: category}, nil
}

// ID returns the magazine's identifier, assigned at construction.
func (m *Magazine) ID() uuid.UUID { return m.id }

// Name returns the magazine's name.
func (m *Magazine) Name() string { return m.name }

// Category returns the magazine's category.
func (m *Magazine) Category() string { return m.category }

// Articles returns the magazine's articles in publication order.
func (m *Magazine) Articles() []*Article {
	out := make([]*Article, len(m.articles))
	copy(out, m.articles)
	return out
}

// Contributors returns the distinct authors with at least one article here.
func (m *Magazine) Contributors() *Set[*Author] {
	authors := NewSet[*Author]()
	for _, art := range m.articles {
		authors.Add(art.author)
	}
	return authors
}

// ArticleTitles returns the titles in publication order, or nil if the
// magazine has no articles.
func (m *Magazine) ArticleTitles() []string {
	if len(m.articles) == 0 {
		return nil
	}
	titles := make([]string, 0, len(m.articles))
	for _, art := range m.articles {
		titles = append(titles, art.title)
	}
	return titles
}

// ContributingAuthors returns the authors with more than ContributorThreshold
// articles in this magazine, ordered by their first article here.
// It returns nil when no author qualifies.
func (m *Magazine) ContributingAuthors() []*Author {
	counts := make(map[*Author]int)
	var order []*Author
	for _, art := range m.articles {
		if counts[art.author] == 0 {
			order = append(order, art.author)
		}
		counts[art.author]++
	}

	var out []*Author
	for _, a := range order {
		if counts[a] > ContributorThreshold {
			out = append(out, a)
		}
	}
	return out
}

// AddArticle creates an Article by author in this magazine.
// The author and title are checked before anything is recorded.
func (m *Magazine) AddArticle(registry ArticleRegistry, author *Author, title string) (*Article, error) {
	if author == nil {
		return nil, &ValidationError{Field: "author", Message: "author is required"}
	}
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	return NewArticle(registry, author, m, title)
}
