// Package entity defines the catalog's domain entities and their validation rules.
// Authors and magazines are linked many-to-many through Article, which is the
// only type whose construction mutates state.
package entity

// ArticleRegistry records every Article at construction time.
// Register returns the handle the registry assigned to the article.
type ArticleRegistry interface {
	Register(article *Article) int64
}

// Article joins one author and one magazine under a title.
// Its fields are read-only through the public API.
type Article struct {
	id       int64
	title    string
	author   *Author
	magazine *Magazine
}

// NewArticle validates its arguments and, only if all of them are valid,
// records the new article in registry, in author's list and in magazine's list.
// A failed call leaves all three untouched.
func NewArticle(registry ArticleRegistry, author *Author, magazine *Magazine, title string) (*Article, error) {
	if err := validateArticleArgs(registry, author, magazine, title); err != nil {
		return nil, err
	}

	art := &Article{title: title, author: author, magazine: magazine}
	art.id = registry.Register(art)
	author.articles = append(author.articles, art)
	magazine.articles = append(magazine.articles, art)
	return art, nil
}

// ID returns the handle assigned by the registry.
func (a *Article) ID() int64 { return a.id }

// Title returns the article's title.
func (a *Article) Title() string { return a.title }

// Author returns the author the article is attributed to.
func (a *Article) Author() *Author { return a.author }

// Magazine returns the magazine the article appeared in.
func (a *Article) Magazine() *Magazine { return a.magazine }

// reassignAuthor overwrites the backing author reference without touching
// either author's article list.
func (a *Article) reassignAuthor(author *Author) { a.author = author }

// reassignMagazine overwrites the backing magazine reference without touching
// either magazine's article list.
func (a *Article) reassignMagazine(magazine *Magazine) { a.magazine = magazine }
