package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMagazine(t *testing.T) {
	magazine, err := NewMagazine("Vogue", "Fashion")

	require.NoError(t, err)
	assert.Equal(t, "Vogue", magazine.Name())
	assert.Equal(t, "Fashion", magazine.Category())
	assert.Empty(t, magazine.Articles())
}

func TestNewMagazine_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		magName   string
		category  string
		wantField string
	}{
		{name: "name of length one", magName: "A", category: "Tech", wantField: "name"},
		{name: "empty name", magName: "", category: "Tech", wantField: "name"},
		{name: "name too long", magName: strings.Repeat("n", 17), category: "Tech", wantField: "name"},
		{name: "empty category", magName: "Wired", category: "", wantField: "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			magazine, err := NewMagazine(tt.magName, tt.category)

			assert.Nil(t, magazine)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestMagazine_Contributors(t *testing.T) {
	reg := &stubRegistry{}
	author1 := mustAuthor(t, "Carry Bradshaw")
	author2 := mustAuthor(t, "Nathaniel Hawthorne")
	author3 := mustAuthor(t, "Samantha Jones")
	magazine := mustMagazine(t, "Vogue", "Fashion")

	mustArticle(t, reg, author1, magazine, "How to wear a tutu with style")
	mustArticle(t, reg, author1, magazine, "Dating life in NYC")
	mustArticle(t, reg, author2, magazine, "How to be single and happy")

	contributors := magazine.Contributors()

	assert.Equal(t, 2, contributors.Len())
	assert.True(t, contributors.Contains(author1))
	assert.True(t, contributors.Contains(author2))
	assert.False(t, contributors.Contains(author3))
}

func TestMagazine_ArticleTitles(t *testing.T) {
	reg := &stubRegistry{}
	author := mustAuthor(t, "Carry Bradshaw")
	magazine1 := mustMagazine(t, "Vogue", "Fashion")
	magazine2 := mustMagazine(t, "AD", "Architecture & Design")
	magazine3 := mustMagazine(t, "GQ", "Fashion")

	mustArticle(t, reg, author, magazine1, "How to wear a tutu with style")
	mustArticle(t, reg, author, magazine2, "2023 Eccentric Design Trends")
	mustArticle(t, reg, author, magazine2, "Carrara Marble is so 2020")

	assert.Equal(t, []string{"How to wear a tutu with style"}, magazine1.ArticleTitles())
	assert.Equal(t, []string{"2023 Eccentric Design Trends", "Carrara Marble is so 2020"}, magazine2.ArticleTitles())
	assert.Nil(t, magazine3.ArticleTitles())
}

func TestMagazine_ContributingAuthors(t *testing.T) {
	reg := &stubRegistry{}
	author1 := mustAuthor(t, "Carry Bradshaw")
	author2 := mustAuthor(t, "Nathaniel Hawthorne")
	magazine := mustMagazine(t, "Vogue", "Fashion")

	mustArticle(t, reg, author1, magazine, "How to wear a tutu with style")
	mustArticle(t, reg, author1, magazine, "How to be single and happy")
	mustArticle(t, reg, author1, magazine, "Dating life in NYC")
	mustArticle(t, reg, author2, magazine, "How to be single and happy")
	mustArticle(t, reg, author2, magazine, "Moncler's new winter line")

	assert.Equal(t, []*Author{author1}, magazine.ContributingAuthors())
}

func TestMagazine_ContributingAuthorsThreshold(t *testing.T) {
	titles := []string{"First article", "Second article", "Third article", "Fourth article"}

	tests := []struct {
		name     string
		count    int
		expected bool
	}{
		{name: "one article", count: 1, expected: false},
		{name: "two articles is not enough", count: 2, expected: false},
		{name: "three articles qualifies", count: 3, expected: true},
		{name: "four articles qualifies", count: 4, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := &stubRegistry{}
			author := mustAuthor(t, "Carry Bradshaw")
			magazine := mustMagazine(t, "Vogue", "Fashion")
			for i := 0; i < tt.count; i++ {
				mustArticle(t, reg, author, magazine, titles[i])
			}

			got := magazine.ContributingAuthors()
			if tt.expected {
				assert.Equal(t, []*Author{author}, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestMagazine_ContributingAuthorsOrderedByFirstArticle(t *testing.T) {
	reg := &stubRegistry{}
	author1 := mustAuthor(t, "Carry Bradshaw")
	author2 := mustAuthor(t, "Nathaniel Hawthorne")
	magazine := mustMagazine(t, "Vogue", "Fashion")

	mustArticle(t, reg, author2, magazine, "Scarlet letters one")
	for _, title := range []string{"Tutu one", "Tutu two", "Tutu three"} {
		mustArticle(t, reg, author1, magazine, title)
	}
	mustArticle(t, reg, author2, magazine, "Scarlet letters two")
	mustArticle(t, reg, author2, magazine, "Scarlet letters three")

	assert.Equal(t, []*Author{author2, author1}, magazine.ContributingAuthors())
}

func TestMagazine_ContributingAuthorsNilWhenEmpty(t *testing.T) {
	magazine := mustMagazine(t, "Vogue", "Fashion")

	assert.Nil(t, magazine.ContributingAuthors())
}

func TestMagazine_AddArticle(t *testing.T) {
	reg := &stubRegistry{}
	author := mustAuthor(t, "Carry Bradshaw")
	magazine := mustMagazine(t, "Vogue", "Fashion")

	art, err := magazine.AddArticle(reg, author, "How to wear a tutu with style")

	require.NoError(t, err)
	assert.Same(t, magazine, art.Magazine())
	assert.Same(t, author, art.Author())
	// Appears exactly once even though the magazine created it.
	assert.Equal(t, []*Article{art}, magazine.Articles())
	assert.Equal(t, []*Article{art}, author.Articles())
	assert.Equal(t, []*Article{art}, reg.articles)
}

func TestMagazine_AddArticleInvalid(t *testing.T) {
	author := mustAuthor(t, "Carry Bradshaw")

	tests := []struct {
		name      string
		author    *Author
		title     string
		wantField string
	}{
		{name: "nil author", author: nil, title: "How to wear a tutu with style", wantField: "author"},
		{name: "short title", author: author, title: "Tutu", wantField: "title"},
		{name: "long title", author: author, title: strings.Repeat("t", 51), wantField: "title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := &stubRegistry{}
			magazine := mustMagazine(t, "Vogue", "Fashion")

			art, err := magazine.AddArticle(reg, tt.author, tt.title)

			assert.Nil(t, art)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
			assert.Empty(t, magazine.Articles())
			assert.Empty(t, author.Articles())
			assert.Empty(t, reg.articles)
		})
	}
}
