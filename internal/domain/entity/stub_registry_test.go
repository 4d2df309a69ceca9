package entity

// stubRegistry is a minimal in-memory ArticleRegistry.
type stubRegistry struct {
	articles []*Article
}

func (r *stubRegistry) Register(a *Article) int64 {
	r.articles = append(r.articles, a)
	return int64(len(r.articles))
}

func mustAuthor(t testingT, name string) *Author {
	t.Helper()
	a, err := NewAuthor(name)
	if err != nil {
		t.Fatalf("NewAuthor(%q): %v", name, err)
	}
	return a
}

func mustMagazine(t testingT, name, category string) *Magazine {
	t.Helper()
	m, err := NewMagazine(name, category)
	if err != nil {
		t.Fatalf("NewMagazine(%q, %q): %v", name, category, err)
	}
	return m
}

func mustArticle(t testingT, reg ArticleRegistry, a *Author, m *Magazine, title string) *Article {
	t.Helper()
	art, err := NewArticle(reg, a, m, title)
	if err != nil {
		t.Fatalf("NewArticle(%q): %v", title, err)
	}
	return art
}

// testingT is the subset of testing.TB the helpers need.
type testingT interface {
	Helper()
	Fatalf(format string, args ...any)
}
