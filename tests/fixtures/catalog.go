// Package fixtures provides reusable catalog data for tests.
// It keeps the canonical example graph and boundary-length strings in one place.
package fixtures

import (
	"strings"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/usecase/catalog"
)

// Canonical example values.
const (
	AuthorName       = "Carry Bradshaw"
	OtherAuthorName  = "Nathaniel Hawthorne"
	VogueName        = "Vogue"
	VogueCategory    = "Fashion"
	ADName           = "AD"
	ADCategory       = "Architecture & Design"
	TutuTitle        = "How to wear a tutu with style"
	DatingTitle      = "Dating life in NYC"
	TooLongTitle     = "How to wear a tutu with style and walk confidently down the street"
	TooShortTitle    = "Test"
	TooShortMagazine = "A"
	TechCategory     = "Tech"
)

// Scenario is the two-magazine, one-author example graph.
type Scenario struct {
	Author  *entity.Author
	Vogue   *entity.Magazine
	AD      *entity.Magazine
	Tutu    *entity.Article
	Dating  *entity.Article
	Service *catalog.Service
}

// TB is the subset of testing.TB the fixtures need.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// NewScenario builds the example graph in svc:
// Carry Bradshaw writes the tutu article for Vogue and the dating article for AD.
func NewScenario(t TB, svc *catalog.Service) *Scenario {
	t.Helper()

	author, err := svc.NewAuthor(AuthorName)
	if err != nil {
		t.Fatalf("NewAuthor: %v", err)
	}
	vogue, err := svc.NewMagazine(VogueName, VogueCategory)
	if err != nil {
		t.Fatalf("NewMagazine(Vogue): %v", err)
	}
	ad, err := svc.NewMagazine(ADName, ADCategory)
	if err != nil {
		t.Fatalf("NewMagazine(AD): %v", err)
	}
	tutu, err := svc.NewArticle(author, vogue, TutuTitle)
	if err != nil {
		t.Fatalf("NewArticle(tutu): %v", err)
	}
	dating, err := svc.NewArticle(author, ad, DatingTitle)
	if err != nil {
		t.Fatalf("NewArticle(dating): %v", err)
	}

	return &Scenario{
		Author:  author,
		Vogue:   vogue,
		AD:      ad,
		Tutu:    tutu,
		Dating:  dating,
		Service: svc,
	}
}

// StringOfLength returns a string of exactly n characters.
// Multibyte characters are used when multibyte is true, so byte and
// character lengths differ.
func StringOfLength(n int, multibyte bool) string {
	if n <= 0 {
		return ""
	}
	if multibyte {
		return strings.Repeat("é", n)
	}
	return strings.Repeat("x", n)
}

// TitleBoundaries returns titles at and just beyond both length limits,
// mapped to whether they are valid.
func TitleBoundaries() map[string]bool {
	return map[string]bool{
		StringOfLength(entity.MinTitleLength-1, false): false,
		StringOfLength(entity.MinTitleLength, false):   true,
		StringOfLength(entity.MaxTitleLength, false):   true,
		StringOfLength(entity.MaxTitleLength+1, false): false,
		StringOfLength(entity.MaxTitleLength, true):    true,
		StringOfLength(entity.MaxTitleLength+1, true):  false,
	}
}
