package entity

import (
	"fmt"
	"reflect"

	"magazine-catalog/internal/utils/text"
)

// Length bounds, in Unicode code points.
const (
	MinMagazineNameLength = 2
	MaxMagazineNameLength = 16
	MinTitleLength        = 5
	MaxTitleLength        = 50
)

// ValidateAuthorName checks that an author name is non-empty.
func ValidateAuthorName(name string) error {
	if name == "" {
		return &ValidationError{Field: "name", Message: "author name must be a non-empty string"}
	}
	return nil
}

// ValidateMagazineName checks that a magazine name is between
// MinMagazineNameLength and MaxMagazineNameLength characters.
func ValidateMagazineName(name string) error {
	if !text.LengthBetween(name, MinMagazineNameLength, MaxMagazineNameLength) {
		return &ValidationError{
			Field: "name",
			Message: fmt.Sprintf("magazine name must be between %d and %d characters, got %d",
				MinMagazineNameLength, MaxMagazineNameLength, text.CountRunes(name)),
		}
	}
	return nil
}

// ValidateCategory checks that a magazine category is non-empty.
func ValidateCategory(category string) error {
	if category == "" {
		return &ValidationError{Field: "category", Message: "category must be a non-empty string"}
	}
	return nil
}

// ValidateTitle checks that an article title is between MinTitleLength and
// MaxTitleLength characters.
func ValidateTitle(title string) error {
	if !text.LengthBetween(title, MinTitleLength, MaxTitleLength) {
		return &ValidationError{
			Field: "title",
			Message: fmt.Sprintf("title must be between %d and %d characters, got %d",
				MinTitleLength, MaxTitleLength, text.CountRunes(title)),
		}
	}
	return nil
}

// validateArticleArgs runs every check an Article needs before anything is mutated.
func validateArticleArgs(registry ArticleRegistry, author *Author, magazine *Magazine, title string) error {
	if isNilRegistry(registry) {
		return ErrRegistryRequired
	}
	if author == nil {
		return &ValidationError{Field: "author", Message: "author is required"}
	}
	if magazine == nil {
		return &ValidationError{Field: "magazine", Message: "magazine is required"}
	}
	return ValidateTitle(title)
}

// isNilRegistry reports whether registry is nil, including a nil pointer held
// in the interface.
func isNilRegistry(registry ArticleRegistry) bool {
	if registry == nil {
		return true
	}
	v := reflect.ValueOf(registry)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
