package domain

import (
	"fmt"
	"strings"
	"time"
)

// Category classifies catalog items. PET, AVATAR and THEME support an
// active selection slot per account; SKIN and MUSIC are owned-only.
type Category string

const (
	CategoryPet    Category = "PET"
	CategoryAvatar Category = "AVATAR"
	CategoryTheme  Category = "THEME"
	CategorySkin   Category = "SKIN"
	CategoryMusic  Category = "MUSIC"
)

// SelectableCategories lists the categories that support an active selection.
var SelectableCategories = []Category{CategoryPet, CategoryAvatar, CategoryTheme}

// Selectable reports whether items of this category can be set active.
func (c Category) Selectable() bool {
	switch c {
	case CategoryPet, CategoryAvatar, CategoryTheme:
		return true
	default:
		return false
	}
}

// Valid reports whether the category is one of the recognized values.
func (c Category) Valid() bool {
	switch c {
	case CategoryPet, CategoryAvatar, CategoryTheme, CategorySkin, CategoryMusic:
		return true
	default:
		return false
	}
}

// ParseCategory converts a request string into a Category, case-insensitively.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: unknown category %q", ErrInvalidRequest, s)
	}
	return c, nil
}

// CatalogItem is a purchasable shop item. The catalog is read-only to the
// transaction engine; items are created and edited by external tooling.
type CatalogItem struct {
	ID          int      `json:"item_id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       int64    `json:"price"`
	Category    Category `json:"category"`
	ImageRef    string   `json:"image_ref,omitempty"`
	// MediaRef is category-dependent: a Lottie animation locator for pets,
	// an audio locator for music, a static asset reference otherwise.
	MediaRef  string    `json:"media_ref,omitempty"`
	Active    bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
