package domain

import "strings"

// Category is the semantic category of a catalog word. It drives the
// template selection of the fallback fusion generator.
type Category string

const (
	CategoryAnimal   Category = "animal"
	CategoryFood     Category = "food"
	CategoryNature   Category = "nature"
	CategoryObject   Category = "object"
	CategoryPlace    Category = "place"
	CategoryAbstract Category = "abstract"
	CategoryOther    Category = "other"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryAnimal, CategoryFood, CategoryNature, CategoryObject,
		CategoryPlace, CategoryAbstract, CategoryOther:
		return true
	}
	return false
}

// NormalizeCategory maps arbitrary input to a valid Category.
// Unknown or empty values become CategoryOther.
func NormalizeCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if c.IsValid() {
		return c
	}
	return CategoryOther
}

// WordRef is a catalog word as seen by the fusion engine. It is owned by
// the caller and read-only to the engine.
type WordRef struct {
	ID       string
	Word     string
	Meaning  string
	Category Category
}

// Word is a full catalog record including presentation fields.
type Word struct {
	ID       string
	Word     string
	Meaning  string
	Icon     string
	Category Category
	ThemeID  *string
}

// Ref projects the catalog record to the engine-facing WordRef.
func (w Word) Ref() WordRef {
	return WordRef{
		ID:       w.ID,
		Word:     w.Word,
		Meaning:  w.Meaning,
		Category: w.Category,
	}
}

// VirtualWordID builds the synthetic identity used for chain fusion, where
// a previous result's text stands in for a catalog word.
func VirtualWordID(word string) string {
	return "virtual-" + strings.ToLower(word)
}

// WordFilter describes a catalog search. Zero values mean "no constraint";
// Limit is clamped by the service.
type WordFilter struct {
	Query    string
	Category *Category
	ThemeID  *string
	Limit    int
}

// CategoryCount is one row of the category breakdown.
type CategoryCount struct {
	Category Category
	Count    int
}
