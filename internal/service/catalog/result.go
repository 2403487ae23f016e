package catalog

import "github.com/lexifusion/lexifusion-backend/internal/domain"

// CategoryBucket is one entry of the category breakdown, including the
// synthetic "all" bucket.
type CategoryBucket struct {
	ID    string
	Name  string
	Count int
}

// RandomPair holds two distinct random catalog words.
type RandomPair struct {
	WordA domain.Word
	WordB domain.Word
}

// ThemeDetail is a theme with its full word list.
type ThemeDetail struct {
	Theme domain.Theme
	Words []domain.Word
}
