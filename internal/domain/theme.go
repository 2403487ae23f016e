package domain

import "time"

// Theme groups catalog words into a themed pack shown in the app.
type Theme struct {
	ID          string
	Name        string
	NameEn      string
	Description *string
	CoverEmoji  string
	SortOrder   int
	IsActive    bool
	CreatedAt   time.Time
}

// ThemeSummary is a theme with aggregate counts for list screens.
type ThemeSummary struct {
	Theme
	WordCount   int
	FusionCount int
}
