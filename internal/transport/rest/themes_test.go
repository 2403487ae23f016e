package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lexifusion/lexifusion-backend/internal/domain"
	"github.com/lexifusion/lexifusion-backend/internal/service/catalog"
)

func testTheme(id string) domain.Theme {
	return domain.Theme{
		ID:         id,
		Name:       "森林",
		NameEn:     "Forest",
		CoverEmoji: "🌲",
		SortOrder:  1,
	}
}

func TestThemesList(t *testing.T) {
	t.Parallel()

	mock := &catalogServiceMock{
		ListThemesFunc: func(_ context.Context) ([]domain.ThemeSummary, error) {
			return []domain.ThemeSummary{
				{Theme: testTheme("th-forest"), WordCount: 8, FusionCount: 3},
			}, nil
		},
	}
	h := NewThemesHandler(mock, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/themes", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp struct {
		Themes []themeResponse `json:"themes"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Themes) != 1 {
		t.Fatalf("expected 1 theme, got %d", len(resp.Themes))
	}
	got := resp.Themes[0]
	if got.ID != "th-forest" || got.WordCount != 8 || got.FusionCount != 3 {
		t.Errorf("unexpected theme payload: %+v", got)
	}
}

func TestThemesGet_WithWords(t *testing.T) {
	t.Parallel()

	mock := &catalogServiceMock{
		GetThemeFunc: func(_ context.Context, id string) (*catalog.ThemeDetail, error) {
			if id != "th-forest" {
				t.Errorf("expected id th-forest, got %q", id)
			}
			return &catalog.ThemeDetail{
				Theme: testTheme("th-forest"),
				Words: []domain.Word{testWord("w-tree", "tree")},
			}, nil
		},
	}
	h := NewThemesHandler(mock, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/themes/th-forest", nil)
	req.SetPathValue("id", "th-forest")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp themeDetailResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "th-forest" || len(resp.Words) != 1 || resp.Words[0].ID != "w-tree" {
		t.Errorf("unexpected theme detail: %+v", resp)
	}
}

func TestThemesGet_NotFound(t *testing.T) {
	t.Parallel()

	mock := &catalogServiceMock{
		GetThemeFunc: func(_ context.Context, id string) (*catalog.ThemeDetail, error) {
			return nil, fmt.Errorf("%w: theme %s", domain.ErrNotFound, id)
		},
	}
	h := NewThemesHandler(mock, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/themes/th-missing", nil)
	req.SetPathValue("id", "th-missing")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestThemesFusions(t *testing.T) {
	t.Parallel()

	example := "the forest fire spread fast"
	mock := &catalogServiceMock{
		ThemeFusionsFunc: func(_ context.Context, themeID string) ([]domain.FusionRule, error) {
			if themeID != "th-forest" {
				t.Errorf("expected theme th-forest, got %q", themeID)
			}
			return []domain.FusionRule{
				{
					ID:      "r-forest-fire",
					WordAID: "w-fire",
					WordBID: "w-forest",
					Result:  "forest fire",
					Meaning: "森林火灾",
					Type:    domain.FusionTypeCompound,
					Example: &example,
					Icon:    "🔥",
				},
			}, nil
		},
	}
	h := NewThemesHandler(mock, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/themes/th-forest/fusions", nil)
	req.SetPathValue("id", "th-forest")
	rec := httptest.NewRecorder()

	h.Fusions(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp struct {
		Fusions []ruleResponse `json:"fusions"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Fusions) != 1 {
		t.Fatalf("expected 1 fusion, got %d", len(resp.Fusions))
	}
	got := resp.Fusions[0]
	if got.Result != "forest fire" || got.Type != "compound" || got.Example == nil {
		t.Errorf("unexpected fusion payload: %+v", got)
	}
}
