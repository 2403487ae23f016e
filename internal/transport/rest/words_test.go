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

func testWord(id, text string) domain.Word {
	return domain.Word{
		ID:       id,
		Word:     text,
		Meaning:  "meaning of " + text,
		Icon:     "🔥",
		Category: domain.CategoryNature,
	}
}

func TestWordsList_PassesFilter(t *testing.T) {
	t.Parallel()

	var gotFilter domain.WordFilter
	mock := &catalogServiceMock{
		FindWordsFunc: func(_ context.Context, filter domain.WordFilter) ([]domain.Word, error) {
			gotFilter = filter
			return []domain.Word{testWord("w-fire", "fire")}, nil
		},
	}
	h := NewWordsHandler(mock, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/words?q=fi&category=nature&theme=th-forest&limit=10", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if gotFilter.Query != "fi" {
		t.Errorf("expected query %q, got %q", "fi", gotFilter.Query)
	}
	if gotFilter.Category == nil || *gotFilter.Category != domain.CategoryNature {
		t.Errorf("expected category nature, got %v", gotFilter.Category)
	}
	if gotFilter.ThemeID == nil || *gotFilter.ThemeID != "th-forest" {
		t.Errorf("expected theme th-forest, got %v", gotFilter.ThemeID)
	}
	if gotFilter.Limit != 10 {
		t.Errorf("expected limit 10, got %d", gotFilter.Limit)
	}

	var resp struct {
		Words []wordResponse `json:"words"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Words) != 1 || resp.Words[0].ID != "w-fire" {
		t.Errorf("unexpected words payload: %+v", resp.Words)
	}
}

func TestWordsList_InvalidLimit(t *testing.T) {
	t.Parallel()

	h := NewWordsHandler(&catalogServiceMock{}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/words?limit=abc", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestWordsGet_Found(t *testing.T) {
	t.Parallel()

	mock := &catalogServiceMock{
		GetWordFunc: func(_ context.Context, id string) (*domain.Word, error) {
			if id != "w-fire" {
				t.Errorf("expected id w-fire, got %q", id)
			}
			w := testWord("w-fire", "fire")
			return &w, nil
		},
	}
	h := NewWordsHandler(mock, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/words/w-fire", nil)
	req.SetPathValue("id", "w-fire")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp wordResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Word != "fire" || resp.Category != "nature" {
		t.Errorf("unexpected word payload: %+v", resp)
	}
}

func TestWordsGet_NotFound(t *testing.T) {
	t.Parallel()

	mock := &catalogServiceMock{
		GetWordFunc: func(_ context.Context, id string) (*domain.Word, error) {
			return nil, fmt.Errorf("%w: %s", domain.ErrWordNotFound, id)
		},
	}
	h := NewWordsHandler(mock, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/words/w-missing", nil)
	req.SetPathValue("id", "w-missing")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestWordsCategories(t *testing.T) {
	t.Parallel()

	mock := &catalogServiceMock{
		CategoriesFunc: func(_ context.Context) ([]catalog.CategoryBucket, error) {
			return []catalog.CategoryBucket{
				{ID: "nature", Name: "Nature", Count: 12},
				{ID: "animal", Name: "Animals", Count: 7},
			}, nil
		},
	}
	h := NewWordsHandler(mock, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/words/categories", nil)
	rec := httptest.NewRecorder()

	h.Categories(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp struct {
		Categories []categoryBucketResponse `json:"categories"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(resp.Categories))
	}
	if resp.Categories[0].ID != "nature" || resp.Categories[0].Count != 12 {
		t.Errorf("unexpected first bucket: %+v", resp.Categories[0])
	}
}

func TestWordsRandomPair(t *testing.T) {
	t.Parallel()

	var gotCategory *domain.Category
	mock := &catalogServiceMock{
		RandomPairFunc: func(_ context.Context, category *domain.Category) (catalog.RandomPair, error) {
			gotCategory = category
			return catalog.RandomPair{
				WordA: testWord("w-fire", "fire"),
				WordB: testWord("w-water", "water"),
			}, nil
		},
	}
	h := NewWordsHandler(mock, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/words/random-pair?category=nature", nil)
	rec := httptest.NewRecorder()

	h.RandomPair(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if gotCategory == nil || *gotCategory != domain.CategoryNature {
		t.Errorf("expected category nature, got %v", gotCategory)
	}

	var resp randomPairResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.WordA.ID != "w-fire" || resp.WordB.ID != "w-water" {
		t.Errorf("unexpected pair: %+v", resp)
	}
}

func TestWordsRandomPair_ServiceError(t *testing.T) {
	t.Parallel()

	mock := &catalogServiceMock{
		RandomPairFunc: func(_ context.Context, _ *domain.Category) (catalog.RandomPair, error) {
			return catalog.RandomPair{}, fmt.Errorf("%w: not enough words", domain.ErrValidation)
		},
	}
	h := NewWordsHandler(mock, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/words/random-pair", nil)
	rec := httptest.NewRecorder()

	h.RandomPair(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
