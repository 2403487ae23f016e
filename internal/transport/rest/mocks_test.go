package rest

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lexifusion/lexifusion-backend/internal/domain"
	"github.com/lexifusion/lexifusion-backend/internal/service/auth"
	"github.com/lexifusion/lexifusion-backend/internal/service/catalog"
	"github.com/lexifusion/lexifusion-backend/internal/service/fusion"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type catalogServiceMock struct {
	GetWordFunc      func(ctx context.Context, id string) (*domain.Word, error)
	FindWordsFunc    func(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error)
	CategoriesFunc   func(ctx context.Context) ([]catalog.CategoryBucket, error)
	RandomPairFunc   func(ctx context.Context, category *domain.Category) (catalog.RandomPair, error)
	ListThemesFunc   func(ctx context.Context) ([]domain.ThemeSummary, error)
	GetThemeFunc     func(ctx context.Context, id string) (*catalog.ThemeDetail, error)
	ThemeFusionsFunc func(ctx context.Context, themeID string) ([]domain.FusionRule, error)
}

func (m *catalogServiceMock) GetWord(ctx context.Context, id string) (*domain.Word, error) {
	return m.GetWordFunc(ctx, id)
}

func (m *catalogServiceMock) FindWords(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error) {
	return m.FindWordsFunc(ctx, filter)
}

func (m *catalogServiceMock) Categories(ctx context.Context) ([]catalog.CategoryBucket, error) {
	return m.CategoriesFunc(ctx)
}

func (m *catalogServiceMock) RandomPair(ctx context.Context, category *domain.Category) (catalog.RandomPair, error) {
	return m.RandomPairFunc(ctx, category)
}

func (m *catalogServiceMock) ListThemes(ctx context.Context) ([]domain.ThemeSummary, error) {
	return m.ListThemesFunc(ctx)
}

func (m *catalogServiceMock) GetTheme(ctx context.Context, id string) (*catalog.ThemeDetail, error) {
	return m.GetThemeFunc(ctx, id)
}

func (m *catalogServiceMock) ThemeFusions(ctx context.Context, themeID string) ([]domain.FusionRule, error) {
	return m.ThemeFusionsFunc(ctx, themeID)
}

type authServiceMock struct {
	RegisterOrLoginFunc func(ctx context.Context, deviceID string) (*auth.AuthResult, error)
	GetProfileFunc      func(ctx context.Context, userID uuid.UUID) (*auth.Profile, error)
	UpdateProfileFunc   func(ctx context.Context, userID uuid.UUID, nickname, email *string) (*domain.User, error)
}

func (m *authServiceMock) RegisterOrLogin(ctx context.Context, deviceID string) (*auth.AuthResult, error) {
	return m.RegisterOrLoginFunc(ctx, deviceID)
}

func (m *authServiceMock) GetProfile(ctx context.Context, userID uuid.UUID) (*auth.Profile, error) {
	return m.GetProfileFunc(ctx, userID)
}

func (m *authServiceMock) UpdateProfile(ctx context.Context, userID uuid.UUID, nickname, email *string) (*domain.User, error) {
	return m.UpdateProfileFunc(ctx, userID, nickname, email)
}

type fusionServiceMock struct {
	ResolveByIDsFunc    func(ctx context.Context, wordAID, wordBID string) ([]domain.FusionResult, error)
	ResolveByTextFunc   func(ctx context.Context, inputA, inputB fusion.TextWordInput) []domain.FusionResult
	RecordDiscoveryFunc func(ctx context.Context, userID uuid.UUID, wordAID, wordBID string, result domain.FusionResult) (*domain.Discovery, error)
	ListDiscoveriesFunc func(ctx context.Context, userID uuid.UUID) ([]fusion.DiscoveryView, error)
	ListFavoritesFunc   func(ctx context.Context, userID uuid.UUID) ([]fusion.DiscoveryView, error)
	ToggleFavoriteFunc  func(ctx context.Context, userID, discoveryID uuid.UUID) (bool, error)
}

func (m *fusionServiceMock) ResolveByIDs(ctx context.Context, wordAID, wordBID string) ([]domain.FusionResult, error) {
	return m.ResolveByIDsFunc(ctx, wordAID, wordBID)
}

func (m *fusionServiceMock) ResolveByText(ctx context.Context, inputA, inputB fusion.TextWordInput) []domain.FusionResult {
	return m.ResolveByTextFunc(ctx, inputA, inputB)
}

func (m *fusionServiceMock) RecordDiscovery(ctx context.Context, userID uuid.UUID, wordAID, wordBID string, result domain.FusionResult) (*domain.Discovery, error) {
	return m.RecordDiscoveryFunc(ctx, userID, wordAID, wordBID, result)
}

func (m *fusionServiceMock) ListDiscoveries(ctx context.Context, userID uuid.UUID) ([]fusion.DiscoveryView, error) {
	return m.ListDiscoveriesFunc(ctx, userID)
}

func (m *fusionServiceMock) ListFavorites(ctx context.Context, userID uuid.UUID) ([]fusion.DiscoveryView, error) {
	return m.ListFavoritesFunc(ctx, userID)
}

func (m *fusionServiceMock) ToggleFavorite(ctx context.Context, userID, discoveryID uuid.UUID) (bool, error) {
	return m.ToggleFavoriteFunc(ctx, userID, discoveryID)
}
