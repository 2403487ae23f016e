package rest

import (
	"time"

	"github.com/lexifusion/lexifusion-backend/internal/domain"
	"github.com/lexifusion/lexifusion-backend/internal/service/auth"
	"github.com/lexifusion/lexifusion-backend/internal/service/fusion"
)

type wordResponse struct {
	ID       string  `json:"id"`
	Word     string  `json:"word"`
	Meaning  string  `json:"meaning"`
	Icon     string  `json:"icon"`
	Category string  `json:"category"`
	ThemeID  *string `json:"themeId,omitempty"`
}

func toWordResponse(w domain.Word) wordResponse {
	return wordResponse{
		ID:       w.ID,
		Word:     w.Word,
		Meaning:  w.Meaning,
		Icon:     w.Icon,
		Category: w.Category.String(),
		ThemeID:  w.ThemeID,
	}
}

func toWordResponses(words []domain.Word) []wordResponse {
	out := make([]wordResponse, len(words))
	for i, w := range words {
		out[i] = toWordResponse(w)
	}
	return out
}

type fusionResponse struct {
	ID             string    `json:"id"`
	From           [2]string `json:"from"`
	Result         string    `json:"result"`
	Meaning        string    `json:"meaning"`
	Type           string    `json:"type"`
	Icon           string    `json:"icon"`
	Concept        *string   `json:"concept,omitempty"`
	Association    *string   `json:"association,omitempty"`
	SuggestedWords []string  `json:"suggestedWords,omitempty"`
	Example        *string   `json:"example,omitempty"`
	Etymology      *string   `json:"etymology,omitempty"`
	MemoryTip      *string   `json:"memoryTip,omitempty"`
	IsCreative     bool      `json:"isCreative"`
}

func toFusionResponse(r domain.FusionResult) fusionResponse {
	return fusionResponse{
		ID:             r.ID,
		From:           r.From,
		Result:         r.Result,
		Meaning:        r.Meaning,
		Type:           r.Type.String(),
		Icon:           r.Icon,
		Concept:        r.Concept,
		Association:    r.Association,
		SuggestedWords: r.SuggestedWords,
		Example:        r.Example,
		Etymology:      r.Etymology,
		MemoryTip:      r.MemoryTip,
		IsCreative:     r.IsCreative,
	}
}

func toFusionResponses(results []domain.FusionResult) []fusionResponse {
	out := make([]fusionResponse, len(results))
	for i, r := range results {
		out[i] = toFusionResponse(r)
	}
	return out
}

type ruleResponse struct {
	ID             string   `json:"id"`
	WordAID        string   `json:"wordAId"`
	WordBID        string   `json:"wordBId"`
	Result         string   `json:"result"`
	Meaning        string   `json:"meaning"`
	Type           string   `json:"type"`
	Example        *string  `json:"example,omitempty"`
	Icon           string   `json:"icon"`
	Concept        *string  `json:"concept,omitempty"`
	SuggestedWords []string `json:"suggestedWords,omitempty"`
	Association    *string  `json:"association,omitempty"`
}

func toRuleResponse(r domain.FusionRule) ruleResponse {
	return ruleResponse{
		ID:             r.ID,
		WordAID:        r.WordAID,
		WordBID:        r.WordBID,
		Result:         r.Result,
		Meaning:        r.Meaning,
		Type:           r.Type.String(),
		Example:        r.Example,
		Icon:           r.Icon,
		Concept:        r.Concept,
		SuggestedWords: r.SuggestedWords,
		Association:    r.Association,
	}
}

type themeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	NameEn      string  `json:"nameEn"`
	Description *string `json:"description,omitempty"`
	CoverEmoji  string  `json:"coverEmoji"`
	SortOrder   int     `json:"sortOrder"`
	WordCount   int     `json:"wordCount,omitempty"`
	FusionCount int     `json:"fusionCount,omitempty"`
}

func toThemeSummaryResponse(s domain.ThemeSummary) themeResponse {
	resp := toThemeResponse(s.Theme)
	resp.WordCount = s.WordCount
	resp.FusionCount = s.FusionCount
	return resp
}

func toThemeResponse(t domain.Theme) themeResponse {
	return themeResponse{
		ID:          t.ID,
		Name:        t.Name,
		NameEn:      t.NameEn,
		Description: t.Description,
		CoverEmoji:  t.CoverEmoji,
		SortOrder:   t.SortOrder,
	}
}

type userResponse struct {
	ID           string    `json:"id"`
	DeviceID     string    `json:"deviceId"`
	Nickname     *string   `json:"nickname,omitempty"`
	Email        *string   `json:"email,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	LastActiveAt time.Time `json:"lastActiveAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:           u.ID.String(),
		DeviceID:     u.DeviceID,
		Nickname:     u.Nickname,
		Email:        u.Email,
		CreatedAt:    u.CreatedAt,
		LastActiveAt: u.LastActiveAt,
	}
}

type profileResponse struct {
	userResponse
	DiscoveryCount int `json:"discoveryCount"`
	FavoriteCount  int `json:"favoriteCount"`
}

func toProfileResponse(p *auth.Profile) profileResponse {
	return profileResponse{
		userResponse:   toUserResponse(p.User),
		DiscoveryCount: p.DiscoveryCount,
		FavoriteCount:  p.FavoriteCount,
	}
}

type discoveryResponse struct {
	ID           string         `json:"id"`
	Fusion       fusionResponse `json:"fusion"`
	IsFavorite   bool           `json:"isFavorite"`
	DiscoveredAt time.Time      `json:"discoveredAt"`
}

func toDiscoveryResponse(v fusion.DiscoveryView) discoveryResponse {
	return discoveryResponse{
		ID:           v.DiscoveryID.String(),
		Fusion:       toFusionResponse(v.Fusion),
		IsFavorite:   v.IsFavorite,
		DiscoveredAt: v.DiscoveredAt,
	}
}

func toDiscoveryResponses(views []fusion.DiscoveryView) []discoveryResponse {
	out := make([]discoveryResponse, len(views))
	for i, v := range views {
		out[i] = toDiscoveryResponse(v)
	}
	return out
}
