package seed

import "github.com/lexifusion/lexifusion-backend/internal/domain"

// PresetRules returns the curated fusion rules. Pairs are stored sorted
// and ids derive from the sorted pair, matching the unique constraint on
// fusion_rules.
func PresetRules() []domain.FusionRule {
	cheeseConcept := "奶酪与象棋的融合——棋盘(board)与奶酪板(cheeseboard)的联想，奶酪拼盘常用木板盛放"
	cheeseAssoc := "板、拼盘、棋盘"
	cheeseExample := "We served a cheese board at the party."
	sunConcept := "太阳与花的融合——向日葵朝向太阳生长"
	sunAssoc := "阳光、金色"
	sunExample := "Sunflowers turn toward the sun."

	rules := []domain.FusionRule{
		{
			WordAID:        "w-cheese",
			WordBID:        "w-chess",
			Result:         "cheeseboard",
			Meaning:        "奶酪板",
			Type:           domain.FusionTypeCompound,
			Concept:        &cheeseConcept,
			Association:    &cheeseAssoc,
			SuggestedWords: []string{"cheeseboard", "chessboard", "platter", "board", "slice"},
			Example:        &cheeseExample,
			Icon:           "🧀",
		},
		{
			WordAID:        "w-sun",
			WordBID:        "w-flower",
			Result:         "sunflower",
			Meaning:        "向日葵",
			Type:           domain.FusionTypeCompound,
			Concept:        &sunConcept,
			Association:    &sunAssoc,
			SuggestedWords: []string{"sunflower", "sunrise", "bloom", "petal", "gold"},
			Example:        &sunExample,
			Icon:           "🌻",
		},
	}

	for i := range rules {
		a, b := domain.SortPair(rules[i].WordAID, rules[i].WordBID)
		rules[i].WordAID, rules[i].WordBID = a, b
		rules[i].ID = "preset-" + a + "-" + b
	}
	return rules
}
