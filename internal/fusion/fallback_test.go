package fusion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexifusion/lexifusion-backend/internal/domain"
)

func natureWords() (domain.WordRef, domain.WordRef) {
	sun := domain.WordRef{ID: "w-sun", Word: "sun", Meaning: "太阳", Category: domain.CategoryNature}
	flower := domain.WordRef{ID: "w-flower", Word: "flower", Meaning: "花", Category: domain.CategoryNature}
	return sun, flower
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	sun, flower := natureWords()

	first := Generate(sun, flower)
	second := Generate(sun, flower)

	assert.Equal(t, first, second)
}

func TestGenerate_GoldenNaturePair(t *testing.T) {
	t.Parallel()

	sun, flower := natureWords()
	got := Generate(sun, flower)

	assert.Equal(t, "creative-w-flower+w-sun", got.ID)
	assert.Equal(t, [2]string{"w-flower", "w-sun"}, got.From)
	assert.Equal(t, "weather", got.Result)
	assert.Equal(t, domain.FusionTypeCreative, got.Type)
	assert.Equal(t, "✨", got.Icon)
	assert.True(t, got.IsCreative)
	assert.Nil(t, got.Example)

	require.NotNil(t, got.Concept)
	assert.Equal(t, "太阳与花的融合——自然与自然", *got.Concept)
	require.NotNil(t, got.Association)
	assert.Equal(t, "自然联想", *got.Association)
	assert.Equal(t, []string{"weather", "landscape", "season", "earth", "atmosphere"}, got.SuggestedWords)
}

func TestGenerate_FromPairSortedEitherOrder(t *testing.T) {
	t.Parallel()

	sun, flower := natureWords()

	ab := Generate(sun, flower)
	ba := Generate(flower, sun)

	assert.Equal(t, ab.From, ba.From)
	assert.Equal(t, ab.ID, ba.ID)
	assert.Equal(t, ab.Result, ba.Result)
}

func TestGenerate_UnknownCategoryUsesDefaultTemplate(t *testing.T) {
	t.Parallel()

	a := domain.WordRef{ID: "x-1", Word: "glorp", Meaning: "咕噜", Category: "martian"}
	b := domain.WordRef{ID: "x-2", Word: "zib", Meaning: "兹布", Category: ""}

	got := Generate(a, b)

	assert.NotEmpty(t, got.Result)
	assert.Contains(t, defaultCreativeTemplate.SuggestedWordsPool, got.Result)
	assert.True(t, got.IsCreative)
}

func TestGenerate_TotalOverEmptyInput(t *testing.T) {
	t.Parallel()

	got := Generate(domain.WordRef{}, domain.WordRef{})

	assert.NotEmpty(t, got.Result)
	assert.LessOrEqual(t, len(got.SuggestedWords), 5)
	assert.True(t, got.IsCreative)
}

func TestGenerate_SuggestedWordsBoundedAndDistinct(t *testing.T) {
	t.Parallel()

	cat := domain.WordRef{ID: "w-cat", Word: "cat", Meaning: "猫", Category: domain.CategoryAnimal}
	dog := domain.WordRef{ID: "w-dog", Word: "dog", Meaning: "狗", Category: domain.CategoryAnimal}

	got := Generate(cat, dog)

	assert.LessOrEqual(t, len(got.SuggestedWords), 5)
	require.NotEmpty(t, got.SuggestedWords)
	assert.Equal(t, got.Result, got.SuggestedWords[0])

	seen := map[string]bool{}
	for _, w := range got.SuggestedWords {
		assert.False(t, seen[w], "duplicate suggested word %q", w)
		seen[w] = true
	}
}

func TestPickFromPool(t *testing.T) {
	t.Parallel()

	t.Run("empty pool", func(t *testing.T) {
		assert.Empty(t, pickFromPool(nil, 7, 4))
	})

	t.Run("deterministic", func(t *testing.T) {
		pool := []string{"a", "b", "c", "d", "e", "f"}
		assert.Equal(t, pickFromPool(pool, 42, 4), pickFromPool(pool, 42, 4))
	})

	t.Run("short pool returns what exists", func(t *testing.T) {
		got := pickFromPool([]string{"only"}, 3, 4)
		assert.Equal(t, []string{"only"}, got)
	})

	t.Run("bounded probes", func(t *testing.T) {
		got := pickFromPool([]string{"a", "b"}, 0, 4)
		assert.LessOrEqual(t, len(got), 4)
		assert.NotEmpty(t, got)
	})
}
