package fusion

import "github.com/lexifusion/lexifusion-backend/internal/domain"

// creativeTemplates maps every curated category pairing to its template.
// Pairs not listed here fall back to defaultCreativeTemplate.
var creativeTemplates = map[CategoryPair]Template{
	NewCategoryPair(domain.CategoryAnimal, domain.CategoryAnimal): {
		ConceptSuffixes:     []string{"新物种的想象", "生命与生命的交织", "生物融合的意象", "另一种生灵的可能"},
		SuggestedWordsPool:  []string{"hybrid", "creature", "species", "wild", "nature", "instinct", "pack", "bond"},
		AssociationVariants: []string{"生物融合", "想象与自然", "生命意象"},
	},
	NewCategoryPair(domain.CategoryFood, domain.CategoryFood): {
		ConceptSuffixes:     []string{"可成饮品或料理", "厨房中的碰撞", "味觉与搭配", "餐桌上的创意"},
		SuggestedWordsPool:  []string{"recipe", "dish", "blend", "smoothie", "sauce", "mix", "flavor", "taste", "kitchen", "meal"},
		AssociationVariants: []string{"厨房、餐桌", "料理与饮品", "味觉联想"},
	},
	NewCategoryPair(domain.CategoryFood, domain.CategoryObject): {
		ConceptSuffixes:     []string{"与日常物关联的场景", "生活中的一处画面", "物与食的交织"},
		SuggestedWordsPool:  []string{"kitchen", "table", "recipe", "plate", "cup", "breakfast", "dining", "setting"},
		AssociationVariants: []string{"生活场景", "厨房与物", "日常画面"},
	},
	NewCategoryPair(domain.CategoryObject, domain.CategoryObject): {
		ConceptSuffixes:     []string{"新场景或新物件", "空间与物的组合", "画面中的并置"},
		SuggestedWordsPool:  []string{"scene", "setting", "combination", "space", "layout", "design", "place", "corner"},
		AssociationVariants: []string{"空间与画面", "场景联想", "物与物"},
	},
	NewCategoryPair(domain.CategoryAnimal, domain.CategoryObject): {
		ConceptSuffixes:     []string{"场景与情感", "陪伴与归属", "家的意象"},
		SuggestedWordsPool:  []string{"home", "companion", "warmth", "happiness", "family", "comfort", "nest", "place"},
		AssociationVariants: []string{"家的温暖、陪伴", "情感与空间", "归属感"},
	},
	NewCategoryPair(domain.CategoryAbstract, domain.CategoryAnimal): {
		ConceptSuffixes:     []string{"抽象情感与生命的结合", "情感在生灵中的投射", "意象与生命"},
		SuggestedWordsPool:  []string{"joy", "love", "comfort", "freedom", "peace", "trust", "bond", "soul"},
		AssociationVariants: []string{"情感与意象", "生命与情感", "心灵联想"},
	},
	NewCategoryPair(domain.CategoryAbstract, domain.CategoryObject): {
		ConceptSuffixes:     []string{"抽象与具象的交织", "记忆与物", "氛围与场景"},
		SuggestedWordsPool:  []string{"memory", "feeling", "atmosphere", "mood", "moment", "story", "symbol", "trace"},
		AssociationVariants: []string{"联想与隐喻", "记忆与物", "意境"},
	},
	NewCategoryPair(domain.CategoryAbstract, domain.CategoryAbstract): {
		ConceptSuffixes:     []string{"概念的叠加与延伸", "思想的碰撞", "抽象与抽象"},
		SuggestedWordsPool:  []string{"idea", "notion", "concept", "thought", "sense", "theme", "fusion", "blend"},
		AssociationVariants: []string{"思想融合", "概念延伸", "抽象联想"},
	},
	NewCategoryPair(domain.CategoryNature, domain.CategoryNature): {
		ConceptSuffixes:     []string{"自然意象的融合", "天地之间的画面", "自然与自然"},
		SuggestedWordsPool:  []string{"landscape", "scene", "atmosphere", "weather", "season", "horizon", "sky", "earth"},
		AssociationVariants: []string{"自然与画面", "天地意象", "自然联想"},
	},
	NewCategoryPair(domain.CategoryObject, domain.CategoryPlace): {
		ConceptSuffixes:     []string{"空间与物的关系", "场所与物件", "一地一物"},
		SuggestedWordsPool:  []string{"place", "space", "setting", "spot", "room", "corner", "site", "location"},
		AssociationVariants: []string{"场景联想", "空间与物", "场所感"},
	},
	NewCategoryPair(domain.CategoryAnimal, domain.CategoryNature): {
		ConceptSuffixes:     []string{"自然与生命的交织", "生灵与天地", "栖息与自由"},
		SuggestedWordsPool:  []string{"habitat", "wild", "nature", "life", "nest", "migration", "forest", "sky"},
		AssociationVariants: []string{"自然、生灵", "栖息与自然", "生命与自然"},
	},
	NewCategoryPair(domain.CategoryFood, domain.CategoryNature): {
		ConceptSuffixes:     []string{"自然馈赠与餐桌", "时令与味道", "大地与食物"},
		SuggestedWordsPool:  []string{"harvest", "fresh", "organic", "season", "farm", "garden", "ripe", "natural"},
		AssociationVariants: []string{"时令、新鲜", "自然与餐桌", "大地馈赠"},
	},
	NewCategoryPair(domain.CategoryAbstract, domain.CategoryNature): {
		ConceptSuffixes:     []string{"抽象情感与自然意象", "心境与风景", "意境与自然"},
		SuggestedWordsPool:  []string{"mood", "atmosphere", "feeling", "scene", "dream", "light", "shadow", "breeze"},
		AssociationVariants: []string{"意境、画面", "心境与自然", "情感与风景"},
	},
	NewCategoryPair(domain.CategoryNature, domain.CategoryObject): {
		ConceptSuffixes:     []string{"自然与物件的结合", "户外与物", "景致与物"},
		SuggestedWordsPool:  []string{"outdoor", "garden", "view", "space", "path", "bench", "window", "terrace"},
		AssociationVariants: []string{"户外、景致", "自然与物", "空间与自然"},
	},
	NewCategoryPair(domain.CategoryAbstract, domain.CategoryOther): {
		ConceptSuffixes:     []string{"与抽象概念的联结", "概念的延伸", "联想与想象"},
		SuggestedWordsPool:  []string{"idea", "notion", "mood", "sense", "theme", "fusion", "link", "spark"},
		AssociationVariants: []string{"自由联想", "概念延伸", "抽象联想"},
	},
	NewCategoryPair(domain.CategoryAnimal, domain.CategoryOther): {
		ConceptSuffixes:     []string{"与生命的关联", "生灵与意象", "生命感"},
		SuggestedWordsPool:  []string{"companion", "nature", "life", "wild", "bond", "creature", "soul", "instinct"},
		AssociationVariants: []string{"生命意象", "生灵与物", "自然联想"},
	},
	NewCategoryPair(domain.CategoryFood, domain.CategoryOther): {
		ConceptSuffixes:     []string{"与味觉或餐桌的关联", "厨房与生活", "饮食联想"},
		SuggestedWordsPool:  []string{"taste", "recipe", "meal", "kitchen", "flavor", "table", "dish", "blend"},
		AssociationVariants: []string{"餐桌联想", "味觉与物", "生活场景"},
	},
	NewCategoryPair(domain.CategoryNature, domain.CategoryOther): {
		ConceptSuffixes:     []string{"与自然意象的联结", "天地与物", "自然联想"},
		SuggestedWordsPool:  []string{"landscape", "scene", "atmosphere", "season", "weather", "earth", "sky", "breeze"},
		AssociationVariants: []string{"自然与画面", "天地意象", "自然联想"},
	},
	NewCategoryPair(domain.CategoryObject, domain.CategoryOther): {
		ConceptSuffixes:     []string{"与物件的并置", "场景与物", "空间联想"},
		SuggestedWordsPool:  []string{"scene", "setting", "place", "space", "combination", "layout", "corner", "design"},
		AssociationVariants: []string{"空间与画面", "场景联想", "物与物"},
	},
	NewCategoryPair(domain.CategoryOther, domain.CategoryPlace): {
		ConceptSuffixes:     []string{"与场所的关系", "空间与意象", "地点联想"},
		SuggestedWordsPool:  []string{"place", "space", "location", "spot", "site", "setting", "room", "area"},
		AssociationVariants: []string{"场所感", "空间联想", "地点与物"},
	},
	NewCategoryPair(domain.CategoryOther, domain.CategoryOther): {
		ConceptSuffixes:     []string{"两种概念的碰撞", "跨域联想", "自由融合"},
		SuggestedWordsPool:  []string{"fusion", "blend", "combination", "bridge", "link", "mix", "spark", "idea"},
		AssociationVariants: []string{"自由联想", "概念碰撞", "跨域联想"},
	},
}

// defaultCreativeTemplate serves every pairing without a curated entry.
var defaultCreativeTemplate = Template{
	ConceptSuffixes:     []string{"两种概念的碰撞与联想", "概念融合", "自由联想"},
	SuggestedWordsPool:  []string{"fusion", "blend", "combination", "idea", "mix", "bridge", "link", "spark"},
	AssociationVariants: []string{"自由联想", "概念碰撞", "跨域联想"},
}
