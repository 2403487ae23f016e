package seed

import (
	"fmt"

	"github.com/lexifusion/lexifusion-backend/internal/domain"
)

// lexiconTheme is the single unified theme every seeded word belongs to.
// Any two words in it can be fused.
func lexiconTheme(wordCount int) domain.Theme {
	desc := fmt.Sprintf("%d+ 英语词汇，任意两个都可以融合", wordCount)
	return domain.Theme{
		ID:          "lexicon",
		Name:        "融词宇宙",
		NameEn:      "LexiFusion Universe",
		Description: &desc,
		CoverEmoji:  "✦",
		SortOrder:   0,
		IsActive:    true,
	}
}

var animalWords = []domain.Word{
	{ID: "w-cat", Word: "cat", Meaning: "猫", Icon: "🐱", Category: domain.CategoryAnimal},
	{ID: "w-dog", Word: "dog", Meaning: "狗", Icon: "🐕", Category: domain.CategoryAnimal},
	{ID: "w-bird", Word: "bird", Meaning: "鸟", Icon: "🐦", Category: domain.CategoryAnimal},
	{ID: "w-fish", Word: "fish", Meaning: "鱼", Icon: "🐟", Category: domain.CategoryAnimal},
	{ID: "w-lion", Word: "lion", Meaning: "狮子", Icon: "🦁", Category: domain.CategoryAnimal},
	{ID: "w-tiger", Word: "tiger", Meaning: "老虎", Icon: "🐯", Category: domain.CategoryAnimal},
	{ID: "w-bear", Word: "bear", Meaning: "熊", Icon: "🐻", Category: domain.CategoryAnimal},
	{ID: "w-rabbit", Word: "rabbit", Meaning: "兔子", Icon: "🐰", Category: domain.CategoryAnimal},
	{ID: "w-horse", Word: "horse", Meaning: "马", Icon: "🐴", Category: domain.CategoryAnimal},
	{ID: "w-sheep", Word: "sheep", Meaning: "羊", Icon: "🐑", Category: domain.CategoryAnimal},
	{ID: "w-cow", Word: "cow", Meaning: "牛", Icon: "🐄", Category: domain.CategoryAnimal},
	{ID: "w-pig", Word: "pig", Meaning: "猪", Icon: "🐷", Category: domain.CategoryAnimal},
	{ID: "w-chicken", Word: "chicken", Meaning: "鸡", Icon: "🐔", Category: domain.CategoryAnimal},
	{ID: "w-duck", Word: "duck", Meaning: "鸭", Icon: "🦆", Category: domain.CategoryAnimal},
	{ID: "w-frog", Word: "frog", Meaning: "青蛙", Icon: "🐸", Category: domain.CategoryAnimal},
	{ID: "w-snake", Word: "snake", Meaning: "蛇", Icon: "🐍", Category: domain.CategoryAnimal},
	{ID: "w-whale", Word: "whale", Meaning: "鲸鱼", Icon: "🐋", Category: domain.CategoryAnimal},
	{ID: "w-dolphin", Word: "dolphin", Meaning: "海豚", Icon: "🐬", Category: domain.CategoryAnimal},
	{ID: "w-butterfly", Word: "butterfly", Meaning: "蝴蝶", Icon: "🦋", Category: domain.CategoryAnimal},
	{ID: "w-bee", Word: "bee", Meaning: "蜜蜂", Icon: "🐝", Category: domain.CategoryAnimal},
	{ID: "w-wolf", Word: "wolf", Meaning: "狼", Icon: "🐺", Category: domain.CategoryAnimal},
	{ID: "w-fox", Word: "fox", Meaning: "狐狸", Icon: "🦊", Category: domain.CategoryAnimal},
	{ID: "w-eagle", Word: "eagle", Meaning: "鹰", Icon: "🦅", Category: domain.CategoryAnimal},
	{ID: "w-owl", Word: "owl", Meaning: "猫头鹰", Icon: "🦉", Category: domain.CategoryAnimal},
	{ID: "w-turtle", Word: "turtle", Meaning: "乌龟", Icon: "🐢", Category: domain.CategoryAnimal},
}

var foodWords = []domain.Word{
	{ID: "w-apple", Word: "apple", Meaning: "苹果", Icon: "🍎", Category: domain.CategoryFood},
	{ID: "w-bread", Word: "bread", Meaning: "面包", Icon: "🍞", Category: domain.CategoryFood},
	{ID: "w-cake", Word: "cake", Meaning: "蛋糕", Icon: "🍰", Category: domain.CategoryFood},
	{ID: "w-cheese", Word: "cheese", Meaning: "奶酪", Icon: "🧀", Category: domain.CategoryFood},
	{ID: "w-egg", Word: "egg", Meaning: "鸡蛋", Icon: "🥚", Category: domain.CategoryFood},
	{ID: "w-milk", Word: "milk", Meaning: "牛奶", Icon: "🥛", Category: domain.CategoryFood},
	{ID: "w-rice", Word: "rice", Meaning: "米饭", Icon: "🍚", Category: domain.CategoryFood},
	{ID: "w-coffee", Word: "coffee", Meaning: "咖啡", Icon: "☕", Category: domain.CategoryFood},
	{ID: "w-tea", Word: "tea", Meaning: "茶", Icon: "🍵", Category: domain.CategoryFood},
	{ID: "w-juice", Word: "juice", Meaning: "果汁", Icon: "🧃", Category: domain.CategoryFood},
	{ID: "w-pizza", Word: "pizza", Meaning: "比萨", Icon: "🍕", Category: domain.CategoryFood},
	{ID: "w-burger", Word: "burger", Meaning: "汉堡", Icon: "🍔", Category: domain.CategoryFood},
	{ID: "w-noodle", Word: "noodle", Meaning: "面条", Icon: "🍜", Category: domain.CategoryFood},
	{ID: "w-soup", Word: "soup", Meaning: "汤", Icon: "🍲", Category: domain.CategoryFood},
	{ID: "w-salad", Word: "salad", Meaning: "沙拉", Icon: "🥗", Category: domain.CategoryFood},
	{ID: "w-candy", Word: "candy", Meaning: "糖果", Icon: "🍬", Category: domain.CategoryFood},
	{ID: "w-chocolate", Word: "chocolate", Meaning: "巧克力", Icon: "🍫", Category: domain.CategoryFood},
	{ID: "w-grape", Word: "grape", Meaning: "葡萄", Icon: "🍇", Category: domain.CategoryFood},
	{ID: "w-lemon", Word: "lemon", Meaning: "柠檬", Icon: "🍋", Category: domain.CategoryFood},
	{ID: "w-banana", Word: "banana", Meaning: "香蕉", Icon: "🍌", Category: domain.CategoryFood},
	{ID: "w-strawberry", Word: "strawberry", Meaning: "草莓", Icon: "🍓", Category: domain.CategoryFood},
	{ID: "w-watermelon", Word: "watermelon", Meaning: "西瓜", Icon: "🍉", Category: domain.CategoryFood},
	{ID: "w-tomato", Word: "tomato", Meaning: "番茄", Icon: "🍅", Category: domain.CategoryFood},
	{ID: "w-corn", Word: "corn", Meaning: "玉米", Icon: "🌽", Category: domain.CategoryFood},
	{ID: "w-honey", Word: "honey", Meaning: "蜂蜜", Icon: "🍯", Category: domain.CategoryFood},
	{ID: "w-wine", Word: "wine", Meaning: "葡萄酒", Icon: "🍷", Category: domain.CategoryFood},
	{ID: "w-cookie", Word: "cookie", Meaning: "饼干", Icon: "🍪", Category: domain.CategoryFood},
	{ID: "w-pie", Word: "pie", Meaning: "馅饼", Icon: "🥧", Category: domain.CategoryFood},
	{ID: "w-pepper", Word: "pepper", Meaning: "辣椒", Icon: "🌶️", Category: domain.CategoryFood},
	{ID: "w-salt", Word: "salt", Meaning: "盐", Icon: "🧂", Category: domain.CategoryFood},
}

var natureWords = []domain.Word{
	{ID: "w-sun", Word: "sun", Meaning: "太阳", Icon: "☀️", Category: domain.CategoryNature},
	{ID: "w-moon", Word: "moon", Meaning: "月亮", Icon: "🌙", Category: domain.CategoryNature},
	{ID: "w-star", Word: "star", Meaning: "星星", Icon: "⭐", Category: domain.CategoryNature},
	{ID: "w-cloud", Word: "cloud", Meaning: "云", Icon: "☁️", Category: domain.CategoryNature},
	{ID: "w-rain", Word: "rain", Meaning: "雨", Icon: "🌧️", Category: domain.CategoryNature},
	{ID: "w-snow", Word: "snow", Meaning: "雪", Icon: "❄️", Category: domain.CategoryNature},
	{ID: "w-wind", Word: "wind", Meaning: "风", Icon: "💨", Category: domain.CategoryNature},
	{ID: "w-fire", Word: "fire", Meaning: "火", Icon: "🔥", Category: domain.CategoryNature},
	{ID: "w-water", Word: "water", Meaning: "水", Icon: "💧", Category: domain.CategoryNature},
	{ID: "w-ice", Word: "ice", Meaning: "冰", Icon: "🧊", Category: domain.CategoryNature},
	{ID: "w-tree", Word: "tree", Meaning: "树", Icon: "🌳", Category: domain.CategoryNature},
	{ID: "w-flower", Word: "flower", Meaning: "花", Icon: "🌸", Category: domain.CategoryNature},
	{ID: "w-leaf", Word: "leaf", Meaning: "叶子", Icon: "🍃", Category: domain.CategoryNature},
	{ID: "w-mountain", Word: "mountain", Meaning: "山", Icon: "🏔️", Category: domain.CategoryNature},
	{ID: "w-river", Word: "river", Meaning: "河", Icon: "🏞️", Category: domain.CategoryNature},
	{ID: "w-sea", Word: "sea", Meaning: "海", Icon: "🌊", Category: domain.CategoryNature},
	{ID: "w-forest", Word: "forest", Meaning: "森林", Icon: "🌲", Category: domain.CategoryNature},
	{ID: "w-desert", Word: "desert", Meaning: "沙漠", Icon: "🏜️", Category: domain.CategoryNature},
	{ID: "w-island", Word: "island", Meaning: "岛", Icon: "🏝️", Category: domain.CategoryNature},
	{ID: "w-rainbow", Word: "rainbow", Meaning: "彩虹", Icon: "🌈", Category: domain.CategoryNature},
	{ID: "w-thunder", Word: "thunder", Meaning: "雷", Icon: "⚡", Category: domain.CategoryNature},
	{ID: "w-earth", Word: "earth", Meaning: "地球", Icon: "🌍", Category: domain.CategoryNature},
	{ID: "w-rose", Word: "rose", Meaning: "玫瑰", Icon: "🌹", Category: domain.CategoryNature},
	{ID: "w-seed", Word: "seed", Meaning: "种子", Icon: "🌱", Category: domain.CategoryNature},
}

var objectWords = []domain.Word{
	{ID: "w-book", Word: "book", Meaning: "书", Icon: "📖", Category: domain.CategoryObject},
	{ID: "w-pen", Word: "pen", Meaning: "笔", Icon: "🖊️", Category: domain.CategoryObject},
	{ID: "w-key", Word: "key", Meaning: "钥匙", Icon: "🔑", Category: domain.CategoryObject},
	{ID: "w-clock", Word: "clock", Meaning: "钟", Icon: "🕐", Category: domain.CategoryObject},
	{ID: "w-phone", Word: "phone", Meaning: "手机", Icon: "📱", Category: domain.CategoryObject},
	{ID: "w-camera", Word: "camera", Meaning: "相机", Icon: "📷", Category: domain.CategoryObject},
	{ID: "w-lamp", Word: "lamp", Meaning: "灯", Icon: "💡", Category: domain.CategoryObject},
	{ID: "w-mirror", Word: "mirror", Meaning: "镜子", Icon: "🪞", Category: domain.CategoryObject},
	{ID: "w-bell", Word: "bell", Meaning: "铃", Icon: "🔔", Category: domain.CategoryObject},
	{ID: "w-crown", Word: "crown", Meaning: "王冠", Icon: "👑", Category: domain.CategoryObject},
	{ID: "w-sword", Word: "sword", Meaning: "剑", Icon: "⚔️", Category: domain.CategoryObject},
	{ID: "w-shield", Word: "shield", Meaning: "盾", Icon: "🛡️", Category: domain.CategoryObject},
	{ID: "w-ring", Word: "ring", Meaning: "戒指", Icon: "💍", Category: domain.CategoryObject},
	{ID: "w-gem", Word: "gem", Meaning: "宝石", Icon: "💎", Category: domain.CategoryObject},
	{ID: "w-gift", Word: "gift", Meaning: "礼物", Icon: "🎁", Category: domain.CategoryObject},
	{ID: "w-letter", Word: "letter", Meaning: "信", Icon: "✉️", Category: domain.CategoryObject},
	{ID: "w-map", Word: "map", Meaning: "地图", Icon: "🗺️", Category: domain.CategoryObject},
	{ID: "w-flag", Word: "flag", Meaning: "旗", Icon: "🚩", Category: domain.CategoryObject},
	{ID: "w-candle", Word: "candle", Meaning: "蜡烛", Icon: "🕯️", Category: domain.CategoryObject},
	{ID: "w-umbrella", Word: "umbrella", Meaning: "伞", Icon: "☂️", Category: domain.CategoryObject},
	{ID: "w-glasses", Word: "glasses", Meaning: "眼镜", Icon: "👓", Category: domain.CategoryObject},
	{ID: "w-hat", Word: "hat", Meaning: "帽子", Icon: "🎩", Category: domain.CategoryObject},
	{ID: "w-shoe", Word: "shoe", Meaning: "鞋", Icon: "👟", Category: domain.CategoryObject},
	{ID: "w-bag", Word: "bag", Meaning: "包", Icon: "👜", Category: domain.CategoryObject},
}

var placeWords = []domain.Word{
	{ID: "w-house", Word: "house", Meaning: "房子", Icon: "🏠", Category: domain.CategoryPlace},
	{ID: "w-school", Word: "school", Meaning: "学校", Icon: "🏫", Category: domain.CategoryPlace},
	{ID: "w-hospital", Word: "hospital", Meaning: "医院", Icon: "🏥", Category: domain.CategoryPlace},
	{ID: "w-church", Word: "church", Meaning: "教堂", Icon: "⛪", Category: domain.CategoryPlace},
	{ID: "w-castle", Word: "castle", Meaning: "城堡", Icon: "🏰", Category: domain.CategoryPlace},
	{ID: "w-bridge", Word: "bridge", Meaning: "桥", Icon: "🌉", Category: domain.CategoryPlace},
	{ID: "w-garden", Word: "garden", Meaning: "花园", Icon: "🏡", Category: domain.CategoryPlace},
	{ID: "w-park", Word: "park", Meaning: "公园", Icon: "🏞️", Category: domain.CategoryPlace},
	{ID: "w-beach", Word: "beach", Meaning: "海滩", Icon: "🏖️", Category: domain.CategoryPlace},
	{ID: "w-city", Word: "city", Meaning: "城市", Icon: "🏙️", Category: domain.CategoryPlace},
	{ID: "w-village", Word: "village", Meaning: "村庄", Icon: "🏘️", Category: domain.CategoryPlace},
	{ID: "w-library", Word: "library", Meaning: "图书馆", Icon: "📚", Category: domain.CategoryPlace},
	{ID: "w-market", Word: "market", Meaning: "市场", Icon: "🏪", Category: domain.CategoryPlace},
	{ID: "w-farm", Word: "farm", Meaning: "农场", Icon: "🌾", Category: domain.CategoryPlace},
	{ID: "w-tower", Word: "tower", Meaning: "塔", Icon: "🗼", Category: domain.CategoryPlace},
}

var abstractWords = []domain.Word{
	{ID: "w-love", Word: "love", Meaning: "爱", Icon: "❤️", Category: domain.CategoryAbstract},
	{ID: "w-dream", Word: "dream", Meaning: "梦", Icon: "💭", Category: domain.CategoryAbstract},
	{ID: "w-hope", Word: "hope", Meaning: "希望", Icon: "🌟", Category: domain.CategoryAbstract},
	{ID: "w-peace", Word: "peace", Meaning: "和平", Icon: "☮️", Category: domain.CategoryAbstract},
	{ID: "w-freedom", Word: "freedom", Meaning: "自由", Icon: "🕊️", Category: domain.CategoryAbstract},
	{ID: "w-happiness", Word: "happiness", Meaning: "幸福", Icon: "😊", Category: domain.CategoryAbstract},
	{ID: "w-music", Word: "music", Meaning: "音乐", Icon: "🎵", Category: domain.CategoryAbstract},
	{ID: "w-art", Word: "art", Meaning: "艺术", Icon: "🎨", Category: domain.CategoryAbstract},
	{ID: "w-wisdom", Word: "wisdom", Meaning: "智慧", Icon: "🧠", Category: domain.CategoryAbstract},
	{ID: "w-courage", Word: "courage", Meaning: "勇气", Icon: "💪", Category: domain.CategoryAbstract},
	{ID: "w-time", Word: "time", Meaning: "时间", Icon: "⏰", Category: domain.CategoryAbstract},
	{ID: "w-light", Word: "light", Meaning: "光", Icon: "✨", Category: domain.CategoryAbstract},
	{ID: "w-shadow", Word: "shadow", Meaning: "影子", Icon: "👤", Category: domain.CategoryAbstract},
	{ID: "w-soul", Word: "soul", Meaning: "灵魂", Icon: "👻", Category: domain.CategoryAbstract},
	{ID: "w-magic", Word: "magic", Meaning: "魔法", Icon: "🪄", Category: domain.CategoryAbstract},
	{ID: "w-power", Word: "power", Meaning: "力量", Icon: "⚡", Category: domain.CategoryAbstract},
	{ID: "w-story", Word: "story", Meaning: "故事", Icon: "📜", Category: domain.CategoryAbstract},
	{ID: "w-luck", Word: "luck", Meaning: "运气", Icon: "🍀", Category: domain.CategoryAbstract},
	{ID: "w-truth", Word: "truth", Meaning: "真理", Icon: "💎", Category: domain.CategoryAbstract},
	{ID: "w-joy", Word: "joy", Meaning: "快乐", Icon: "🎉", Category: domain.CategoryAbstract},
}

// otherWords collects the original catalog groups that fall outside the
// six core categories (body, transport, color, sport, season, science,
// emotion, action, material, cosmic).
var otherWords = []domain.Word{
	{ID: "w-heart", Word: "heart", Meaning: "心", Icon: "💖", Category: domain.CategoryOther},
	{ID: "w-eye", Word: "eye", Meaning: "眼睛", Icon: "👁️", Category: domain.CategoryOther},
	{ID: "w-hand", Word: "hand", Meaning: "手", Icon: "🤚", Category: domain.CategoryOther},
	{ID: "w-wing", Word: "wing", Meaning: "翅膀", Icon: "🪽", Category: domain.CategoryOther},
	{ID: "w-bone", Word: "bone", Meaning: "骨头", Icon: "🦴", Category: domain.CategoryOther},
	{ID: "w-tooth", Word: "tooth", Meaning: "牙齿", Icon: "🦷", Category: domain.CategoryOther},
	{ID: "w-brain", Word: "brain", Meaning: "大脑", Icon: "🧠", Category: domain.CategoryOther},
	{ID: "w-blood", Word: "blood", Meaning: "血", Icon: "🩸", Category: domain.CategoryOther},
	{ID: "w-car", Word: "car", Meaning: "汽车", Icon: "🚗", Category: domain.CategoryOther},
	{ID: "w-ship", Word: "ship", Meaning: "船", Icon: "🚢", Category: domain.CategoryOther},
	{ID: "w-plane", Word: "plane", Meaning: "飞机", Icon: "✈️", Category: domain.CategoryOther},
	{ID: "w-train", Word: "train", Meaning: "火车", Icon: "🚂", Category: domain.CategoryOther},
	{ID: "w-bicycle", Word: "bicycle", Meaning: "自行车", Icon: "🚲", Category: domain.CategoryOther},
	{ID: "w-rocket", Word: "rocket", Meaning: "火箭", Icon: "🚀", Category: domain.CategoryOther},
	{ID: "w-boat", Word: "boat", Meaning: "小船", Icon: "⛵", Category: domain.CategoryOther},
	{ID: "w-red", Word: "red", Meaning: "红色", Icon: "🔴", Category: domain.CategoryOther},
	{ID: "w-blue", Word: "blue", Meaning: "蓝色", Icon: "🔵", Category: domain.CategoryOther},
	{ID: "w-green", Word: "green", Meaning: "绿色", Icon: "🟢", Category: domain.CategoryOther},
	{ID: "w-gold", Word: "gold", Meaning: "金色", Icon: "🟡", Category: domain.CategoryOther},
	{ID: "w-black", Word: "black", Meaning: "黑色", Icon: "⚫", Category: domain.CategoryOther},
	{ID: "w-white", Word: "white", Meaning: "白色", Icon: "⚪", Category: domain.CategoryOther},
	{ID: "w-silver", Word: "silver", Meaning: "银色", Icon: "🪙", Category: domain.CategoryOther},
	{ID: "w-ball", Word: "ball", Meaning: "球", Icon: "⚽", Category: domain.CategoryOther},
	{ID: "w-game", Word: "game", Meaning: "游戏", Icon: "🎮", Category: domain.CategoryOther},
	{ID: "w-race", Word: "race", Meaning: "赛跑", Icon: "🏃", Category: domain.CategoryOther},
	{ID: "w-swim", Word: "swim", Meaning: "游泳", Icon: "🏊", Category: domain.CategoryOther},
	{ID: "w-dance", Word: "dance", Meaning: "舞蹈", Icon: "💃", Category: domain.CategoryOther},
	{ID: "w-chess", Word: "chess", Meaning: "象棋", Icon: "♟️", Category: domain.CategoryOther},
	{ID: "w-spring", Word: "spring", Meaning: "春天", Icon: "🌸", Category: domain.CategoryOther},
	{ID: "w-summer", Word: "summer", Meaning: "夏天", Icon: "🌞", Category: domain.CategoryOther},
	{ID: "w-autumn", Word: "autumn", Meaning: "秋天", Icon: "🍂", Category: domain.CategoryOther},
	{ID: "w-winter", Word: "winter", Meaning: "冬天", Icon: "⛄", Category: domain.CategoryOther},
	{ID: "w-storm", Word: "storm", Meaning: "暴风雨", Icon: "🌪️", Category: domain.CategoryOther},
	{ID: "w-fog", Word: "fog", Meaning: "雾", Icon: "🌫️", Category: domain.CategoryOther},
	{ID: "w-atom", Word: "atom", Meaning: "原子", Icon: "⚛️", Category: domain.CategoryOther},
	{ID: "w-robot", Word: "robot", Meaning: "机器人", Icon: "🤖", Category: domain.CategoryOther},
	{ID: "w-crystal", Word: "crystal", Meaning: "水晶", Icon: "🔮", Category: domain.CategoryOther},
	{ID: "w-magnet", Word: "magnet", Meaning: "磁铁", Icon: "🧲", Category: domain.CategoryOther},
	{ID: "w-telescope", Word: "telescope", Meaning: "望远镜", Icon: "🔭", Category: domain.CategoryOther},
	{ID: "w-dna", Word: "DNA", Meaning: "基因", Icon: "🧬", Category: domain.CategoryOther},
	{ID: "w-smile", Word: "smile", Meaning: "微笑", Icon: "😊", Category: domain.CategoryOther},
	{ID: "w-tear", Word: "tear", Meaning: "眼泪", Icon: "😢", Category: domain.CategoryOther},
	{ID: "w-anger", Word: "anger", Meaning: "愤怒", Icon: "😠", Category: domain.CategoryOther},
	{ID: "w-fear", Word: "fear", Meaning: "恐惧", Icon: "😨", Category: domain.CategoryOther},
	{ID: "w-surprise", Word: "surprise", Meaning: "惊喜", Icon: "😲", Category: domain.CategoryOther},
	{ID: "w-calm", Word: "calm", Meaning: "平静", Icon: "😌", Category: domain.CategoryOther},
	{ID: "w-fly", Word: "fly", Meaning: "飞", Icon: "🦅", Category: domain.CategoryOther},
	{ID: "w-run", Word: "run", Meaning: "跑", Icon: "🏃", Category: domain.CategoryOther},
	{ID: "w-sing", Word: "sing", Meaning: "唱歌", Icon: "🎤", Category: domain.CategoryOther},
	{ID: "w-paint", Word: "paint", Meaning: "画画", Icon: "🖌️", Category: domain.CategoryOther},
	{ID: "w-cook", Word: "cook", Meaning: "烹饪", Icon: "👨‍🍳", Category: domain.CategoryOther},
	{ID: "w-read", Word: "read", Meaning: "阅读", Icon: "📚", Category: domain.CategoryOther},
	{ID: "w-write", Word: "write", Meaning: "写", Icon: "✍️", Category: domain.CategoryOther},
	{ID: "w-sleep", Word: "sleep", Meaning: "睡觉", Icon: "😴", Category: domain.CategoryOther},
	{ID: "w-grow", Word: "grow", Meaning: "生长", Icon: "🌱", Category: domain.CategoryOther},
	{ID: "w-build", Word: "build", Meaning: "建造", Icon: "🏗️", Category: domain.CategoryOther},
	{ID: "w-stone", Word: "stone", Meaning: "石头", Icon: "🪨", Category: domain.CategoryOther},
	{ID: "w-iron", Word: "iron", Meaning: "铁", Icon: "⚙️", Category: domain.CategoryOther},
	{ID: "w-wood", Word: "wood", Meaning: "木头", Icon: "🪵", Category: domain.CategoryOther},
	{ID: "w-glass", Word: "glass", Meaning: "玻璃", Icon: "🪟", Category: domain.CategoryOther},
	{ID: "w-sand", Word: "sand", Meaning: "沙", Icon: "⏳", Category: domain.CategoryOther},
	{ID: "w-cotton", Word: "cotton", Meaning: "棉花", Icon: "🧶", Category: domain.CategoryOther},
	{ID: "w-paper", Word: "paper", Meaning: "纸", Icon: "📄", Category: domain.CategoryOther},
	{ID: "w-silk", Word: "silk", Meaning: "丝绸", Icon: "🧣", Category: domain.CategoryOther},
	{ID: "w-sky", Word: "sky", Meaning: "天空", Icon: "🌌", Category: domain.CategoryOther},
	{ID: "w-space", Word: "space", Meaning: "太空", Icon: "🌠", Category: domain.CategoryOther},
	{ID: "w-galaxy", Word: "galaxy", Meaning: "银河", Icon: "🌌", Category: domain.CategoryOther},
	{ID: "w-comet", Word: "comet", Meaning: "彗星", Icon: "☄️", Category: domain.CategoryOther},
	{ID: "w-planet", Word: "planet", Meaning: "行星", Icon: "🪐", Category: domain.CategoryOther},
	{ID: "w-aurora", Word: "aurora", Meaning: "极光", Icon: "🌌", Category: domain.CategoryOther},
}

// CatalogWords returns every seeded word with its theme id set.
func CatalogWords() []domain.Word {
	groups := [][]domain.Word{
		animalWords, foodWords, natureWords, objectWords,
		placeWords, abstractWords, otherWords,
	}

	themeID := "lexicon"
	var out []domain.Word
	for _, g := range groups {
		for _, w := range g {
			w.ThemeID = &themeID
			out = append(out, w)
		}
	}
	return out
}
