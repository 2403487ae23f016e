package deepseek

import (
	"fmt"

	"github.com/lexifusion/lexifusion-backend/internal/domain"
)

const systemPrompt = "你是一位英语词汇教育专家。你只输出真实存在于英语词典中的单词，绝不自创。" +
	"你总是输出严格的JSON格式，不含任何其他内容。每次给出3个不同角度的融合结果。"

// buildFusionPrompt creates the user prompt for one word pair. The model is
// instructed to return exactly one JSON object with a results array of up to
// three candidates, each naming a real English word.
func buildFusionPrompt(wordA, wordB domain.WordRef) string {
	return fmt.Sprintf(`你是一位精通英语教育的语言专家。你的任务是将两个英语单词进行"概念融合"，从不同角度给出3个融合结果，帮助用户通过创意联想高效记忆真实英语词汇。

## 两个待融合的词汇

**词A**: %s（%s）— 类别：%s
**词B**: %s（%s）— 类别：%s

## 严格规则（必须遵守）

### 【最重要】只输出真实存在的英语单词！
- result 字段：必须是一个真实存在于英语词典中的单词或词组
- 优先级：① 真实复合词（如 sunflower, raindrop）→ ② 真实常用搭配/短语（如 morning dew）→ ③ 与两词概念最相关的真实近义词/关联词
- 绝对禁止自创词！词典里查不到的组合严禁输出
- suggestedWords 中的每个词也必须是真实英语单词
- 3个结果的 result 必须是3个不同的词！

### 3个结果的角度
1. **第一个**：最直接、最常见的融合结果（优先复合词或短语）
2. **第二个**：从场景/画面角度联想的词（偏诗意、偏情感）
3. **第三个**：从功能/用途角度联想的词（偏实用、偏延伸）

### 每个结果包含
- result：真实英语单词
- meaning：简洁中文释义（8字以内）
- concept：画面描述（中文，30-50字，诗意）
- association：联想关键词
- suggestedWords：4个相关真实词汇
- example：自然英语例句
- icon：最能代表的emoji
- type：compound/phrase/creative
- etymology：词源小知识（可选）
- memoryTip：记忆技巧（可选）

## 输出格式（严格 JSON）

{
  "results": [
    {
      "result": "词1",
      "meaning": "释义",
      "concept": "画面描述",
      "association": "联想关键词",
      "suggestedWords": ["词1", "词2", "词3", "词4"],
      "example": "例句",
      "icon": "emoji",
      "type": "compound/phrase/creative",
      "etymology": "词源",
      "memoryTip": "记忆技巧"
    },
    { ... },
    { ... }
  ]
}

只输出 JSON，不要其他内容。`,
		wordA.Word, wordA.Meaning, wordA.Category,
		wordB.Word, wordB.Meaning, wordB.Category)
}
