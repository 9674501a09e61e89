// Package emotion tags free text with an emotion and knows which emotions
// pair well with each other.
package emotion

import (
	"strings"

	"github.com/s21platform/echo-service/internal/model"
)

type keywordSet struct {
	tag      string
	keywords []string
}

// Order matters: the first tag wins a tie.
var emotionKeywords = []keywordSet{
	{tag: "lonely", keywords: []string{"孤独", "寂寞", "一个人", "孤单", "无人"}},
	{tag: "sad", keywords: []string{"难过", "伤心", "悲伤", "哭", "痛苦"}},
	{tag: "anxious", keywords: []string{"焦虑", "紧张", "不安", "担心", "害怕"}},
	{tag: "happy", keywords: []string{"开心", "快乐", "幸福", "高兴", "愉快"}},
	{tag: "nostalgic", keywords: []string{"怀念", "想念", "回忆", "从前", "过去"}},
	{tag: "confused", keywords: []string{"迷茫", "困惑", "不知道", "疑惑", "不明白"}},
	{tag: "hopeful", keywords: []string{"希望", "期待", "愿望", "梦想", "未来"}},
	{tag: "grateful", keywords: []string{"感谢", "感恩", "谢谢", "感激", "珍惜"}},
	{tag: "love", keywords: []string{"爱", "喜欢", "心动", "情", "恋"}},
	{tag: "regret", keywords: []string{"后悔", "遗憾", "错过", "可惜", "懊悔"}},
}

// Classify returns the tag whose keywords occur most often in text, or
// model.NeutralEmotionTag when none occur. A keyword counts once however many
// times it appears, and it may sit inside a longer word.
func Classify(text string) string {
	best := model.NeutralEmotionTag
	bestScore := 0

	for _, set := range emotionKeywords {
		score := 0
		for _, kw := range set.keywords {
			if strings.Contains(text, kw) {
				score++
			}
		}
		if score > bestScore {
			best = set.tag
			bestScore = score
		}
	}

	return best
}
