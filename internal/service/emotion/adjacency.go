package emotion

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/s21platform/echo-service/internal/model"
)

const (
	TagTypePrimary   = "primary"
	TagTypeSecondary = "secondary"
	TagTypeDefault   = "default"
)

type adjacency struct {
	primary string
	related []string
}

var emotionMatches = []adjacency{
	{primary: "lonely", related: []string{"understanding", "companionship", "warm"}},
	{primary: "sad", related: []string{"comfort", "hope", "encouragement"}},
	{primary: "anxious", related: []string{"calm", "peace", "reassurance"}},
	{primary: "happy", related: []string{"joy", "celebration", "gratitude"}},
	{primary: "nostalgic", related: []string{"memories", "understanding", "shared"}},
	{primary: "confused", related: []string{"clarity", "guidance", "support"}},
	{primary: "hopeful", related: []string{"inspiration", "dreams", "possibility"}},
	{primary: "grateful", related: []string{"appreciation", "kindness", "blessing"}},
	{primary: "love", related: []string{"affection", "care", "connection"}},
	{primary: "regret", related: []string{"forgiveness", "acceptance", "growth"}},
}

// Tag describes one selectable emotion.
type Tag struct {
	Value string
	Label string
	Type  string
}

// RelatedTags returns the tags a message tagged with tag should be matched
// against:
//   - a primary tag yields its configured list;
//   - a secondary tag yields its first owning primary followed by that
//     primary's other secondaries;
//   - anything else yields every primary tag.
//
// The returned slice is owned by the caller.
func RelatedTags(tag string) []string {
	for _, entry := range emotionMatches {
		if entry.primary == tag {
			return append([]string(nil), entry.related...)
		}
	}

	for _, entry := range emotionMatches {
		if !slices.Contains(entry.related, tag) {
			continue
		}

		result := make([]string, 0, len(entry.related))
		result = append(result, entry.primary)
		for _, related := range entry.related {
			if related != tag {
				result = append(result, related)
			}
		}
		return result
	}

	return PrimaryTags()
}

func PrimaryTags() []string {
	tags := make([]string, 0, len(emotionMatches))
	for _, entry := range emotionMatches {
		tags = append(tags, entry.primary)
	}
	return tags
}

// Tags lists primaries, then secondaries in first-seen order, then neutral.
func Tags() []Tag {
	primaries := PrimaryTags()
	tags := make([]Tag, 0, len(primaries)*4+1)
	for _, p := range primaries {
		tags = append(tags, Tag{Value: p, Label: label(p), Type: TagTypePrimary})
	}

	seen := make(map[string]struct{})
	for _, entry := range emotionMatches {
		for _, related := range entry.related {
			if _, ok := seen[related]; ok || slices.Contains(primaries, related) {
				continue
			}
			seen[related] = struct{}{}
			tags = append(tags, Tag{Value: related, Label: label(related), Type: TagTypeSecondary})
		}
	}

	return append(tags, Tag{Value: model.NeutralEmotionTag, Label: label(model.NeutralEmotionTag), Type: TagTypeDefault})
}

func label(tag string) string {
	r, size := utf8.DecodeRuneInString(tag)
	if r == utf8.RuneError {
		return tag
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(tag[size:])
}
