package entity

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Notice is a store announcement. Content may contain the [label](url)
// link markup subset and nothing else.
type Notice struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	IsPinned    bool      `json:"is_pinned"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
}

// NoticeSegment is one piece of parsed notice content: plain text, or a
// link when URL is non-empty.
type NoticeSegment struct {
	Text string `json:"text"`
	URL  string `json:"url,omitempty"`
}

var noticeLinkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

// ParseMarkup splits notice content into text and link segments. Only the
// [label](url) production is recognized; everything else stays literal
// text, so renderers never need to interpret the raw content.
func ParseMarkup(content string) []NoticeSegment {
	matches := noticeLinkPattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return []NoticeSegment{{Text: content}}
	}

	segments := make([]NoticeSegment, 0, len(matches)*2+1)
	prev := 0
	for _, m := range matches {
		if m[0] > prev {
			segments = append(segments, NoticeSegment{Text: content[prev:m[0]]})
		}
		segments = append(segments, NoticeSegment{
			Text: content[m[2]:m[3]],
			URL:  content[m[4]:m[5]],
		})
		prev = m[1]
	}
	if prev < len(content) {
		segments = append(segments, NoticeSegment{Text: content[prev:]})
	}

	return segments
}
