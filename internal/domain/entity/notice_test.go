package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMarkup_PlainText(t *testing.T) {
	segments := ParseMarkup("매일 10시에 오픈합니다")

	require.Len(t, segments, 1)
	assert.Equal(t, "매일 10시에 오픈합니다", segments[0].Text)
	assert.Empty(t, segments[0].URL)
}

func TestParseMarkup_SingleLink(t *testing.T) {
	segments := ParseMarkup("자세한 내용은 [여기](https://example.com/event)를 참고하세요")

	require.Len(t, segments, 3)
	assert.Equal(t, "자세한 내용은 ", segments[0].Text)
	assert.Equal(t, "여기", segments[1].Text)
	assert.Equal(t, "https://example.com/event", segments[1].URL)
	assert.Equal(t, "를 참고하세요", segments[2].Text)
}

func TestParseMarkup_MultipleLinks(t *testing.T) {
	segments := ParseMarkup("[공지](https://a.com)와 [이벤트](https://b.com)")

	require.Len(t, segments, 3)
	assert.Equal(t, "https://a.com", segments[0].URL)
	assert.Equal(t, "와 ", segments[1].Text)
	assert.Equal(t, "https://b.com", segments[2].URL)
}

func TestParseMarkup_MalformedStaysLiteral(t *testing.T) {
	for _, content := range []string{
		"[라벨만 있는 경우",
		"[라벨](괄호가 없는",
		"](https://example.com)",
	} {
		segments := ParseMarkup(content)
		require.Len(t, segments, 1, "content %q", content)
		assert.Equal(t, content, segments[0].Text)
		assert.Empty(t, segments[0].URL)
	}
}

func TestParseMarkup_Empty(t *testing.T) {
	segments := ParseMarkup("")

	require.Len(t, segments, 1)
	assert.Empty(t, segments[0].Text)
}
