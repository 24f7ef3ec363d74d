package youtube

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/omni-scout/internal/models"
)

func TestBuildSearchURL(t *testing.T) {
	t.Parallel()

	raw := BuildSearchURL(DefaultAPIURL, "IT trends", "secret-key", 5)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, "/youtube/v3/search", u.Path)

	q := u.Query()
	require.Equal(t, "snippet", q.Get("part"))
	require.Equal(t, "video", q.Get("type"))
	require.Equal(t, "viewCount", q.Get("order"))
	require.Equal(t, "5", q.Get("maxResults"))
	require.Equal(t, "IT trends", q.Get("q"))
	require.Equal(t, "secret-key", q.Get("key"))
}

func TestParse_Items(t *testing.T) {
	t.Parallel()

	const body = `{
  "items": [
    {
      "id": {"videoId": "abc123"},
      "snippet": {
        "title": "AI  weekly\nrecap",
        "description": "What happened\nthis week",
        "channelTitle": "Tech Channel",
        "publishedAt": "2025-03-01T08:30:00Z"
      }
    },
    {
      "id": {},
      "snippet": {"title": "No id video"}
    }
  ]
}`

	records, err := Parse(body)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	require.Equal(t, models.KindVideo, first.Kind)
	require.Equal(t, "AI weekly recap", first.Title)
	require.Equal(t, "What happened this week", first.Summary)
	require.Equal(t, "https://www.youtube.com/watch?v=abc123", first.Link)
	require.Equal(t, first.Link, first.SourceURL)
	require.Equal(t, "Tech Channel", first.Channel)
	require.Equal(t, "abc123", first.VideoID)
	require.Equal(t, time.Date(2025, 3, 1, 8, 30, 0, 0, time.UTC), first.PublishedAt)

	second := records[1]
	require.Empty(t, second.Link)
	require.Empty(t, second.VideoID)
	require.True(t, second.PublishedAt.IsZero())
}

// TestParse_EmptyItems — пустой items означает пустую группу, не ошибку.
func TestParse_EmptyItems(t *testing.T) {
	t.Parallel()

	records, err := Parse(`{"items": []}`)
	require.NoError(t, err)
	require.Empty(t, records)

	records, err = Parse(`{}`)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestParse_MalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := Parse(`{"items": [`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode")
}
