package rss

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/omni-scout/internal/models"
)

// mkRSS — собирает минимальный RSS 2.0 документ.
func mkRSS(items ...string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    ` + strings.Join(items, "\n") + `
  </channel>
</rss>`
}

// mkItem — утилита шаблона <item>.
func mkItem(title, link, pubDate, description string) string {
	var b strings.Builder
	b.WriteString("<item>\n")
	if title != "" {
		fmt.Fprintf(&b, "<title>%s</title>\n", title)
	}
	if link != "" {
		fmt.Fprintf(&b, "<link>%s</link>\n", link)
	}
	if pubDate != "" {
		fmt.Fprintf(&b, "<pubDate>%s</pubDate>\n", pubDate)
	}
	if description != "" {
		fmt.Fprintf(&b, "<description>%s</description>\n", description)
	}
	b.WriteString("</item>")
	return b.String()
}

func TestParse_BasicFields(t *testing.T) {
	t.Parallel()

	doc := mkRSS(mkItem(
		"New  chip   process",
		"https://example.org/a?utm_source=rss#frag",
		"Mon, 02 Jan 2006 15:04:05 -0700",
		"Line one\nLine two",
	))

	records, err := Parse(doc, "Example Feed", "https://example.org/rss")
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	require.Equal(t, models.KindNews, rec.Kind)
	require.Equal(t, "New chip process", rec.Title)
	require.Equal(t, "Line one Line two", rec.Summary)
	require.Equal(t, "https://example.org/a", rec.Link)
	require.Equal(t, "Example Feed", rec.Source)
	require.Equal(t, "https://example.org/rss", rec.SourceURL)
	require.Equal(t, "Mon, 02 Jan 2006 15:04:05 -0700", rec.PublishedRaw)
	require.Equal(t, time.Date(2006, 1, 2, 22, 4, 5, 0, time.UTC), rec.PublishedAt)
}

// TestParse_TitleRequired — записи без заголовка отбрасываются
// на границе нормализации.
func TestParse_TitleRequired(t *testing.T) {
	t.Parallel()

	doc := mkRSS(
		mkItem("", "https://example.org/1", "", "no title"),
		mkItem("   ", "https://example.org/2", "", "spaces only"),
		mkItem("Kept", "https://example.org/3", "", ""),
	)

	records, err := Parse(doc, "src", "u")
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Kept", records[0].Title)
}

// TestParse_NormalizationIdempotent — повторная нормализация уже
// нормализованного текста даёт байт-в-байт тот же результат.
func TestParse_NormalizationIdempotent(t *testing.T) {
	t.Parallel()

	doc := mkRSS(mkItem("A \n  B\t C", "https://example.org", "", "x\n\n y"))

	first, err := Parse(doc, "s", "u")
	require.NoError(t, err)
	require.Len(t, first, 1)

	renormalized := mkRSS(mkItem(first[0].Title, first[0].Link, "", first[0].Summary))
	second, err := Parse(renormalized, "s", "u")
	require.NoError(t, err)
	require.Len(t, second, 1)

	require.Equal(t, first[0].Title, second[0].Title)
	require.Equal(t, first[0].Summary, second[0].Summary)
}

func TestParse_GUIDFallbackLink(t *testing.T) {
	t.Parallel()

	doc := mkRSS(`<item>
<title>T</title>
<guid isPermaLink="false">https://example.org/from-guid</guid>
</item>`)

	records, err := Parse(doc, "s", "u")
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "https://example.org/from-guid", records[0].Link)
}

func TestParse_UnknownDateKeepsRaw(t *testing.T) {
	t.Parallel()

	doc := mkRSS(mkItem("T", "https://example.org", "tomorrow-ish", ""))

	records, err := Parse(doc, "s", "u")
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.True(t, records[0].PublishedAt.IsZero())
	require.Equal(t, "tomorrow-ish", records[0].PublishedRaw)
}

func TestParse_MalformedXML(t *testing.T) {
	t.Parallel()

	_, err := Parse("<rss><channel><item></channel>", "s", "u")
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode")
}

func TestFilterByTopic(t *testing.T) {
	t.Parallel()

	records := []models.Record{
		{Title: "Generative AI breakthrough", Summary: ""},
		{Title: "Cooking recipes", Summary: "nothing relevant"},
		{Title: "Vague headline", Summary: "new LLM released"},
		{Title: "Foundry expands", Summary: "wafer capacity"},
	}

	ai := FilterByTopic(records, TopicAI)
	require.Len(t, ai, 2)
	require.Equal(t, "Generative AI breakthrough", ai[0].Title)
	require.Equal(t, "Vague headline", ai[1].Title)

	semi := FilterByTopic(records, TopicSemiconductor)
	require.Len(t, semi, 1)
	require.Equal(t, "Foundry expands", semi[0].Title)
}

// TestFilterByTopic_CaseInsensitive — вхождение проверяется без учёта регистра.
func TestFilterByTopic_CaseInsensitive(t *testing.T) {
	t.Parallel()

	records := []models.Record{
		{Title: "HBM supply update"},
		{Title: "New CHIP act details"},
	}

	got := FilterByTopic(records, TopicSemiconductor)
	require.Len(t, got, 2)
}
