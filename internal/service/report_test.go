package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/omni-scout/internal/config"
	"github.com/pribylovaa/omni-scout/internal/models"
	"github.com/pribylovaa/omni-scout/internal/rss"
)

func reportService(maxItems int) *Service {
	cfg := config.Config{}
	cfg.Scout.MaxItems = maxItems

	return &Service{cfg: cfg}
}

func TestNewsReport_MergesTopicAcrossSources(t *testing.T) {
	t.Parallel()

	svc := reportService(2)

	groups := []models.Group{
		{
			Topic:  rss.TopicAI,
			Source: "alpha",
			Records: []models.Record{
				{Title: "first", Link: "https://example.com/1", Source: "alpha", PublishedRaw: "Mon, 25 Aug 2026 10:00:00 GMT"},
			},
		},
		{
			Topic:  rss.TopicAI,
			Source: "beta",
			Records: []models.Record{
				{Title: "second", Source: "beta"},
				{Title: "third", Source: "beta"},
			},
		},
	}

	report := svc.NewsReport(groups)

	require.True(t, strings.HasPrefix(report, "News Scout Report\n"))
	require.Contains(t, report, "["+rss.TopicAI+"]")
	require.Contains(t, report, "[1] first")
	require.Contains(t, report, "[2] second")
	// Предел на тему: третья запись не помещается.
	require.NotContains(t, report, "third")
	require.Contains(t, report, "- published: Mon, 25 Aug 2026 10:00:00 GMT")
	require.Contains(t, report, "- link: https://example.com/1")
}

func TestNewsReport_EmptyTopic(t *testing.T) {
	t.Parallel()

	svc := reportService(5)

	report := svc.NewsReport(nil)

	require.Contains(t, report, "["+rss.TopicAI+"]\n- no results")
	require.Contains(t, report, "["+rss.TopicSemiconductor+"]\n- no results")
}

func TestPapersReport_UnknownAuthorsAndDOI(t *testing.T) {
	t.Parallel()

	svc := reportService(5)

	groups := []models.Group{
		{
			Keywords: []string{"Napoleon", "Russian campaign"},
			Records: []models.Record{
				{Title: "with doi", Authors: []string{"A. Manfred", "E. Tarle"}, DOI: "10.1000/x"},
				{Title: "anonymous"},
			},
		},
	}

	report := svc.PapersReport(groups)

	require.True(t, strings.HasPrefix(report, "History Scout Report\n"))
	require.Contains(t, report, "[Napoleon & Russian campaign]")
	require.Contains(t, report, "- authors: A. Manfred, E. Tarle")
	require.Contains(t, report, "- doi: 10.1000/x")
	require.Contains(t, report, "- authors: unknown")
}

func TestVideosReport_SectionPerKeyword(t *testing.T) {
	t.Parallel()

	svc := reportService(5)

	groups := []models.Group{
		{Keywords: []string{"AI"}, Records: []models.Record{{Title: "clip", Channel: "TechDaily", Link: "https://www.youtube.com/watch?v=abc"}}},
		{Keywords: []string{"IT trends"}},
	}

	report := svc.VideosReport(groups)

	require.True(t, strings.HasPrefix(report, "YouTube Scout Report\n"))
	require.Contains(t, report, "[AI]")
	require.Contains(t, report, "[1] clip")
	require.Contains(t, report, "- channel: TechDaily")
	require.Contains(t, report, "[IT trends]\n- no results")
}
