package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/omni-scout/internal/models"
)

func TestFinalizeRecord_AssignsIDAndFetchedAt(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	rec, ok := finalizeRecord(models.Record{
		Kind:  models.KindNews,
		Title: "  Chip breakthrough  ",
		Link:  " https://example.com/a ",
	}, now)

	require.True(t, ok)
	require.NotEqual(t, uuid.Nil, rec.ID)
	require.Equal(t, "Chip breakthrough", rec.Title)
	require.Equal(t, "https://example.com/a", rec.Link)
	require.Equal(t, now, rec.FetchedAt)
}

func TestFinalizeRecord_KeepsExistingID(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	rec, ok := finalizeRecord(models.Record{
		ID:    id,
		Kind:  models.KindPaper,
		Title: "Attention survey",
	}, time.Now().UTC())

	require.True(t, ok)
	require.Equal(t, id, rec.ID)
}

func TestFinalizeRecord_DropsUntitledNews(t *testing.T) {
	t.Parallel()

	_, ok := finalizeRecord(models.Record{
		Kind: models.KindNews,
		Link: "https://example.com/a",
	}, time.Now().UTC())

	require.False(t, ok)
}

func TestFinalizeRecord_UntitledPaperSurvives(t *testing.T) {
	t.Parallel()

	_, ok := finalizeRecord(models.Record{Kind: models.KindPaper}, time.Now().UTC())

	require.True(t, ok)
}

func TestFinalizeRecord_PublishedAtToUTC(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("MSK", 3*60*60)
	published := time.Date(2026, 8, 29, 15, 0, 0, 0, loc)

	rec, ok := finalizeRecord(models.Record{
		Kind:        models.KindNews,
		Title:       "t",
		PublishedAt: published,
	}, time.Now().UTC())

	require.True(t, ok)
	require.Equal(t, time.UTC, rec.PublishedAt.Location())
	require.True(t, rec.PublishedAt.Equal(published))
}

func TestFinalizeAll_FiltersDropped(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	out := finalizeAll([]models.Record{
		{Kind: models.KindNews, Title: "keep"},
		{Kind: models.KindNews, Title: "   "},
		{Kind: models.KindNews, Title: "also keep"},
	}, now)

	require.Len(t, out, 2)
	require.Equal(t, "keep", out[0].Title)
	require.Equal(t, "also keep", out[1].Title)
}
