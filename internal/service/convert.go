package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/omni-scout/internal/models"
)

// finalizeRecord доводит запись до инвариантов домена:
//   - Title/Link обрезаются; для RSS-записей Title обязателен — иначе
//     запись отбрасывается (остальные виды источников терпимы к пустому
//     заголовку);
//   - ID := UUIDv4, если не проставлен;
//   - PublishedAt приводится к UTC (нулевое значение допустимо);
//   - FetchedAt := nowUTC (перекрывает любые внешние значения).
//
// Возвращает (запись, ok=false если запись следует отбросить).
func finalizeRecord(rec models.Record, nowUTC time.Time) (models.Record, bool) {
	rec.Title = strings.TrimSpace(rec.Title)
	rec.Link = strings.TrimSpace(rec.Link)

	if rec.Kind == models.KindNews && rec.Title == "" {
		return models.Record{}, false
	}

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	if !rec.PublishedAt.IsZero() {
		rec.PublishedAt = rec.PublishedAt.UTC()
	}

	rec.FetchedAt = nowUTC

	return rec, true
}

// finalizeAll — finalizeRecord по списку с отбрасыванием непригодных записей.
func finalizeAll(records []models.Record, nowUTC time.Time) []models.Record {
	out := make([]models.Record, 0, len(records))
	for _, rec := range records {
		if finalized, ok := finalizeRecord(rec, nowUTC); ok {
			out = append(out, finalized)
		}
	}

	return out
}
