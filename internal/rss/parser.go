package rss

import (
	"encoding/xml"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pribylovaa/omni-scout/internal/models"
)

// Parse разбирает RSS 2.0 документ в доменные записи.
// Чистая функция: без I/O, детерминированная, с идемпотентной
// нормализацией текстовых полей.
//
// Инварианты результата:
//   - записи без заголовка (после нормализации) отбрасываются;
//   - Kind = models.KindNews, Source/SourceURL — из контекста источника;
//   - PublishedRaw хранит исходную строку pubDate, PublishedAt — её
//     разбор в UTC (нулевое время, если формат неизвестен).
//
// Малформированный XML — ошибка; Collector приравнивает её к транспортному
// сбою дескриптора.
func Parse(body, sourceName, sourceURL string) ([]models.Record, error) {
	const op = "rss.Parse"

	var doc document
	if err := xml.Unmarshal([]byte(body), &doc); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	var records []models.Record
	for _, it := range doc.Channel.Items {
		title := models.NormalizeText(it.Title)
		if title == "" {
			continue
		}

		raw := models.NormalizeText(it.PubDate)

		pub, err := parsePubDate(raw)
		if err != nil {
			// Неизвестный формат даты не фатален — остаётся PublishedRaw.
			pub = time.Time{}
		}

		records = append(records, models.Record{
			Kind:         models.KindNews,
			Title:        title,
			Summary:      models.NormalizeText(it.Description),
			Link:         canonicalLink(it.Link, it.GUID),
			Source:       sourceName,
			SourceURL:    sourceURL,
			PublishedAt:  pub,
			PublishedRaw: raw,
		})
	}

	return records, nil
}

// FilterByTopic оставляет только записи, чей заголовок+тизер содержит
// хотя бы одно ключевое слово темы (без учёта регистра). Фильтр
// выполняется после нормализации и до усечения до запрошенного числа.
func FilterByTopic(records []models.Record, topic string) []models.Record {
	keywords := KeywordsForTopic(topic)

	var filtered []models.Record
	for _, rec := range records {
		combined := strings.ToLower(rec.Title + " " + rec.Summary)
		if matchesAny(combined, keywords) {
			filtered = append(filtered, rec)
		}
	}

	return filtered
}

// matchesAny — вхождение хотя бы одного ключевого слова.
func matchesAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, strings.ToLower(kw)) {
			return true
		}
	}

	return false
}

// canonicalLink нормализует ссылку: подставляет guid-URL при пустом link,
// убирает фрагмент и трекинговые параметры.
func canonicalLink(raw string, g guid) string {
	str := strings.TrimSpace(raw)

	if str == "" {
		if u := strings.TrimSpace(g.Value); strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
			str = u
		}
	}

	u, err := url.Parse(str)
	if err != nil {
		return str
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return str
	}

	u.Fragment = ""
	q := u.Query()
	for k := range q {
		lk := strings.ToLower(k)
		if strings.HasPrefix(lk, "utm_") || strings.HasSuffix(lk, "clid") || strings.HasPrefix(lk, "mc_") || lk == "igshid" {
			q.Del(k)
		}
	}
	u.RawQuery = q.Encode()

	return u.String()
}

// parsePubDate пробует набор популярных форматов и возвращает UTC-время.
func parsePubDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty date")
	}

	layouts := []string{
		time.RFC1123Z,                   // Mon, 02 Jan 2006 15:04:05 -0700
		time.RFC1123,                    // Mon, 02 Jan 2006 15:04:05 MST
		"Mon, 02 Jan 06 15:04:05 -0700", // 2-значный год
		"Mon, 02 Jan 06 15:04:05 MST",   // 2-значный год
		time.RFC822Z,                    // 02 Jan 06 15:04 -0700
		time.RFC822,                     // 02 Jan 06 15:04 MST
		time.RFC3339,                    // 2006-01-02T15:04:05Z07:00
		"Mon, 02 Jan 2006 15:04:05 MST", // нестандарт: с аббревиатурой без смещения
	}

	var lastErr error
	for _, l := range layouts {
		if t, err := time.Parse(l, value); err == nil {
			return t.UTC(), nil
		} else {
			lastErr = err
		}
	}

	return time.Time{}, lastErr
}
