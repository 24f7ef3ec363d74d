package arxiv

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pribylovaa/omni-scout/internal/models"
)

// DefaultAPIURL — эндпоинт экспортного API ArXiv.
const DefaultAPIURL = "https://export.arxiv.org/api/query"

// Параметры сортировки выдачи.
const (
	SortBySubmittedDate = "submittedDate"
	SortOrderDescending = "descending"
)

// DefaultQueries — встроенные наборы ключевых слов для исторического скаута.
var DefaultQueries = [][]string{
	{"Napoleon Bonaparte"},
	{"Waterloo battle"},
	{"Russian campaign 1812"},
	{"Napoleonic Wars logistics"},
	{"French Empire politics"},
}

// BuildQueryURL собирает URL поискового запроса: термы all:<keyword>
// (ключевые слова с пробелом берутся в кавычки) соединяются через AND;
// sortBy/sortOrder добавляются только если заданы.
func BuildQueryURL(apiURL string, keywords []string, maxResults int, sortBy, sortOrder string) string {
	terms := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if strings.Contains(kw, " ") {
			terms = append(terms, fmt.Sprintf("all:%q", kw))
		} else {
			terms = append(terms, "all:"+kw)
		}
	}

	query := url.QueryEscape(strings.Join(terms, " AND "))
	requestURL := fmt.Sprintf("%s?search_query=%s&start=0&max_results=%d", apiURL, query, maxResults)

	if sortBy != "" {
		requestURL += "&sortBy=" + sortBy
	}
	if sortOrder != "" {
		requestURL += "&sortOrder=" + sortOrder
	}

	return requestURL
}

// Parse разбирает Atom-фид ArXiv в доменные записи.
// Чистая функция; малформированный XML — ошибка.
func Parse(body string) ([]models.Record, error) {
	const op = "arxiv.Parse"

	var doc feed
	if err := xml.Unmarshal([]byte(body), &doc); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	var records []models.Record
	for _, e := range doc.Entries {
		var authors []string
		for _, a := range e.Authors {
			if name := models.NormalizeText(a.Name); name != "" {
				authors = append(authors, name)
			}
		}

		raw := models.NormalizeText(e.Published)
		pub, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			pub = time.Time{}
		} else {
			pub = pub.UTC()
		}

		id := models.NormalizeText(e.ID)

		records = append(records, models.Record{
			Kind:            models.KindPaper,
			Title:           models.NormalizeText(e.Title),
			Summary:         models.NormalizeText(e.Summary),
			Link:            id,
			SourceURL:       id,
			Authors:         authors,
			DOI:             models.NormalizeText(e.DOI),
			PrimaryCategory: e.PrimaryCategory.Term,
			PublishedAt:     pub,
			PublishedRaw:    raw,
		})
	}

	return records, nil
}
