// youtube — Normalizer и конструктор запросов для YouTube Search API.
package youtube

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/pribylovaa/omni-scout/internal/models"
)

// DefaultAPIURL — эндпоинт поиска YouTube Data API v3.
const DefaultAPIURL = "https://www.googleapis.com/youtube/v3/search"

// watchURL — шаблон ссылки на видео.
const watchURL = "https://www.youtube.com/watch?v="

// DefaultKeywords — встроенные поисковые запросы видео-скаута.
var DefaultKeywords = []string{"AI", "IT trends"}

// BuildSearchURL собирает URL поиска видео по ключевому слову:
// сниппеты, только видео, сортировка по просмотрам.
func BuildSearchURL(apiURL, keyword, apiKey string, maxResults int) string {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("order", "viewCount")
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("q", keyword)
	params.Set("key", apiKey)

	return apiURL + "?" + params.Encode()
}

// searchResponse — интересующая часть ответа search.list.
type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	ID      videoID `json:"id"`
	Snippet snippet `json:"snippet"`
}

type videoID struct {
	VideoID string `json:"videoId"`
}

type snippet struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelTitle string `json:"channelTitle"`
	PublishedAt  string `json:"publishedAt"`
}

// Parse разбирает JSON-ответ search.list в доменные записи.
// Пустой список items — валидный результат (пустая группа), не ошибка.
// Малформированный JSON — ошибка уровня дескриптора.
func Parse(body string) ([]models.Record, error) {
	const op = "youtube.Parse"

	var resp searchResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	var records []models.Record
	for _, it := range resp.Items {
		link := ""
		if it.ID.VideoID != "" {
			link = watchURL + it.ID.VideoID
		}

		raw := models.NormalizeText(it.Snippet.PublishedAt)
		pub, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			pub = time.Time{}
		} else {
			pub = pub.UTC()
		}

		records = append(records, models.Record{
			Kind:         models.KindVideo,
			Title:        models.NormalizeText(it.Snippet.Title),
			Summary:      models.NormalizeText(it.Snippet.Description),
			Link:         link,
			SourceURL:    link,
			Channel:      models.NormalizeText(it.Snippet.ChannelTitle),
			VideoID:      it.ID.VideoID,
			PublishedAt:  pub,
			PublishedRaw: raw,
		})
	}

	return records, nil
}
