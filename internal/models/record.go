// models содержит доменные сущности omni-scout.
// Эти типы используются слоями сбора, бизнес-логики и кэша.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Виды записей по типу источника.
const (
	// KindPaper — научная статья (ArXiv Atom).
	KindPaper = "paper"
	// KindNews — новостной заголовок (RSS 2.0).
	KindNews = "news"
	// KindVideo — метаданные видео (YouTube Search API).
	KindVideo = "video"
)

// Record — единая форма записи для всех источников.
//
// Особенности:
//   - ID — UUIDv4, проставляется при финализации;
//   - обязателен Title (для RSS-источников записи без заголовка отбрасываются
//     на границе нормализации);
//   - PublishedAt — в UTC, допускается нулевое значение, если источник
//     отдал дату в неизвестном формате; PublishedRaw хранит исходную строку
//     и используется при форматировании отчётов.
type Record struct {
	// ID — уникальный идентификатор записи в рамках одного прогона.
	ID uuid.UUID `json:"id"`
	// Kind — вид записи: KindPaper, KindNews или KindVideo.
	Kind string `json:"kind"`
	// Title — заголовок статьи/новости/видео.
	Title string `json:"title"`
	// Summary — краткое описание (abstract, тизер, description сниппета).
	Summary string `json:"summary"`
	// Link — ссылка на материал.
	Link string `json:"link"`
	// Source — имя источника (имя RSS-ленты, канал и т.п.).
	Source string `json:"source,omitempty"`
	// SourceURL — адрес источника или самого материала.
	SourceURL string `json:"source_url,omitempty"`
	// Authors — авторы статьи (только KindPaper).
	Authors []string `json:"authors,omitempty"`
	// DOI — идентификатор DOI статьи, если присутствует (только KindPaper).
	DOI string `json:"doi,omitempty"`
	// PrimaryCategory — основная категория ArXiv (только KindPaper).
	PrimaryCategory string `json:"primary_category,omitempty"`
	// Channel — название YouTube-канала (только KindVideo).
	Channel string `json:"channel,omitempty"`
	// VideoID — идентификатор видео (только KindVideo).
	VideoID string `json:"video_id,omitempty"`
	// PublishedAt — время публикации у источника (UTC).
	PublishedAt time.Time `json:"published_at"`
	// PublishedRaw — исходная строка даты публикации, как её отдал источник.
	PublishedRaw string `json:"published_raw,omitempty"`
	// FetchedAt — время сбора записи (UTC).
	FetchedAt time.Time `json:"fetched_at"`
}

// Group — записи одного дескриптора: либо одна лента/один поисковый
// запрос, либо один набор ключевых слов ArXiv.
type Group struct {
	// Topic — тема группы (RSS-источники: "ai", "semiconductor").
	Topic string `json:"topic,omitempty"`
	// Keywords — ключевые слова запроса (ArXiv и YouTube).
	Keywords []string `json:"keywords,omitempty"`
	// Source — имя источника группы.
	Source string `json:"source,omitempty"`
	// SourceURL — адрес источника группы.
	SourceURL string `json:"source_url,omitempty"`
	// Records — нормализованные записи (может быть пустым — это не ошибка).
	Records []Record `json:"records"`
}
