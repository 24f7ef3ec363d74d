package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pribylovaa/omni-scout/internal/arxiv"
	"github.com/pribylovaa/omni-scout/internal/collector"
	"github.com/pribylovaa/omni-scout/internal/models"
	"github.com/pribylovaa/omni-scout/internal/pkg/log"
	"github.com/pribylovaa/omni-scout/internal/ratelimit"
	"github.com/pribylovaa/omni-scout/internal/rss"
	"github.com/pribylovaa/omni-scout/internal/youtube"
)

// newsSources возвращает ленты из конфига либо встроенный набор.
func (s *Service) newsSources() []rss.Source {
	if len(s.cfg.Scout.NewsSources) == 0 {
		return rss.DefaultSources
	}

	sources := make([]rss.Source, 0, len(s.cfg.Scout.NewsSources))
	for _, src := range s.cfg.Scout.NewsSources {
		sources = append(sources, rss.Source{Topic: src.Topic, Name: src.Name, URL: src.URL})
	}

	return sources
}

// videoKeywords возвращает поисковые запросы из конфига либо встроенные.
func (s *Service) videoKeywords() []string {
	if len(s.cfg.YouTube.Keywords) == 0 {
		return youtube.DefaultKeywords
	}

	return s.cfg.YouTube.Keywords
}

// CollectNews — один прогон по новостным лентам.
//
// Все ленты делят один канал с интервалом cfg.Scout.NewsRate. После
// нормализации применяется фильтр релевантности темы и усечение до
// 2×MaxItems. Политика «всё или ничего» — см. collector.Collect.
func (s *Service) CollectNews(ctx context.Context) ([]models.Group, error) {
	const op = "service.scout.CollectNews"

	sources := s.newsSources()
	if len(sources) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoSources)
	}

	descs := make([]collector.Descriptor, 0, len(sources))
	for _, src := range sources {
		descs = append(descs, collector.Descriptor{
			Topic:      src.Topic,
			Key:        src.Name,
			URL:        src.URL,
			MaxResults: s.cfg.Scout.MaxItems,
		})
	}

	limit := 2 * s.cfg.Scout.MaxItems
	parse := func(d collector.Descriptor, body string) ([]models.Record, error) {
		records, err := rss.Parse(body, d.Key, d.URL)
		if err != nil {
			return nil, err
		}

		records = rss.FilterByTopic(records, d.Topic)
		if len(records) > limit {
			records = records[:limit]
		}

		return records, nil
	}

	coll := collector.New(s.client, ratelimit.New(s.cfg.Scout.NewsRate), journal{s.store})

	groups, err := coll.Collect(ctx, descs, parse)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	nowUTC := time.Now().UTC()

	out := make([]models.Group, 0, len(groups))
	for _, g := range groups {
		out = append(out, models.Group{
			Topic:     g.Desc.Topic,
			Source:    g.Desc.Key,
			SourceURL: g.Desc.URL,
			Records:   finalizeAll(g.Records, nowUTC),
		})
	}

	log.From(ctx).Info("news_collected",
		slog.String("op", op),
		slog.Int("groups", len(out)),
	)

	return out, nil
}

// CollectPapers — один прогон по ArXiv: по дескриптору на каждый набор
// ключевых слов, общий канал с интервалом cfg.Scout.ArxivRate.
func (s *Service) CollectPapers(ctx context.Context, queries [][]string) ([]models.Group, error) {
	const op = "service.scout.CollectPapers"

	if len(queries) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoKeywords)
	}

	descs := make([]collector.Descriptor, 0, len(queries))
	for _, keywords := range queries {
		descs = append(descs, collector.Descriptor{
			Key: strings.Join(keywords, " & "),
			URL: arxiv.BuildQueryURL(
				s.cfg.Scout.ArxivEndpoint,
				keywords,
				s.cfg.Scout.MaxResults,
				arxiv.SortBySubmittedDate,
				arxiv.SortOrderDescending,
			),
			MaxResults: s.cfg.Scout.MaxResults,
		})
	}

	parse := func(_ collector.Descriptor, body string) ([]models.Record, error) {
		return arxiv.Parse(body)
	}

	coll := collector.New(s.client, ratelimit.New(s.cfg.Scout.ArxivRate), journal{s.store})

	groups, err := coll.Collect(ctx, descs, parse)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	nowUTC := time.Now().UTC()

	// При успехе группы идут в порядке дескрипторов — индекс сопоставляет
	// их исходным наборам ключевых слов.
	out := make([]models.Group, 0, len(groups))
	for i, g := range groups {
		out = append(out, models.Group{
			Keywords: queries[i],
			Records:  finalizeAll(g.Records, nowUTC),
		})
	}

	log.From(ctx).Info("papers_collected",
		slog.String("op", op),
		slog.Int("groups", len(out)),
	)

	return out, nil
}

// CollectVideos — один прогон по YouTube Search API: без общего
// рейт-лимита, конкурентность ограничена шлюзом min(N, 16).
//
// Отсутствие ключа API — ошибка конфигурации до какой-либо сетевой
// активности. Пустой items у источника — валидная пустая группа.
func (s *Service) CollectVideos(ctx context.Context) ([]models.Group, error) {
	const op = "service.scout.CollectVideos"

	keywords := s.videoKeywords()
	if len(keywords) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoKeywords)
	}

	if s.cfg.YouTube.APIKey == "" {
		return nil, fmt.Errorf("%s: YOUTUBE_API_KEY: %w", op, ErrMissingAPIKey)
	}

	descs := make([]collector.Descriptor, 0, len(keywords))
	for _, kw := range keywords {
		descs = append(descs, collector.Descriptor{
			Key:        kw,
			URL:        youtube.BuildSearchURL(s.cfg.YouTube.Endpoint, kw, s.cfg.YouTube.APIKey, s.cfg.Scout.MaxResults),
			MaxResults: s.cfg.Scout.MaxResults,
		})
	}

	parse := func(_ collector.Descriptor, body string) ([]models.Record, error) {
		return youtube.Parse(body)
	}

	coll := collector.New(s.client, nil, journal{s.store})

	groups, err := coll.Collect(ctx, descs, parse)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	nowUTC := time.Now().UTC()

	out := make([]models.Group, 0, len(groups))
	for _, g := range groups {
		out = append(out, models.Group{
			Keywords: []string{g.Desc.Key},
			Records:  finalizeAll(g.Records, nowUTC),
		})
	}

	log.From(ctx).Info("videos_collected",
		slog.String("op", op),
		slog.Int("groups", len(out)),
	)

	return out, nil
}
