package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pribylovaa/omni-scout/internal/arxiv"
	"github.com/pribylovaa/omni-scout/internal/models"
	"github.com/pribylovaa/omni-scout/internal/pkg/log"
)

// summaryItem — плоское представление записи для полезной нагрузки
// промпта: только то, что нужно сценаристу.
type summaryItem struct {
	Type      string   `json:"type"`
	Topic     string   `json:"topic,omitempty"`
	Keywords  []string `json:"keywords,omitempty"`
	Title     string   `json:"title"`
	Summary   string   `json:"summary,omitempty"`
	Source    string   `json:"source,omitempty"`
	SourceURL string   `json:"source_url,omitempty"`
	Published string   `json:"published,omitempty"`
}

// safeJSON сериализует значение в отформатированный JSON; при сбое
// возвращает пустой массив, чтобы промпт оставался валидным.
func safeJSON(v any) string {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "[]"
	}

	return string(raw)
}

// buildSummaryPayload собирает плоский список элементов из групп
// публикаций и новостей, не более limit записей на группу.
func (s *Service) buildSummaryPayload(papers, news []models.Group) []summaryItem {
	limit := s.cfg.Scout.MaxItems

	items := make([]summaryItem, 0, (len(papers)+len(news))*limit)

	appendGroup := func(kind string, g models.Group) {
		records := g.Records
		if len(records) > limit {
			records = records[:limit]
		}

		for _, rec := range records {
			items = append(items, summaryItem{
				Type:      kind,
				Topic:     g.Topic,
				Keywords:  g.Keywords,
				Title:     rec.Title,
				Summary:   rec.Summary,
				Source:    rec.Source,
				SourceURL: g.SourceURL,
				Published: rec.PublishedRaw,
			})
		}
	}

	for _, g := range papers {
		appendGroup("paper", g)
	}

	for _, g := range news {
		appendGroup("news", g)
	}

	return items
}

// buildScriptPrompt формирует промпт сценариста коротких роликов поверх
// JSON-полезной нагрузки.
func buildScriptPrompt(payload string) string {
	var b strings.Builder

	b.WriteString("You are a scriptwriter for science and technology shorts.\n")
	b.WriteString("Write a voiceover script for a 60-second vertical video based on the JSON digest below.\n")
	b.WriteString("Structure the script strictly as three labeled sections:\n")
	b.WriteString("Hook: one punchy opening sentence that stops the scroll.\n")
	b.WriteString("Body: the core story in plain language, 3-5 short sentences, no jargon.\n")
	b.WriteString("Loop: a closing line that ties back to the hook.\n")
	b.WriteString("Pick the single most interesting item from the digest; mention its source once.\n")
	b.WriteString("Do not invent facts that are not in the digest.\n")
	b.WriteString("\nJSON:\n")
	b.WriteString(payload)

	return b.String()
}

// RunOnce — полный цикл генерации: прогон по ArXiv и новостным лентам,
// сохранение пары кэшей, построение промпта и запрос к LLM.
//
// Сбой сохранения кэша или сценария не прерывает цикл — он фиксируется
// в журнале и логе; итог определяют сбор и генерация.
func (s *Service) RunOnce(ctx context.Context) (string, error) {
	const op = "service.humanizer.RunOnce"

	papers, err := s.CollectPapers(ctx, arxiv.DefaultQueries)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	news, err := s.CollectNews(ctx)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	arxivJSON := safeJSON(papers)
	newsJSON := safeJSON(news)

	if err := s.store.SaveScoutCache(ctx, arxivJSON, newsJSON); err != nil {
		journal{s.store}.Event(ctx, fmt.Sprintf("scout cache write failed: %s", err))
		log.From(ctx).Warn("scout_cache_write_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}

	prompt := buildScriptPrompt(safeJSON(s.buildSummaryPayload(papers, news)))

	result, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := s.store.SaveScript(ctx, result.Text); err != nil {
		log.From(ctx).Warn("script_write_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}

	journal{s.store}.Event(ctx, fmt.Sprintf("humanizer script ready: model %s", result.Model))

	return result.Text, nil
}

// RebuildFromCache восстанавливает сценарий из ранее сохранённой пары
// кэшей без обращения к источникам.
func (s *Service) RebuildFromCache(ctx context.Context) (string, error) {
	const op = "service.humanizer.RebuildFromCache"

	arxivJSON, newsJSON, err := s.store.LoadScoutCache(ctx)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	var papers, news []models.Group
	if err := json.Unmarshal([]byte(arxivJSON), &papers); err != nil {
		return "", fmt.Errorf("%s: arxiv cache: %w", op, err)
	}
	if err := json.Unmarshal([]byte(newsJSON), &news); err != nil {
		return "", fmt.Errorf("%s: news cache: %w", op, err)
	}

	prompt := buildScriptPrompt(safeJSON(s.buildSummaryPayload(papers, news)))

	result, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return result.Text, nil
}
