package service

import (
	"fmt"
	"strings"

	"github.com/pribylovaa/omni-scout/internal/models"
	"github.com/pribylovaa/omni-scout/internal/rss"
)

// selectTopHeadlines сливает группы одной темы в порядке источников и
// обрезает результат до limit записей.
func selectTopHeadlines(groups []models.Group, topic string, limit int) []models.Record {
	out := make([]models.Record, 0, limit)
	for _, g := range groups {
		if g.Topic != topic {
			continue
		}

		for _, rec := range g.Records {
			if len(out) >= limit {
				return out
			}

			out = append(out, rec)
		}
	}

	return out
}

func writeRecord(b *strings.Builder, idx int, rec models.Record) {
	fmt.Fprintf(b, "[%d] %s\n", idx, rec.Title)

	if rec.PublishedRaw != "" {
		fmt.Fprintf(b, "- published: %s\n", rec.PublishedRaw)
	}

	if rec.Link != "" {
		fmt.Fprintf(b, "- link: %s\n", rec.Link)
	}

	if rec.Source != "" {
		fmt.Fprintf(b, "- source: %s\n", rec.Source)
	}

	if rec.Summary != "" {
		fmt.Fprintf(b, "- summary: %s\n", rec.Summary)
	}
}

// NewsReport — сводка по новостям: по разделу на каждую тему, внутри —
// не более cfg.Scout.MaxItems заголовков, слитых по всем источникам темы.
func (s *Service) NewsReport(groups []models.Group) string {
	var b strings.Builder

	b.WriteString("News Scout Report\n")

	for _, topic := range []string{rss.TopicAI, rss.TopicSemiconductor} {
		fmt.Fprintf(&b, "\n[%s]\n", topic)

		records := selectTopHeadlines(groups, topic, s.cfg.Scout.MaxItems)
		if len(records) == 0 {
			b.WriteString("- no results\n")
			continue
		}

		for i, rec := range records {
			writeRecord(&b, i+1, rec)
		}
	}

	return b.String()
}

// PapersReport — сводка по публикациям: по разделу на каждый набор
// ключевых слов.
func (s *Service) PapersReport(groups []models.Group) string {
	var b strings.Builder

	b.WriteString("History Scout Report\n")

	for _, g := range groups {
		fmt.Fprintf(&b, "\n[%s]\n", strings.Join(g.Keywords, " & "))

		if len(g.Records) == 0 {
			b.WriteString("- no results\n")
			continue
		}

		for i, rec := range g.Records {
			fmt.Fprintf(&b, "[%d] %s\n", i+1, rec.Title)

			authors := "unknown"
			if len(rec.Authors) > 0 {
				authors = strings.Join(rec.Authors, ", ")
			}
			fmt.Fprintf(&b, "- authors: %s\n", authors)

			if rec.PublishedRaw != "" {
				fmt.Fprintf(&b, "- published: %s\n", rec.PublishedRaw)
			}

			if rec.DOI != "" {
				fmt.Fprintf(&b, "- doi: %s\n", rec.DOI)
			}

			if rec.Link != "" {
				fmt.Fprintf(&b, "- link: %s\n", rec.Link)
			}

			if rec.Summary != "" {
				fmt.Fprintf(&b, "- summary: %s\n", rec.Summary)
			}
		}
	}

	return b.String()
}

// VideosReport — сводка по роликам: по разделу на каждый поисковый запрос.
func (s *Service) VideosReport(groups []models.Group) string {
	var b strings.Builder

	b.WriteString("YouTube Scout Report\n")

	for _, g := range groups {
		fmt.Fprintf(&b, "\n[%s]\n", strings.Join(g.Keywords, " & "))

		if len(g.Records) == 0 {
			b.WriteString("- no results\n")
			continue
		}

		for i, rec := range g.Records {
			fmt.Fprintf(&b, "[%d] %s\n", i+1, rec.Title)

			if rec.Channel != "" {
				fmt.Fprintf(&b, "- channel: %s\n", rec.Channel)
			}

			if rec.PublishedRaw != "" {
				fmt.Fprintf(&b, "- published: %s\n", rec.PublishedRaw)
			}

			if rec.Link != "" {
				fmt.Fprintf(&b, "- link: %s\n", rec.Link)
			}
		}
	}

	return b.String()
}
