package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/pribylovaa/omni-scout/internal/pkg/log"
)

// StartIngest запускает фоновый цикл генерации: немедленный прогон и
// далее по тикеру cfg.Scout.Interval до отмены контекста.
//
// notify (может быть nil) получает состояние последнего прогона — им
// переключается health-статус сервиса.
func (s *Service) StartIngest(ctx context.Context, notify func(healthy bool)) {
	s.runTick(ctx, notify)

	ticker := time.NewTicker(s.cfg.Scout.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runTick(ctx, notify)
		}
	}
}

func (s *Service) runTick(ctx context.Context, notify func(healthy bool)) {
	const op = "service.fetcher.runTick"

	script, err := s.RunOnce(ctx)
	if err != nil {
		log.From(ctx).Warn("ingest_tick_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		if notify != nil {
			notify(false)
		}

		return
	}

	log.From(ctx).Info("ingest_tick_done",
		slog.String("op", op),
		slog.Int("script_chars", len(script)),
	)

	if notify != nil {
		notify(true)
	}
}
