// service содержит бизнес-логику omni-scout: сборочные прогоны по
// источникам, отчёты и генерацию дорожки через LLM.
package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pribylovaa/omni-scout/internal/config"
	"github.com/pribylovaa/omni-scout/internal/llm"
	"github.com/pribylovaa/omni-scout/internal/pkg/log"
	"github.com/pribylovaa/omni-scout/internal/storage"
)

var (
	// ErrNoSources — пустой список источников; прогон не начинается.
	ErrNoSources = errors.New("no sources configured")
	// ErrNoKeywords — пустой список поисковых запросов.
	ErrNoKeywords = errors.New("no keywords configured")
	// ErrMissingAPIKey — отсутствует обязательный ключ API.
	// Проверяется до какой-либо сетевой активности.
	ErrMissingAPIKey = errors.New("missing api key")
)

// Service — описывает бизнес-логику omni-scout.
type Service struct {
	store  storage.Storage
	gen    llm.Provider
	cfg    config.Config
	client *http.Client
}

// New создает новый экземпляр Service.
func New(store storage.Storage, gen llm.Provider, cfg config.Config) *Service {
	return &Service{
		store:  store,
		gen:    gen,
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeouts.HTTP},
	}
}

// journal адаптирует storage.Journal к best-effort журналу Collector:
// сбой записи не влияет на основной результат и лишь попадает в slog.
type journal struct {
	store storage.Storage
}

func (j journal) Event(ctx context.Context, message string) {
	if err := j.store.AppendEvent(ctx, message); err != nil {
		log.From(ctx).Warn("journal_write_failed",
			slog.String("err", err.Error()),
		)
	}
}
