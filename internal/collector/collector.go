// collector реализует конкурентный сбор сырых ответов по списку
// дескрипторов с троттлингом и политикой «всё или ничего».
package collector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/pribylovaa/omni-scout/internal/models"
	"github.com/pribylovaa/omni-scout/internal/pkg/log"
	"github.com/pribylovaa/omni-scout/internal/ratelimit"
)

// ErrNoDescriptors — пустой список дескрипторов; сбор не начинается.
var ErrNoDescriptors = errors.New("no descriptors")

// maxGate — верхняя граница ширины шлюза конкурентности для источников
// без общего рейт-лимита (поисковые API с ключом).
const maxGate = 16

// Descriptor — статическая спецификация одного запроса к внешнему источнику.
// Конструируется до прогона и не изменяется.
type Descriptor struct {
	// Topic — тема источника ("ai", "semiconductor" и т.п.).
	Topic string
	// Key — идентификатор дескриптора в сообщениях об ошибках:
	// имя источника, ключевое слово или связка ключевых слов.
	Key string
	// URL — полный адрес запроса.
	URL string
	// MaxResults — запрошенное число результатов (информативно для Normalizer).
	MaxResults int
}

// ParseFunc превращает сырой ответ источника в доменные записи.
// Ошибка парсинга приравнивается к транспортной ошибке дескриптора.
type ParseFunc func(desc Descriptor, body string) ([]models.Record, error)

// Group — результат одного дескриптора при успешном прогоне.
type Group struct {
	Desc    Descriptor
	Records []models.Record
}

// Journal — журнал активности прогонов. Запись должна быть best-effort:
// сбой журналирования не влияет на исход сбора.
type Journal interface {
	Event(ctx context.Context, message string)
}

// Collector разводит дескрипторы по конкурентным запросам и собирает
// результаты. Один Collector обслуживает один логический канал:
// либо через общий ratelimit.Limiter (ArXiv, пул RSS-лент), либо через
// шлюз конкурентности шириной min(N, 16) (поисковые API).
//
// Collector не переживает один вызов Collect — состояние лимитера
// принадлежит вызывающему на время прогона.
type Collector struct {
	client  *http.Client
	limiter *ratelimit.Limiter
	journal Journal
}

// New создаёт Collector. limiter == nil включает шлюз конкурентности
// вместо сериализации через лимитер. journal может быть nil.
func New(client *http.Client, limiter *ratelimit.Limiter, journal Journal) *Collector {
	if client == nil {
		client = &http.Client{}
	}

	return &Collector{client: client, limiter: limiter, journal: journal}
}

// fetchResult — исход одного запроса: значим либо body, либо err.
type fetchResult struct {
	body string
	err  error
}

// Collect — один прогон: по горутине на дескриптор, ожидание всех,
// агрегация «всё или ничего».
//
// Правила:
//   - пустой вход — ErrNoDescriptors до какой-либо сетевой активности;
//   - отмена «соседей» при первом сбое не выполняется — каждый дескриптор
//     всегда доводит свою попытку до конца или собственного таймаута;
//   - любой транспортный сбой или ошибка парсинга проваливает весь прогон;
//     сообщение — все ошибки через "; ", каждая с префиксом Key;
//   - на прогон пишется ровно одно событие журнала (успех или сбой).
func (c *Collector) Collect(ctx context.Context, descs []Descriptor, parse ParseFunc) ([]Group, error) {
	const op = "collector.Collect"

	if len(descs) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoDescriptors)
	}

	var gate chan struct{}
	if c.limiter == nil {
		width := len(descs)
		if width > maxGate {
			width = maxGate
		}
		gate = make(chan struct{}, width)
	}

	results := make([]fetchResult, len(descs))

	var wg sync.WaitGroup
	for i, d := range descs {
		wg.Add(1)

		go func(i int, d Descriptor) {
			defer wg.Done()

			if gate != nil {
				gate <- struct{}{}
				defer func() { <-gate }()
			}

			body, err := c.fetchOne(ctx, d)
			results[i] = fetchResult{body: body, err: err}
		}(i, d)
	}
	wg.Wait()

	var (
		groups []Group
		errs   []string
	)

	for i, d := range descs {
		res := results[i]
		if res.err != nil {
			errs = append(errs, fmt.Sprintf("%s: %s", d.Key, res.err))
			continue
		}

		records, err := parse(d, res.body)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: parse failed (%s)", d.Key, err))
			continue
		}

		groups = append(groups, Group{Desc: d, Records: records})
	}

	if len(errs) > 0 {
		c.event(ctx, fmt.Sprintf("collect failed: %s", strings.Join(errs, " | ")))
		return nil, fmt.Errorf("%s: %s", op, strings.Join(errs, "; "))
	}

	c.event(ctx, fmt.Sprintf("collect ok: %d groups", len(groups)))

	return groups, nil
}

// fetchOne выполняет один HTTP-запрос под лимитером канала.
// Повторов нет — первый сбой терминален для дескриптора.
func (c *Collector) fetchOne(ctx context.Context, d Descriptor) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Acquire(ctx); err != nil {
			return "", fmt.Errorf("acquire: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.URL, nil)
	if err != nil {
		return "", fmt.Errorf("new_request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("status=%d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read_body: %w", err)
	}

	return string(body), nil
}

// event пишет событие журнала; сбой журналирования не меняет исход прогона.
func (c *Collector) event(ctx context.Context, message string) {
	if c.journal == nil {
		log.From(ctx).Debug("journal_skip", slog.String("message", message))
		return
	}

	c.journal.Event(ctx, message)
}
