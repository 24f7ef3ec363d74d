// ratelimit реализует минимальный интервал между запросами к одному
// логическому каналу (например, ко всем эндпоинтам ArXiv).
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter гарантирует, что между двумя последовательными Acquire
// для одного канала проходит не меньше interval.
//
// Вся последовательность «прочитать метку — вычислить ожидание —
// подождать — записать новую метку» выполняется под одним мьютексом:
// два конкурентных вызова никогда не вычислят нулевое ожидание
// одновременно. Справедливость FIFO среди ожидающих не гарантируется.
type Limiter struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time

	// now/sleep подменяются в тестах.
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// New создаёт Limiter с заданным минимальным интервалом.
// interval <= 0 означает отсутствие троттлинга.
func New(interval time.Duration) *Limiter {
	return &Limiter{
		interval: interval,
		now:      time.Now,
		sleep:    sleepCtx,
	}
}

// Acquire приостанавливает вызывающего до момента, когда безопасно
// выполнить следующий запрос, и фиксирует новую метку «последнего запроса».
//
// Операция не может завершиться ошибкой — только задержкой; единственное
// исключение — отмена ctx во время ожидания.
func (l *Limiter) Acquire(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.interval > 0 && !l.last.IsZero() {
		if wait := l.interval - l.now().Sub(l.last); wait > 0 {
			if err := l.sleep(ctx, wait); err != nil {
				return err
			}
		}
	}

	l.last = l.now()

	return nil
}

// sleepCtx ждёт d либо до отмены ctx.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
