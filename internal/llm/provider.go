// llm — клиенты генерации текста за узким интерфейсом Provider.
package llm

import "context"

// Result — результат одной генерации.
type Result struct {
	// Text — сгенерированный текст (обрезанный по краям).
	Text string
	// Model — имя модели, фактически давшей ответ (с учётом fallback).
	Model string
}

// Provider абстрагирует LLM-бэкенд.
type Provider interface {
	// Generate выполняет одну генерацию по затравке.
	Generate(ctx context.Context, prompt string) (*Result, error)
	// Name возвращает идентификатор провайдера (например, "gemini").
	Name() string
}
