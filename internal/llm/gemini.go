package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultGeminiURL — базовый адрес Generative Language API.
const DefaultGeminiURL = "https://generativelanguage.googleapis.com"

// lastResortModel — жёстко зашитая последняя модель в цепочке кандидатов.
const lastResortModel = "gemini-1.5-flash"

// ErrMissingAPIKey — ключ Gemini не задан; запрос не выполняется.
var ErrMissingAPIKey = errors.New("gemini api key is not set")

// Gemini — REST-клиент generateContent с цепочкой моделей-кандидатов:
// основная модель, затем fallback, затем lastResortModel. Повторов внутри
// одной модели нет; при исчерпании кандидатов возвращается ошибка
// последнего с префиксом имени модели.
type Gemini struct {
	client  *http.Client
	baseURL string
	apiKey  string
	models  []string
}

// NewGemini создаёт клиента. client == nil — http.Client с таймаутом 60s;
// baseURL == "" — DefaultGeminiURL.
func NewGemini(client *http.Client, baseURL, apiKey, model, fallbackModel string) *Gemini {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}

	if baseURL == "" {
		baseURL = DefaultGeminiURL
	}

	return &Gemini{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		models:  candidateModels(model, fallbackModel),
	}
}

// Name возвращает идентификатор провайдера.
func (g *Gemini) Name() string { return "gemini" }

// Models возвращает цепочку моделей-кандидатов в порядке опроса.
func (g *Gemini) Models() []string {
	return append([]string(nil), g.models...)
}

// Generate опрашивает кандидатов по порядку до первого успеха.
func (g *Gemini) Generate(ctx context.Context, prompt string) (*Result, error) {
	const op = "llm.Gemini.Generate"

	if g.apiKey == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrMissingAPIKey)
	}

	var lastErr error
	for _, model := range g.models {
		text, err := g.generateOnce(ctx, model, prompt)
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", model, err)
			continue
		}

		return &Result{Text: text, Model: model}, nil
	}

	return nil, fmt.Errorf("%s: %w", op, lastErr)
}

// Формат запроса/ответа generateContent.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

// generateOnce — один вызов generateContent для одной модели.
func (g *Gemini) generateOnce(ctx context.Context, model, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, model, g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("new_request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read_body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status=%d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var decoded generateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}

	var b strings.Builder
	for _, c := range decoded.Candidates {
		for _, p := range c.Content.Parts {
			b.WriteString(p.Text)
		}
		// Достаточно первого кандидата с текстом.
		if b.Len() > 0 {
			break
		}
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", errors.New("empty response text")
	}

	return text, nil
}

// candidateModels собирает цепочку без дубликатов и пустых имён.
func candidateModels(model, fallbackModel string) []string {
	var models []string

	seen := make(map[string]bool)
	for _, m := range []string{model, fallbackModel, lastResortModel} {
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		models = append(models, m)
	}

	return models
}
